package wallet

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/monpay/wallet-bridge/internal/api"
	"github/monpay/wallet-bridge/internal/api/httperrors"
	"github/monpay/wallet-bridge/internal/wallet/transfer"
)

// BulkTransferItem is one recipient/amount pair of a bulk request.
type BulkTransferItem struct {
	Recipient *string  `json:"recipient"`
	Amount    *float64 `json:"amount"`
}

// PostBulkTransferPayload is the request body of a bulk transfer. The
// feeEnabled flag is shared across all items.
type PostBulkTransferPayload struct {
	Transfers  []BulkTransferItem `json:"transfers"`
	FeeEnabled bool               `json:"feeEnabled"`
}

// BulkTransferResponse mirrors transfer.BulkOutcome on the wire.
// FailedCount is omitted when zero.
type BulkTransferResponse struct {
	Success             bool     `json:"success"`
	LastTransactionHash string   `json:"lastTransactionHash,omitempty"`
	TransactionHashes   []string `json:"transactionHashes,omitempty"`
	TotalPlatformFee    *float64 `json:"totalPlatformFee,omitempty"`
	TotalNetAmount      *float64 `json:"totalNetAmount,omitempty"`
	FailedCount         int      `json:"failedCount,omitempty"`
	Error               string   `json:"error,omitempty"`
}

func PostBulkTransferRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Wallet.POST("/transfer/bulk", postBulkTransferHandler(s))
}

func postBulkTransferHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var body PostBulkTransferPayload
		if err := c.Bind(&body); err != nil {
			return httperrors.NewHTTPValidationError("Invalid request body", err.Error())
		}

		reqs := make([]transfer.Request, 0, len(body.Transfers))
		for _, item := range body.Transfers {
			if item.Recipient == nil || item.Amount == nil {
				return httperrors.NewHTTPValidationError("Invalid request body", "every transfer needs recipient and amount")
			}

			reqs = append(reqs, transfer.Request{
				Recipient:     swag.StringValue(item.Recipient),
				DisplayAmount: swag.Float64Value(item.Amount),
				FeeEnabled:    body.FeeEnabled,
			})
		}

		outcome := s.Transfer.SendBulk(ctx, reqs, body.FeeEnabled)

		return c.JSON(http.StatusOK, &BulkTransferResponse{
			Success:             outcome.Success,
			LastTransactionHash: outcome.LastTxHash,
			TransactionHashes:   outcome.TxHashes,
			TotalPlatformFee:    outcome.TotalPlatformFee,
			TotalNetAmount:      outcome.TotalNetAmount,
			FailedCount:         outcome.FailedCount,
			Error:               outcome.Error,
		})
	}
}
