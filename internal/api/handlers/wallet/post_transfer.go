package wallet

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/monpay/wallet-bridge/internal/api"
	"github/monpay/wallet-bridge/internal/api/httperrors"
	"github/monpay/wallet-bridge/internal/wallet/transfer"
)

// PostTransferPayload is the request body of a single transfer.
type PostTransferPayload struct {
	Recipient  *string  `json:"recipient"`
	Amount     *float64 `json:"amount"`
	FeeEnabled bool     `json:"feeEnabled"`
}

// TransferResponse mirrors transfer.Outcome on the wire.
type TransferResponse struct {
	Success         bool     `json:"success"`
	TransactionHash string   `json:"transactionHash,omitempty"`
	PlatformFee     *float64 `json:"platformFee,omitempty"`
	NetAmount       *float64 `json:"netAmount,omitempty"`
	Error           string   `json:"error,omitempty"`
}

func PostTransferRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Wallet.POST("/transfer", postTransferHandler(s))
}

func postTransferHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var body PostTransferPayload
		if err := c.Bind(&body); err != nil {
			return httperrors.NewHTTPValidationError("Invalid request body", err.Error())
		}

		if body.Recipient == nil || body.Amount == nil {
			return httperrors.NewHTTPValidationError("Invalid request body", "recipient and amount are required")
		}

		outcome := s.Transfer.Send(ctx, transfer.Request{
			Recipient:     swag.StringValue(body.Recipient),
			DisplayAmount: swag.Float64Value(body.Amount),
			FeeEnabled:    body.FeeEnabled,
		})

		return c.JSON(http.StatusOK, &TransferResponse{
			Success:         outcome.Success,
			TransactionHash: outcome.TxHash,
			PlatformFee:     outcome.PlatformFee,
			NetAmount:       outcome.NetAmount,
			Error:           outcome.Error,
		})
	}
}
