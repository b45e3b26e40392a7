package wallet

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github/monpay/wallet-bridge/internal/api"
	"github/monpay/wallet-bridge/internal/api/httperrors"
)

// TransactionResponse is the normalized transaction summary. Verified is
// false when the lookup failed and the summary is optimistic.
type TransactionResponse struct {
	Hash      string    `json:"hash"`
	Success   bool      `json:"success"`
	Verified  bool      `json:"verified"`
	Timestamp time.Time `json:"timestamp"`
	GasUsed   uint64    `json:"gasUsed,omitempty"`
	GasPrice  string    `json:"gasPrice,omitempty"`
}

func GetTransactionRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Wallet.GET("/transactions/:hash", getTransactionHandler(s))
}

func getTransactionHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		hash := c.Param("hash")
		if hash == "" {
			return httperrors.NewHTTPValidationError("Invalid transaction hash", "hash path parameter is required")
		}

		summary := s.TxInfo.GetTransactionDetails(ctx, hash)

		response := &TransactionResponse{
			Hash:      summary.Hash,
			Success:   summary.Success,
			Verified:  summary.Verified,
			Timestamp: summary.Timestamp,
			GasUsed:   summary.GasUsed,
		}

		if summary.GasPrice != nil {
			response.GasPrice = summary.GasPrice.String()
		}

		return c.JSON(http.StatusOK, response)
	}
}
