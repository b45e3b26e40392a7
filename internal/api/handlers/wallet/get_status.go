package wallet

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/monpay/wallet-bridge/internal/api"
)

// StatusResponse reports the in-memory connection state.
type StatusResponse struct {
	Connected bool   `json:"connected"`
	Address   string `json:"address,omitempty"`
}

func GetStatusRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Wallet.GET("/status", getStatusHandler(s))
}

func getStatusHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, &StatusResponse{
			Connected: s.Session.IsConnected(),
			Address:   s.Session.CurrentAddress(),
		})
	}
}
