package wallet

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/monpay/wallet-bridge/internal/api"
)

func PostReconnectRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Wallet.POST("/reconnect", postReconnectHandler(s))
}

// postReconnectHandler restores the session silently. A failed restore is
// not an error: it answers 204 so page-load callers can fall back to an
// explicit connect.
func postReconnectHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		conn, err := s.Session.Reconnect(ctx)
		if err != nil || conn == nil {
			return c.NoContent(http.StatusNoContent)
		}

		return c.JSON(http.StatusOK, &ConnectResponse{
			Address:       conn.Address,
			NativeBalance: conn.NativeBalance,
		})
	}
}
