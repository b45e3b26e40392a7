package wallet

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/monpay/wallet-bridge/internal/api"
	"github/monpay/wallet-bridge/internal/util"
)

func PostDisconnectRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Wallet.POST("/disconnect", postDisconnectHandler(s))
}

func postDisconnectHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		if err := s.Session.Disconnect(ctx); err != nil {
			// Disconnect always succeeds by contract; log just in case.
			util.LogFromContext(ctx).Error().Err(err).Msg("Disconnect returned an error")
		}

		return c.NoContent(http.StatusNoContent)
	}
}
