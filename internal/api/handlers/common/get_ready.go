package common

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/monpay/wallet-bridge/internal/api"
	"github/monpay/wallet-bridge/internal/util"
)

func GetReadyRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/ready", getReadyHandler(s))
}

// getReadyHandler answers readiness probes: all components must be
// initialized and the session database reachable.
func getReadyHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		if !s.Ready() {
			return c.String(521, "Not ready.")
		}

		if err := s.DB.PingContext(ctx); err != nil {
			util.LogFromContext(ctx).Warn().Err(err).Msg("Readiness ping failed")
			return c.String(521, "Not ready.")
		}

		return c.String(http.StatusOK, "Ready.")
	}
}
