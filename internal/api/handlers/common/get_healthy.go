package common

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/monpay/wallet-bridge/internal/api"
)

func GetHealthyRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/healthy", getHealthyHandler())
}

// getHealthyHandler answers liveness probes. The process is alive if it
// can serve this request at all.
func getHealthyHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.String(http.StatusOK, "OK.")
	}
}
