package common

import (
	"github.com/labstack/echo/v4"
	"github/monpay/wallet-bridge/internal/api"
)

func GetMetricsRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/metrics", echo.WrapHandler(s.Metrics.Handler()))
}
