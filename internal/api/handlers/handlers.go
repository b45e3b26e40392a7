package handlers

import (
	"github.com/labstack/echo/v4"
	"github/monpay/wallet-bridge/internal/api"
	"github/monpay/wallet-bridge/internal/api/handlers/common"
	"github/monpay/wallet-bridge/internal/api/handlers/wallet"
)

// AttachAllRoutes attaches all registered routes to s.
func AttachAllRoutes(s *api.Server) {
	s.Router.Routes = []*echo.Route{
		common.GetHealthyRoute(s),
		common.GetMetricsRoute(s),
		common.GetReadyRoute(s),
		wallet.GetStatusRoute(s),
		wallet.GetTransactionRoute(s),
		wallet.PostBulkTransferRoute(s),
		wallet.PostConnectRoute(s),
		wallet.PostDisconnectRoute(s),
		wallet.PostReconnectRoute(s),
		wallet.PostTransferRoute(s),
	}
}
