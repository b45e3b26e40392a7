package wallet

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/monpay/wallet-bridge/internal/api"
	"github/monpay/wallet-bridge/internal/api/httperrors"
	"github/monpay/wallet-bridge/internal/util"
)

// ConnectResponse is the payload of a successful connect or reconnect.
type ConnectResponse struct {
	Address       string  `json:"address"`
	NativeBalance float64 `json:"nativeBalance"`
}

func PostConnectRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Wallet.POST("/connect", postConnectHandler(s))
}

func postConnectHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		conn, err := s.Session.Connect(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("Wallet connect failed")
			return httperrors.NewHTTPError(http.StatusBadGateway, httperrors.TypeGeneric, err.Error())
		}

		s.Metrics.ConnectsTotal.Inc()

		return c.JSON(http.StatusOK, &ConnectResponse{
			Address:       conn.Address,
			NativeBalance: conn.NativeBalance,
		})
	}
}
