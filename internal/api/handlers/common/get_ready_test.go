package common_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github/monpay/wallet-bridge/internal/api"
	"github/monpay/wallet-bridge/internal/test"
)

func TestGetReadyReadiness(t *testing.T) {
	test.WithTestServer(t, test.NewScriptedProvider("0x52908400098527886E0F7030069857D2E4169EE7"), func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/-/ready", nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)
		require.Equal(t, "Ready.", res.Body.String())
	})
}

func TestGetReadyReadinessBroken(t *testing.T) {
	test.WithTestServer(t, test.NewScriptedProvider("0x52908400098527886E0F7030069857D2E4169EE7"), func(s *api.Server) {
		// forcefully remove an initialized component to check if ready state works
		s.TxInfo = nil

		res := test.PerformRequest(t, s, "GET", "/-/ready", nil)
		require.Equal(t, 521, res.Result().StatusCode)
		require.Equal(t, "Not ready.", res.Body.String())
	})
}

func TestGetReadyDBBrokenNotReady(t *testing.T) {
	test.WithTestServer(t, test.NewScriptedProvider("0x52908400098527886E0F7030069857D2E4169EE7"), func(s *api.Server) {
		// forcefully close the session database
		err := s.DB.Close()
		require.NoError(t, err)

		res := test.PerformRequest(t, s, "GET", "/-/ready", nil)
		require.Equal(t, 521, res.Result().StatusCode)
		require.Equal(t, "Not ready.", res.Body.String())
	})
}

func TestGetHealthy(t *testing.T) {
	test.WithTestServer(t, test.NewScriptedProvider("0x52908400098527886E0F7030069857D2E4169EE7"), func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/-/healthy", nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)
	})
}
