package test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github/monpay/wallet-bridge/internal/api"
	"github/monpay/wallet-bridge/internal/api/router"
	"github/monpay/wallet-bridge/internal/config"
)

// WithTestServer initializes a fully wired server around the given
// provider transport, with an isolated sqlite file per test, and hands it
// to closure.
func WithTestServer(t *testing.T, transport *ScriptedProvider, closure func(s *api.Server)) {
	t.Helper()

	cfg := config.DefaultServiceConfigFromEnv()
	cfg.Database.Path = filepath.Join(t.TempDir(), "test.sqlite")
	cfg.Echo.EnableLoggerMiddleware = false
	cfg.Payment.BulkSendDelay = 0

	s, err := api.InitNewServerWithTransport(context.Background(), cfg, transport, nil)
	require.NoError(t, err)

	router.Init(s)

	t.Cleanup(func() {
		if err := s.Shutdown(context.Background()); err != nil {
			t.Logf("failed to shutdown test server: %v", err)
		}
	})

	closure(s)
}

// PerformRequest runs a request against the test server without binding a
// listener. body is JSON-marshaled when non-nil.
func PerformRequest(t *testing.T, s *api.Server, method string, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echoHeaderContentType, "application/json")

	res := httptest.NewRecorder()
	s.Echo.ServeHTTP(res, req)

	return res
}

const echoHeaderContentType = "Content-Type"

// ParseResponse unmarshals the recorded JSON body into v.
func ParseResponse(t *testing.T, res *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), v))
}
