package wallet_test

import (
	"net/http"
	"testing"

	"github.com/go-openapi/swag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/monpay/wallet-bridge/internal/api"
	"github/monpay/wallet-bridge/internal/api/handlers/wallet"
	"github/monpay/wallet-bridge/internal/test"
)

const (
	testAddress      = "0x52908400098527886E0F7030069857D2E4169EE7"
	testRecipient    = "0x8617E340B3D01FA5F11F306F4090FD50E238070D"
	testTransactionH = "0x1111111111111111111111111111111111111111111111111111111111111111"
)

func connect(t *testing.T, s *api.Server) {
	t.Helper()

	res := test.PerformRequest(t, s, "POST", "/api/v1/wallet/connect", nil)
	require.Equal(t, http.StatusOK, res.Result().StatusCode, res.Body.String())
}

func TestPostTransfer(t *testing.T) {
	p := test.NewScriptedProvider(testAddress)
	p.Responses["eth_sendTransaction"] = `"` + testTransactionH + `"`

	test.WithTestServer(t, p, func(s *api.Server) {
		connect(t, s)

		res := test.PerformRequest(t, s, "POST", "/api/v1/wallet/transfer", &wallet.PostTransferPayload{
			Recipient:  swag.String(testRecipient),
			Amount:     swag.Float64(1000),
			FeeEnabled: true,
		})
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response wallet.TransferResponse
		test.ParseResponse(t, res, &response)

		assert.True(t, response.Success, response.Error)
		assert.Equal(t, testTransactionH, response.TransactionHash)
		require.NotNil(t, response.PlatformFee)
		assert.InDelta(t, 5.0, *response.PlatformFee, 1e-9)
		require.NotNil(t, response.NetAmount)
		assert.InDelta(t, 995.0, *response.NetAmount, 1e-9)
	})
}

func TestPostTransferValidation(t *testing.T) {
	test.WithTestServer(t, test.NewScriptedProvider(testAddress), func(s *api.Server) {
		res := test.PerformRequest(t, s, "POST", "/api/v1/wallet/transfer", map[string]any{
			"recipient": testRecipient,
			// amount missing
		})
		require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)
	})
}

func TestPostTransferNotConnected(t *testing.T) {
	test.WithTestServer(t, test.NewScriptedProvider(testAddress), func(s *api.Server) {
		res := test.PerformRequest(t, s, "POST", "/api/v1/wallet/transfer", &wallet.PostTransferPayload{
			Recipient: swag.String(testRecipient),
			Amount:    swag.Float64(10),
		})
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response wallet.TransferResponse
		test.ParseResponse(t, res, &response)

		assert.False(t, response.Success)
		assert.Contains(t, response.Error, "not connected")
	})
}

func TestPostBulkTransfer(t *testing.T) {
	p := test.NewScriptedProvider(testAddress)
	p.Responses["eth_sendTransaction"] = `"` + testTransactionH + `"`

	test.WithTestServer(t, p, func(s *api.Server) {
		connect(t, s)

		res := test.PerformRequest(t, s, "POST", "/api/v1/wallet/transfer/bulk", &wallet.PostBulkTransferPayload{
			Transfers: []wallet.BulkTransferItem{
				{Recipient: swag.String(testRecipient), Amount: swag.Float64(100)},
				{Recipient: swag.String(testRecipient), Amount: swag.Float64(200)},
			},
			FeeEnabled: true,
		})
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response wallet.BulkTransferResponse
		test.ParseResponse(t, res, &response)

		assert.True(t, response.Success, response.Error)
		assert.Equal(t, testTransactionH, response.LastTransactionHash)
		assert.Len(t, response.TransactionHashes, 2)
		assert.Zero(t, response.FailedCount)
		require.NotNil(t, response.TotalPlatformFee)
		assert.InDelta(t, 1.5, *response.TotalPlatformFee, 1e-9)
	})
}

func TestGetStatus(t *testing.T) {
	test.WithTestServer(t, test.NewScriptedProvider(testAddress), func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/api/v1/wallet/status", nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var status wallet.StatusResponse
		test.ParseResponse(t, res, &status)
		assert.False(t, status.Connected)

		connect(t, s)

		res = test.PerformRequest(t, s, "GET", "/api/v1/wallet/status", nil)
		test.ParseResponse(t, res, &status)
		assert.True(t, status.Connected)
		assert.Equal(t, testAddress, status.Address)
	})
}

func TestPostDisconnect(t *testing.T) {
	test.WithTestServer(t, test.NewScriptedProvider(testAddress), func(s *api.Server) {
		connect(t, s)

		res := test.PerformRequest(t, s, "POST", "/api/v1/wallet/disconnect", nil)
		require.Equal(t, http.StatusNoContent, res.Result().StatusCode)

		assert.False(t, s.Session.IsConnected())
	})
}

func TestGetTransaction(t *testing.T) {
	p := test.NewScriptedProvider(testAddress)
	p.Responses["eth_getTransactionByHash"] = `{"gasPrice":"0x3b9aca00"}`
	p.Responses["eth_getTransactionReceipt"] = `{"status":"0x1","gasUsed":"0x5208"}`

	test.WithTestServer(t, p, func(s *api.Server) {
		connect(t, s)

		res := test.PerformRequest(t, s, "GET", "/api/v1/wallet/transactions/"+testTransactionH, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response wallet.TransactionResponse
		test.ParseResponse(t, res, &response)

		assert.True(t, response.Success)
		assert.True(t, response.Verified)
		assert.Equal(t, uint64(21000), response.GasUsed)
		assert.Equal(t, "1000000000", response.GasPrice)
	})
}
