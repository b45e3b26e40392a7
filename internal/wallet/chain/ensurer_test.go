package chain_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/monpay/wallet-bridge/internal/wallet/chain"
	"github/monpay/wallet-bridge/internal/wallet/provider"
)

type recordedCall struct {
	method string
	params []any
}

type fakeProvider struct {
	calls     []recordedCall
	switchErr error
	addErr    error
}

func (p *fakeProvider) Request(_ context.Context, method string, params ...any) (json.RawMessage, error) {
	p.calls = append(p.calls, recordedCall{method: method, params: params})

	switch method {
	case "wallet_switchEthereumChain":
		if p.switchErr != nil {
			return nil, p.switchErr
		}
	case "wallet_addEthereumChain":
		if p.addErr != nil {
			return nil, p.addErr
		}
	}

	return json.RawMessage(`null`), nil
}

func TestEnsureSwitchSucceeds(t *testing.T) {
	p := &fakeProvider{}
	err := chain.NewEnsurer(chain.MonadTestnet).Ensure(context.Background(), p)

	require.NoError(t, err)
	require.Len(t, p.calls, 1)
	assert.Equal(t, "wallet_switchEthereumChain", p.calls[0].method)
}

func TestEnsureAddsUnrecognizedChain(t *testing.T) {
	p := &fakeProvider{
		switchErr: &provider.RPCError{Code: provider.CodeUnrecognizedChain, Message: "unrecognized chain"},
	}

	err := chain.NewEnsurer(chain.MonadTestnet).Ensure(context.Background(), p)
	require.NoError(t, err)

	require.Len(t, p.calls, 2)
	assert.Equal(t, "wallet_switchEthereumChain", p.calls[0].method)
	assert.Equal(t, "wallet_addEthereumChain", p.calls[1].method)

	// The add-chain request carries the full descriptor, verbatim.
	require.Len(t, p.calls[1].params, 1)
	raw, err := json.Marshal(p.calls[1].params[0])
	require.NoError(t, err)

	var params struct {
		ChainID        string `json:"chainId"`
		ChainName      string `json:"chainName"`
		NativeCurrency struct {
			Symbol   string `json:"symbol"`
			Decimals int    `json:"decimals"`
		} `json:"nativeCurrency"`
		RPCURLs           []string `json:"rpcUrls"`
		BlockExplorerURLs []string `json:"blockExplorerUrls"`
	}
	require.NoError(t, json.Unmarshal(raw, &params))

	assert.Equal(t, "0x279F", params.ChainID)
	assert.Equal(t, "Monad Testnet", params.ChainName)
	assert.Equal(t, "MON", params.NativeCurrency.Symbol)
	assert.Equal(t, 18, params.NativeCurrency.Decimals)
	assert.Equal(t, []string{"https://testnet-rpc.monad.xyz"}, params.RPCURLs)
	assert.Equal(t, []string{"https://testnet.monadexplorer.com"}, params.BlockExplorerURLs)
}

func TestEnsurePropagatesOtherSwitchErrors(t *testing.T) {
	p := &fakeProvider{
		switchErr: &provider.RPCError{Code: 4001, Message: "user rejected"},
	}

	err := chain.NewEnsurer(chain.MonadTestnet).Ensure(context.Background(), p)
	require.Error(t, err)

	// No add-chain attempt for anything but code 4902.
	require.Len(t, p.calls, 1)

	rpcErr, ok := provider.AsRPCError(err)
	require.True(t, ok)
	assert.Equal(t, 4001, rpcErr.Code)
}

func TestEnsurePropagatesAddChainFailure(t *testing.T) {
	p := &fakeProvider{
		switchErr: &provider.RPCError{Code: provider.CodeUnrecognizedChain, Message: "unrecognized chain"},
		addErr:    &provider.RPCError{Code: 4001, Message: "user rejected"},
	}

	err := chain.NewEnsurer(chain.MonadTestnet).Ensure(context.Background(), p)
	require.Error(t, err)
	require.Len(t, p.calls, 2)
}
