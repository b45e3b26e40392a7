package provider_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/monpay/wallet-bridge/internal/wallet/provider"
)

type fakeTransport struct {
	name string
}

func (t *fakeTransport) Request(_ context.Context, _ string, _ ...any) (json.RawMessage, error) {
	return json.RawMessage(`null`), nil
}

func newResolver() *provider.Resolver {
	return provider.NewResolver("MetaMask")
}

func TestResolveNoWalletInstalled(t *testing.T) {
	_, err := newResolver().Resolve(nil)
	require.ErrorIs(t, err, provider.ErrNoWalletInstalled)

	_, err = newResolver().Resolve(&provider.Injected{})
	require.ErrorIs(t, err, provider.ErrNoWalletInstalled)
}

func TestResolveWrongWalletType(t *testing.T) {
	// Solana-only wallet present, no EVM object at all.
	_, err := newResolver().Resolve(&provider.Injected{SolanaPresent: true})
	require.ErrorIs(t, err, provider.ErrWrongWalletType)
}

func TestResolvePrefersTargetBrandSubProvider(t *testing.T) {
	other := &fakeTransport{name: "other"}
	metaMask := &fakeTransport{name: "metamask"}

	env := &provider.Injected{
		Ethereum: &provider.Candidate{
			Providers: []*provider.Candidate{
				{Transport: other},
				{IdentityFlags: map[string]bool{"MetaMask": true}, Transport: metaMask},
			},
		},
	}

	p, err := newResolver().Resolve(env)
	require.NoError(t, err)
	assert.Same(t, metaMask, p)
}

func TestResolveFallsBackToFirstRequestCapableSubProvider(t *testing.T) {
	capable := &fakeTransport{name: "capable"}

	env := &provider.Injected{
		Ethereum: &provider.Candidate{
			Providers: []*provider.Candidate{
				{IdentityFlags: map[string]bool{"OtherWallet": true}}, // no transport
				{Transport: capable},
			},
		},
	}

	p, err := newResolver().Resolve(env)
	require.NoError(t, err)
	assert.Same(t, capable, p)
}

func TestResolveBrandedObjectDirectly(t *testing.T) {
	metaMask := &fakeTransport{name: "metamask"}

	env := &provider.Injected{
		Ethereum: &provider.Candidate{
			IdentityFlags: map[string]bool{"MetaMask": true},
			Transport:     metaMask,
		},
	}

	p, err := newResolver().Resolve(env)
	require.NoError(t, err)
	assert.Same(t, metaMask, p)
}

func TestResolveUnbrandedRequestCapableObject(t *testing.T) {
	transport := &fakeTransport{name: "unbranded"}

	env := &provider.Injected{
		Ethereum: &provider.Candidate{Transport: transport},
	}

	p, err := newResolver().Resolve(env)
	require.NoError(t, err)
	assert.Same(t, transport, p)
}

func TestResolveAmbiguousWithSolanaWallet(t *testing.T) {
	// An unidentified EVM object next to a Solana wallet is ambiguous:
	// the Solana wallet may be intercepting provider calls.
	env := &provider.Injected{
		Ethereum:      &provider.Candidate{Transport: &fakeTransport{name: "unbranded"}},
		SolanaPresent: true,
	}

	_, err := newResolver().Resolve(env)
	require.ErrorIs(t, err, provider.ErrAmbiguousProvider)
}

func TestResolveNoUsableProvider(t *testing.T) {
	env := &provider.Injected{
		Ethereum: &provider.Candidate{IdentityFlags: map[string]bool{"MetaMask": true}},
	}

	_, err := newResolver().Resolve(env)
	require.ErrorIs(t, err, provider.ErrNoUsableProvider)
}

func TestAsRPCError(t *testing.T) {
	rpcErr, ok := provider.AsRPCError(&provider.RPCError{Code: 4902, Message: "unknown chain"})
	require.True(t, ok)
	assert.Equal(t, 4902, rpcErr.Code)

	_, ok = provider.AsRPCError(assert.AnError)
	assert.False(t, ok)
}
