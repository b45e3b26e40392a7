package chain

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github/monpay/wallet-bridge/internal/wallet/provider"
)

// Ensurer drives the switch/add handshake that guarantees subsequent
// provider calls target the configured chain.
type Ensurer interface {
	// Ensure switches the wallet to the target chain, adding its
	// configuration first if the wallet does not know it. Idempotent from
	// the caller's perspective; it must be invoked before every
	// transfer-submitting operation since the user may switch chains in
	// the wallet UI between calls.
	Ensure(ctx context.Context, p provider.Provider) error
}

type ensurer struct {
	chain Descriptor
}

// NewEnsurer creates an Ensurer for the given chain.
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewEnsurer(chain Descriptor) Ensurer {
	return &ensurer{chain: chain}
}

// Ensure switches to the target chain, falling back to an add-chain
// request when the wallet reports the chain as unrecognized. The add-chain
// call is expected to leave the wallet on the new chain, so the switch is
// not retried afterwards. Any other failure is a fatal precondition for
// subsequent transfers and propagates unchanged.
func (e *ensurer) Ensure(ctx context.Context, p provider.Provider) error {
	_, err := p.Request(ctx, "wallet_switchEthereumChain", switchChainParams{ChainID: e.chain.ChainIDHex})
	if err == nil {
		return nil
	}

	rpcErr, ok := provider.AsRPCError(err)
	if !ok || rpcErr.Code != provider.CodeUnrecognizedChain {
		return errors.Wrapf(err, "failed to switch to chain %s", e.chain.DisplayName)
	}

	log.Info().
		Int("chain_id", e.chain.ChainID).
		Str("chain_name", e.chain.DisplayName).
		Msg("Chain not recognized by wallet, adding it")

	if _, err := p.Request(ctx, "wallet_addEthereumChain", e.chain.toAddChainParams()); err != nil {
		return errors.Wrapf(err, "failed to add chain %s", e.chain.DisplayName)
	}

	return nil
}
