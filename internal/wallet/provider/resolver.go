package provider

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Resolution failures. Each one carries an actionable, distinct message:
// silent misselection routes transactions to a provider that cannot
// execute them, so the caller must be able to tell the cases apart.
var (
	// ErrNoWalletInstalled: no wallet object of any kind is injected.
	ErrNoWalletInstalled = errors.New("no EVM wallet installed")

	// ErrWrongWalletType: only a non-EVM (e.g. Solana-only) wallet is
	// injected.
	ErrWrongWalletType = errors.New("non-EVM wallet detected, please install an EVM-compatible wallet")

	// ErrAmbiguousProvider: an unidentified EVM object coexists with a
	// non-EVM wallet that may be intercepting provider calls.
	ErrAmbiguousProvider = errors.New("a non-EVM wallet may be intercepting provider calls, disable it or use an EVM wallet")

	// ErrNoUsableProvider: an EVM object exists but exposes no working
	// request operation.
	ErrNoUsableProvider = errors.New("no usable provider found")
)

// Resolver selects exactly one provider handle out of the injected wallet
// environment. The disambiguation policy is an ordered strategy pipeline:
// each strategy either resolves, fails, or passes to the next one.
type Resolver struct {
	targetBrand string
	strategies  []strategy
}

// strategy inspects the environment and returns (provider, done, err).
// done is false to pass resolution on to the next strategy.
type strategy func(env *Injected) (Provider, bool, error)

// NewResolver creates a resolver preferring candidates that self-identify
// as targetBrand.
func NewResolver(targetBrand string) *Resolver {
	r := &Resolver{targetBrand: targetBrand}
	r.strategies = []strategy{
		r.requireEVMObject,
		r.pickFromSubProviders,
		r.pickBrandedObject,
		r.pickRequestCapableObject,
	}
	return r
}

// Resolve inspects env and returns the single provider handle to use for
// this session.
func (r *Resolver) Resolve(env *Injected) (Provider, error) {
	for _, s := range r.strategies {
		p, done, err := s(env)
		if err != nil {
			return nil, err
		}
		if done {
			return p, nil
		}
	}
	return nil, ErrNoUsableProvider
}

// requireEVMObject fails early when no EVM-capable object is injected at
// all, distinguishing "wrong wallet type" from "no wallet installed".
func (r *Resolver) requireEVMObject(env *Injected) (Provider, bool, error) {
	if env != nil && env.Ethereum != nil {
		return nil, false, nil
	}
	if env != nil && env.SolanaPresent {
		return nil, false, ErrWrongWalletType
	}
	return nil, false, ErrNoWalletInstalled
}

// pickFromSubProviders handles namespaces that multiplex several
// sub-providers: prefer the target brand, fall back to the first one with
// a working request operation.
func (r *Resolver) pickFromSubProviders(env *Injected) (Provider, bool, error) {
	eth := env.Ethereum
	if !eth.HasSubProviders() {
		return nil, false, nil
	}

	// A brand-flagged entry without a working request operation is skipped
	// on purpose; the capable fallback below beats a dead transport.
	for _, sub := range eth.Providers {
		if sub.HasIdentityFlag(r.targetBrand) && sub.SupportsRequest() {
			return sub.Transport, true, nil
		}
	}

	for _, sub := range eth.Providers {
		if sub.SupportsRequest() {
			log.Debug().Str("target_brand", r.targetBrand).Msg("Target brand not injected, falling back to first request-capable sub-provider")
			return sub.Transport, true, nil
		}
	}

	return nil, false, nil
}

// pickBrandedObject uses the EVM object directly when it self-identifies
// as the target brand.
func (r *Resolver) pickBrandedObject(env *Injected) (Provider, bool, error) {
	eth := env.Ethereum
	if eth.HasIdentityFlag(r.targetBrand) && eth.SupportsRequest() {
		return eth.Transport, true, nil
	}
	return nil, false, nil
}

// pickRequestCapableObject accepts an unidentified but request-capable EVM
// object, unless a non-EVM wallet is also present: proceeding in that
// ambiguous default-handler situation risks undefined behavior.
func (r *Resolver) pickRequestCapableObject(env *Injected) (Provider, bool, error) {
	eth := env.Ethereum
	if !eth.SupportsRequest() {
		return nil, false, nil
	}
	if env.SolanaPresent {
		return nil, false, ErrAmbiguousProvider
	}
	return eth.Transport, true, nil
}
