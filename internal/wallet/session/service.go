package session

import (
	"context"
	"encoding/json"
	"math"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github/monpay/wallet-bridge/internal/wallet/chain"
	"github/monpay/wallet-bridge/internal/wallet/provider"
)

// ErrNoAccounts is returned when the wallet grants access but exposes no
// accounts.
var ErrNoAccounts = errors.New("no accounts returned by wallet")

// ErrNotConnected is returned by operations requiring an active session.
var ErrNotConnected = errors.New("wallet not connected")

// Connection is the result of a successful connect or reconnect.
type Connection struct {
	Address string
	// NativeBalance is the account balance converted from the smallest
	// unit using the chain's declared decimals. Never cached; re-queried
	// on every connect.
	NativeBalance float64
}

// EnvironmentFunc returns a snapshot of the injected wallet namespace.
// It is called at every connect/reconnect since the host environment may
// change between calls.
type EnvironmentFunc func(ctx context.Context) (*provider.Injected, error)

// Service owns the process-wide connection state: the connected address,
// persisted across restarts, with a connect/reconnect/disconnect
// lifecycle.
type Service interface {
	// Connect requests account access through the resolved provider and
	// transitions to Connected. Fails with a wrapped cause on any error;
	// state is left unchanged (a partially-completed chain-switch side
	// effect is not rolled back).
	Connect(ctx context.Context) (*Connection, error)

	// Reconnect restores the session without prompting the user. It
	// returns (nil, nil) on any failure or empty account list, since it
	// runs unattended at load time.
	Reconnect(ctx context.Context) (*Connection, error)

	// Disconnect clears the session and the persisted address. Always
	// succeeds from the caller's perspective.
	Disconnect(ctx context.Context) error

	// IsConnected reports whether a session is active.
	IsConnected() bool

	// CurrentAddress returns the connected address, or "" when disconnected.
	CurrentAddress() string

	// Provider returns the provider handle for the active session,
	// resolving it on demand after a hydrated restart.
	Provider(ctx context.Context) (provider.Provider, error)
}

type service struct {
	resolver *provider.Resolver
	ensurer  chain.Ensurer
	store    Store
	env      EnvironmentFunc
	chain    chain.Descriptor

	mu       sync.Mutex
	address  string
	resolved provider.Provider
}

// NewService creates the connection session, hydrating the address from
// the persisted store if a prior session exists.
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewService(
	ctx context.Context,
	chainDesc chain.Descriptor,
	resolver *provider.Resolver,
	ensurer chain.Ensurer,
	store Store,
	env EnvironmentFunc,
) (Service, error) {
	s := &service{
		resolver: resolver,
		ensurer:  ensurer,
		store:    store,
		env:      env,
		chain:    chainDesc,
	}

	address, err := store.LoadAddress(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hydrate session")
	}

	if address != "" {
		s.address = address
		log.Info().Str("address", address).Msg("Restored persisted wallet session")
	}

	return s, nil
}

// Connect resolves a provider, ensures the target chain and requests
// account access.
func (s *service) Connect(ctx context.Context) (*Connection, error) {
	conn, err := s.establish(ctx, "eth_requestAccounts")
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect wallet")
	}
	return conn, nil
}

// Reconnect restores the session silently via the non-prompting account
// query. All failures degrade to a nil result.
func (s *service) Reconnect(ctx context.Context) (*Connection, error) {
	conn, err := s.establish(ctx, "eth_accounts")
	if err != nil {
		log.Debug().Err(err).Msg("Silent reconnect failed, leaving session state unchanged")
		return nil, nil
	}
	return conn, nil
}

// establish runs the shared connect path: resolve, ensure chain, query
// accounts via accountsMethod, read balance, then commit state.
func (s *service) establish(ctx context.Context, accountsMethod string) (*Connection, error) {
	env, err := s.env(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to inspect wallet environment")
	}

	p, err := s.resolver.Resolve(env)
	if err != nil {
		return nil, err
	}

	if err := s.ensurer.Ensure(ctx, p); err != nil {
		return nil, err
	}

	raw, err := p.Request(ctx, accountsMethod)
	if err != nil {
		return nil, err
	}

	var accounts []string
	if err := json.Unmarshal(raw, &accounts); err != nil {
		return nil, errors.Wrap(err, "failed to decode accounts response")
	}

	if len(accounts) == 0 {
		return nil, ErrNoAccounts
	}

	address := accounts[0]
	balance, err := s.queryBalance(ctx, p, address)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.address = address
	s.resolved = p
	s.mu.Unlock()

	if err := s.store.SaveAddress(ctx, address); err != nil {
		log.Error().Err(err).Msg("Failed to persist connected address")
	}

	log.Info().Str("address", address).Float64("balance", balance).Msg("Wallet connected")

	return &Connection{Address: address, NativeBalance: balance}, nil
}

func (s *service) queryBalance(ctx context.Context, p provider.Provider, address string) (float64, error) {
	raw, err := p.Request(ctx, "eth_getBalance", address, "latest")
	if err != nil {
		return 0, errors.Wrap(err, "failed to query balance")
	}

	var wei hexutil.Big
	if err := json.Unmarshal(raw, &wei); err != nil {
		return 0, errors.Wrap(err, "failed to decode balance response")
	}

	divisor := new(big.Float).SetFloat64(math.Pow10(s.chain.NativeCurrency.Decimals))
	balance, _ := new(big.Float).Quo(new(big.Float).SetInt(wei.ToInt()), divisor).Float64()

	return balance, nil
}

// Disconnect clears in-memory and persisted state.
func (s *service) Disconnect(ctx context.Context) error {
	s.mu.Lock()
	s.address = ""
	s.resolved = nil
	s.mu.Unlock()

	if err := s.store.ClearAddress(ctx); err != nil {
		// Disconnect always succeeds; a stale persisted address only
		// causes an extra silent reconnect attempt on next start.
		log.Error().Err(err).Msg("Failed to clear persisted address")
	}

	log.Info().Msg("Wallet disconnected")

	return nil
}

func (s *service) IsConnected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.address != ""
}

func (s *service) CurrentAddress() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.address
}

// Provider returns the session's provider handle. After a hydrated
// restart the handle is resolved lazily on first use.
//
//nolint:ireturn
func (s *service) Provider(ctx context.Context) (provider.Provider, error) {
	s.mu.Lock()
	if s.address == "" {
		s.mu.Unlock()
		return nil, ErrNotConnected
	}
	if s.resolved != nil {
		p := s.resolved
		s.mu.Unlock()
		return p, nil
	}
	s.mu.Unlock()

	env, err := s.env(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to inspect wallet environment")
	}

	p, err := s.resolver.Resolve(env)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.resolved = p
	s.mu.Unlock()

	return p, nil
}
