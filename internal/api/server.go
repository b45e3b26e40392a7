package api

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github/monpay/wallet-bridge/internal/config"
	"github/monpay/wallet-bridge/internal/metrics"
	"github/monpay/wallet-bridge/internal/wallet/chain"
	"github/monpay/wallet-bridge/internal/wallet/fee"
	"github/monpay/wallet-bridge/internal/wallet/provider"
	"github/monpay/wallet-bridge/internal/wallet/session"
	"github/monpay/wallet-bridge/internal/wallet/transfer"
	"github/monpay/wallet-bridge/internal/wallet/txinfo"
)

// SessionService is the connection lifecycle consumed by the handlers.
type SessionService = session.Service

// TransferService is the dispatch surface consumed by the handlers.
type TransferService = transfer.Service

// TxInfoService is the transaction lookup surface consumed by the handlers.
type TxInfoService = txinfo.Service

type Router struct {
	Routes      []*echo.Route
	Root        *echo.Group
	Management  *echo.Group
	APIV1Wallet *echo.Group
}

// Server is a central struct keeping all the dependencies. The Echo and
// Router fields are initialized by router.Init after construction.
type Server struct {
	Echo   *echo.Echo
	Router *Router

	Config   config.Server
	DB       *sql.DB
	Metrics  *metrics.Service
	Session  SessionService
	Transfer TransferService
	TxInfo   TxInfoService

	closeTransport func()
}

// NewServer returns a bare Server carrying only the config. Components are
// attached by InitNewServer or by tests.
func NewServer(config config.Server) *Server {
	return &Server{
		Config: config,
	}
}

// InitNewServer constructs the full component graph against the
// configured RPC endpoint.
func InitNewServer(ctx context.Context, cfg config.Server) (*Server, error) {
	transport, closeTransport, err := provider.NewRPCTransport(ctx, cfg.Wallet.RPCURL)
	if err != nil {
		return nil, err
	}

	s, err := InitNewServerWithTransport(ctx, cfg, transport, closeTransport)
	if err != nil {
		closeTransport()
		return nil, err
	}

	return s, nil
}

// InitNewServerWithTransport constructs the component graph around the
// given provider transport: session store, resolver, chain ensurer,
// session, dispatcher and transaction lookup. closeTransport may be nil.
func InitNewServerWithTransport(ctx context.Context, cfg config.Server, transport provider.Provider, closeTransport func()) (*Server, error) {
	s := NewServer(cfg)

	db, err := session.OpenDatabase(ctx, cfg.Database.Path)
	if err != nil {
		return nil, err
	}
	s.DB = db
	s.closeTransport = closeTransport

	env := provider.NewRPCEnvironment(transport, cfg.Wallet.TargetBrand)
	resolver := provider.NewResolver(cfg.Wallet.TargetBrand)
	ensurer := chain.NewEnsurer(chain.MonadTestnet)

	sess, err := session.NewService(ctx, chain.MonadTestnet, resolver, ensurer, session.NewStore(db),
		func(_ context.Context) (*provider.Injected, error) { return env, nil })
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to init session service")
	}
	s.Session = sess

	s.Metrics = metrics.New()

	calc := fee.NewCalculator(cfg.Payment.FeePercent, cfg.Payment.DefaultRefundPercent, cfg.Payment.DefaultVATRate)
	s.Transfer = transfer.NewService(cfg.Payment, chain.MonadTestnet, calc, sess, ensurer, s.Metrics)
	s.TxInfo = txinfo.NewService(sess)

	return s, nil
}

// Ready reports whether all components are initialized.
func (s *Server) Ready() bool {
	return s.Echo != nil &&
		s.Router != nil &&
		s.DB != nil &&
		s.Metrics != nil &&
		s.Session != nil &&
		s.Transfer != nil &&
		s.TxInfo != nil
}

func (s *Server) Start() error {
	if !s.Ready() {
		return errors.New("server is not ready")
	}

	if err := s.Echo.Start(s.Config.Echo.ListenAddress); err != nil {
		return fmt.Errorf("failed to start echo server: %w", err)
	}

	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	log.Warn().Msg("Shutting down server")

	if s.closeTransport != nil {
		s.closeTransport()
	}

	if s.DB != nil {
		if err := s.DB.Close(); err != nil && !errors.Is(err, sql.ErrConnDone) {
			log.Error().Err(err).Msg("Failed to close database connection")
		}
	}

	if s.Echo != nil {
		if err := s.Echo.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "failed to shutdown echo server")
		}
	}

	return nil
}
