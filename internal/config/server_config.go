package config

import (
	"math/big"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// EchoServer holds the HTTP listener settings.
type EchoServer struct {
	ListenAddress                  string
	HideInternalServerErrorDetails bool
	EnableLoggerMiddleware         bool
	EnableRecoverMiddleware        bool
}

// Database holds the path of the local sqlite file used to persist
// the last-connected wallet address across restarts.
type Database struct {
	Path string
}

// Wallet holds the settings used to reach the injected wallet provider.
type Wallet struct {
	// RPCURL backs the default provider transport when no injected
	// environment is supplied by the embedding application.
	RPCURL string
	// TargetBrand is the self-reported identity flag preferred when
	// several sub-providers are injected under one namespace.
	TargetBrand string
}

// Payment holds the fee and transfer constants.
type Payment struct {
	// FeePercent is the platform fee percentage applied to displayed amounts.
	FeePercent float64
	// DefaultRefundPercent is the VAT refund percentage used when the
	// caller does not override it.
	DefaultRefundPercent float64
	// DefaultVATRate is the VAT rate used to derive the VAT portion of a bill.
	DefaultVATRate float64
	// TransferAmountWei is the fixed on-chain amount submitted per
	// transfer while UseDisplayedAmount is false.
	TransferAmountWei *big.Int
	// UseDisplayedAmount switches the on-chain value to the net displayed
	// amount instead of the fixed testnet amount.
	UseDisplayedAmount bool
	// GasLimit for native transfers.
	GasLimit uint64
	// BulkSendDelay is the pause between consecutive bulk submissions.
	BulkSendDelay time.Duration
	// FallbackRecipient receives transfers whose recipient address fails
	// validation (testnet accommodation, see DESIGN.md).
	FallbackRecipient string
}

// Logger holds the zerolog settings.
type Logger struct {
	Level              zerolog.Level
	PrettyPrintConsole bool
}

// Server is the central typed configuration of the service.
type Server struct {
	Echo     EchoServer
	Database Database
	Wallet   Wallet
	Payment  Payment
	Logger   Logger
}

const envPrefix = "BRIDGE"

// DefaultServiceConfigFromEnv returns the server config as parsed from
// the environment, falling back to the defaults below.
func DefaultServiceConfigFromEnv() Server {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("echo.listen_address", ":8080")
	v.SetDefault("echo.hide_internal_server_error_details", true)
	v.SetDefault("echo.enable_logger_middleware", true)
	v.SetDefault("echo.enable_recover_middleware", true)

	v.SetDefault("database.path", "wallet-bridge.sqlite")

	v.SetDefault("wallet.rpc_url", "https://testnet-rpc.monad.xyz")
	v.SetDefault("wallet.target_brand", "MetaMask")

	v.SetDefault("payment.fee_percent", 0.5)
	v.SetDefault("payment.default_refund_percent", 85.0)
	v.SetDefault("payment.default_vat_rate", 20.0)
	v.SetDefault("payment.transfer_amount_wei", "10000000000000000")
	v.SetDefault("payment.use_displayed_amount", false)
	v.SetDefault("payment.gas_limit", 21000)
	v.SetDefault("payment.bulk_send_delay", "1s")
	v.SetDefault("payment.fallback_recipient", "0x000000000000000000000000000000000000dEaD")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.pretty_print_console", false)

	return Server{
		Echo: EchoServer{
			ListenAddress:                  v.GetString("echo.listen_address"),
			HideInternalServerErrorDetails: v.GetBool("echo.hide_internal_server_error_details"),
			EnableLoggerMiddleware:         v.GetBool("echo.enable_logger_middleware"),
			EnableRecoverMiddleware:        v.GetBool("echo.enable_recover_middleware"),
		},
		Database: Database{
			Path: v.GetString("database.path"),
		},
		Wallet: Wallet{
			RPCURL:      v.GetString("wallet.rpc_url"),
			TargetBrand: v.GetString("wallet.target_brand"),
		},
		Payment: Payment{
			FeePercent:           v.GetFloat64("payment.fee_percent"),
			DefaultRefundPercent: v.GetFloat64("payment.default_refund_percent"),
			DefaultVATRate:       v.GetFloat64("payment.default_vat_rate"),
			TransferAmountWei:    weiFromString(v.GetString("payment.transfer_amount_wei")),
			UseDisplayedAmount:   v.GetBool("payment.use_displayed_amount"),
			GasLimit:             v.GetUint64("payment.gas_limit"),
			BulkSendDelay:        v.GetDuration("payment.bulk_send_delay"),
			FallbackRecipient:    v.GetString("payment.fallback_recipient"),
		},
		Logger: Logger{
			Level:              logLevelFromString(v.GetString("logger.level")),
			PrettyPrintConsole: v.GetBool("logger.pretty_print_console"),
		},
	}
}

func weiFromString(s string) *big.Int {
	wei, ok := new(big.Int).SetString(s, 10)
	if !ok {
		log.Warn().Str("value", s).Msg("Invalid wei amount in config, falling back to 0")
		return new(big.Int)
	}
	return wei
}

func logLevelFromString(s string) zerolog.Level {
	level, err := zerolog.ParseLevel(s)
	if err != nil {
		log.Warn().Str("level", s).Msg("Unknown log level in config, falling back to info")
		return zerolog.InfoLevel
	}
	return level
}
