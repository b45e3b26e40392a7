package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/subosito/gotenv"
	"github/monpay/wallet-bridge/cmd/env"
	"github/monpay/wallet-bridge/cmd/probe"
	"github/monpay/wallet-bridge/cmd/server"
	"github/monpay/wallet-bridge/internal/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Version: config.GetFormattedBuildArgs(),
	Use:     "bridge",
	Short:   config.ModuleName,
	Long: fmt.Sprintf(`%v

Wallet bridge for VAT-refund payouts on the Monad testnet.
Requires configuration through ENV.`, config.ModuleName),
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// optional local overrides, ignored when no .env file exists
	_ = gotenv.Load()

	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	// attach the subcommands
	rootCmd.AddCommand(
		env.New(),
		probe.New(),
		server.New(),
	)

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Failed to execute root command")
		os.Exit(1)
	}
}
