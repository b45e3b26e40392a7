package probe

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/monpay/wallet-bridge/internal/config"
	"github/monpay/wallet-bridge/internal/wallet/chain"
	"github/monpay/wallet-bridge/internal/wallet/provider"
)

const probeTimeout = 10 * time.Second

func New() *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "Probes connectivity of the configured RPC endpoint",
		Run: func(_ *cobra.Command, _ []string) {
			runProbe()
		},
	}
}

// runProbe dials the configured RPC node and verifies it serves the
// target chain.
func runProbe() {
	cfg := config.DefaultServiceConfigFromEnv()

	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	transport, closeTransport, err := provider.NewRPCTransport(ctx, cfg.Wallet.RPCURL)
	if err != nil {
		log.Fatal().Err(err).Str("rpc_url", cfg.Wallet.RPCURL).Msg("Failed to dial RPC node")
	}
	defer closeTransport()

	raw, err := transport.Request(ctx, "eth_chainId")
	if err != nil {
		log.Fatal().Err(err).Msg("eth_chainId request failed")
	}

	var chainID hexutil.Uint64
	if err := json.Unmarshal(raw, &chainID); err != nil {
		log.Fatal().Err(err).Msg("Failed to decode chain id")
	}

	if int(chainID) != chain.MonadTestnet.ChainID {
		log.Fatal().
			Int("got", int(chainID)).
			Int("want", chain.MonadTestnet.ChainID).
			Msg("RPC node serves a different chain")
	}

	log.Info().
		Str("rpc_url", cfg.Wallet.RPCURL).
		Int("chain_id", int(chainID)).
		Msg("RPC node reachable and on target chain")
}
