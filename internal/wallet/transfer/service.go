package transfer

import (
	"context"
	"encoding/json"
	"math"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/go-openapi/swag"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github/monpay/wallet-bridge/internal/config"
	"github/monpay/wallet-bridge/internal/metrics"
	"github/monpay/wallet-bridge/internal/wallet/addrutil"
	"github/monpay/wallet-bridge/internal/wallet/chain"
	"github/monpay/wallet-bridge/internal/wallet/fee"
	"github/monpay/wallet-bridge/internal/wallet/provider"
	"github/monpay/wallet-bridge/internal/wallet/session"
)

// Service builds and submits single and bulk native-currency transfers on
// top of the connection session, applying fee accounting and per-recipient
// failure isolation. All failures are folded into the outcome record.
type Service interface {
	// Send submits one transfer.
	Send(ctx context.Context, req Request) Outcome

	// SendBulk sequentially submits one transfer per request. One bad
	// recipient does not abort the batch; a fixed delay is imposed
	// between submissions.
	SendBulk(ctx context.Context, reqs []Request, feeEnabled bool) BulkOutcome
}

type service struct {
	cfg       config.Payment
	chainDesc chain.Descriptor
	calc      *fee.Calculator
	session   session.Service
	ensurer   chain.Ensurer
	metrics   *metrics.Service
}

// NewService creates the transfer dispatcher. metrics may be nil.
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewService(
	cfg config.Payment,
	chainDesc chain.Descriptor,
	calc *fee.Calculator,
	sess session.Service,
	ensurer chain.Ensurer,
	m *metrics.Service,
) Service {
	return &service{
		cfg:       cfg,
		chainDesc: chainDesc,
		calc:      calc,
		session:   sess,
		ensurer:   ensurer,
		metrics:   m,
	}
}

// Send submits a single transfer.
func (s *service) Send(ctx context.Context, req Request) Outcome {
	// 1. Require an active session and re-ensure the target chain; the
	// user may have switched chains in the wallet UI since the last call.
	p, err := s.preparedProvider(ctx)
	if err != nil {
		return Outcome{Error: err.Error()}
	}

	// 2. Validate the recipient, substituting the configured fallback
	// rather than failing the whole transfer.
	recipient := s.validatedRecipient(req.Recipient)

	// 3. Validate the displayed amount.
	if req.DisplayAmount <= 0 {
		return Outcome{Error: "amount must be greater than zero"}
	}

	outcome := Outcome{}

	// 4. Fee figures are computed from the displayed amount for
	// reporting only; the fee is not separately transferred on-chain.
	if req.FeeEnabled {
		outcome.PlatformFee = swag.Float64(s.calc.PlatformFee(req.DisplayAmount))
		outcome.NetAmount = swag.Float64(s.calc.NetAmount(req.DisplayAmount))
	}

	// 5. Submit the on-chain transfer.
	txHash, err := s.submit(ctx, p, recipient, req.DisplayAmount)
	if err != nil {
		if s.metrics != nil {
			s.metrics.TransfersFailedTotal.Inc()
		}
		log.Warn().Err(err).Str("recipient", recipient).Msg("Transfer failed")
		return Outcome{Error: err.Error()}
	}

	outcome.Success = true
	outcome.TxHash = txHash

	return outcome
}

// SendBulk sequentially dispatches the batch with per-item failure
// isolation.
func (s *service) SendBulk(ctx context.Context, reqs []Request, feeEnabled bool) BulkOutcome {
	// 1. Structural problems fail the whole batch before any submission.
	if len(reqs) == 0 {
		return BulkOutcome{Error: "no transfer requests provided"}
	}

	p, err := s.preparedProvider(ctx)
	if err != nil {
		return BulkOutcome{Error: err.Error()}
	}

	// 2. Pre-validate every amount; a single invalid amount aborts the
	// batch eagerly.
	for i, req := range reqs {
		if req.DisplayAmount <= 0 {
			return BulkOutcome{Error: errors.Errorf("invalid amount at position %d", i).Error()}
		}
	}

	batchID := uuid.New().String()
	batchLog := log.With().Str("batch_id", batchID).Int("count", len(reqs)).Logger()

	if s.metrics != nil {
		s.metrics.BulkBatchesTotal.Inc()
	}

	// 3. Aggregate fee figures from displayed amounts, reporting only.
	outcome := BulkOutcome{}
	if feeEnabled {
		var totalFee, totalNet float64
		for _, req := range reqs {
			totalFee += s.calc.PlatformFee(req.DisplayAmount)
			totalNet += s.calc.NetAmount(req.DisplayAmount)
		}
		outcome.TotalPlatformFee = swag.Float64(totalFee)
		outcome.TotalNetAmount = swag.Float64(totalNet)
	}

	// 4. Sequential submission. Strictly one in flight, with a pause
	// between sends to avoid overwhelming the provider and mempool.
	for i, req := range reqs {
		if i > 0 {
			if err := s.pause(ctx); err != nil {
				batchLog.Warn().Err(err).Int("position", i).Msg("Bulk dispatch canceled, counting remaining transfers as failed")
				outcome.FailedCount += len(reqs) - i
				break
			}
		}

		recipient := s.validatedRecipient(req.Recipient)

		txHash, err := s.submit(ctx, p, recipient, req.DisplayAmount)
		if err != nil {
			outcome.FailedCount++
			if s.metrics != nil {
				s.metrics.TransfersFailedTotal.Inc()
			}
			batchLog.Warn().Err(err).Int("position", i).Str("recipient", recipient).Msg("Bulk transfer item failed, continuing")
			continue
		}

		outcome.TxHashes = append(outcome.TxHashes, txHash)
		outcome.LastTxHash = txHash
	}

	outcome.Success = outcome.FailedCount < len(reqs)

	batchLog.Info().
		Int("failed", outcome.FailedCount).
		Bool("success", outcome.Success).
		Msg("Bulk dispatch finished")

	return outcome
}

// preparedProvider returns the session provider with the target chain
// re-ensured.
//
//nolint:ireturn
func (s *service) preparedProvider(ctx context.Context) (provider.Provider, error) {
	p, err := s.session.Provider(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.ensurer.Ensure(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *service) validatedRecipient(recipient string) string {
	if addrutil.IsValidAddress(recipient) {
		return recipient
	}

	log.Warn().Str("recipient", recipient).Str("fallback", s.cfg.FallbackRecipient).Msg("Invalid recipient address, substituting fallback")

	return s.cfg.FallbackRecipient
}

// submit sends one native transfer and returns the transaction hash.
func (s *service) submit(ctx context.Context, p provider.Provider, recipient string, displayAmount float64) (string, error) {
	params := sendTxParams{
		From:  s.session.CurrentAddress(),
		To:    recipient,
		Value: hexutil.EncodeBig(s.onChainAmount(displayAmount)),
		Gas:   hexutil.EncodeUint64(s.cfg.GasLimit),
	}

	raw, err := p.Request(ctx, "eth_sendTransaction", params)
	if err != nil {
		return "", errors.Wrap(err, "failed to submit transaction")
	}

	var txHash string
	if err := json.Unmarshal(raw, &txHash); err != nil {
		return "", errors.Wrap(err, "failed to decode transaction hash")
	}

	if s.metrics != nil {
		s.metrics.TransfersSubmittedTotal.Inc()
	}

	return txHash, nil
}

// onChainAmount returns the wei value actually transferred. The displayed
// amount is intentionally decoupled from the on-chain amount unless
// UseDisplayedAmount is set, in which case the net displayed amount is
// converted using the chain decimals.
func (s *service) onChainAmount(displayAmount float64) *big.Int {
	if !s.cfg.UseDisplayedAmount {
		return s.cfg.TransferAmountWei
	}

	net := new(big.Float).SetFloat64(s.calc.NetAmount(displayAmount))
	unit := new(big.Float).SetFloat64(math.Pow10(s.chainDesc.NativeCurrency.Decimals))
	wei, _ := new(big.Float).Mul(net, unit).Int(nil)

	return wei
}

// pause waits the configured inter-submission delay, honoring ctx.
func (s *service) pause(ctx context.Context) error {
	if s.cfg.BulkSendDelay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(s.cfg.BulkSendDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
