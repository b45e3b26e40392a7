package txinfo

import (
	"context"
	"encoding/json"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github/monpay/wallet-bridge/internal/wallet/session"
)

// Summary is a normalized view of a submitted transaction.
//
// Verified distinguishes an authoritative result (receipt fetched, Success
// derived from the status bit) from the optimistic fallback asserted when
// the lookup fails. Callers must treat unverified summaries as best-effort,
// not authoritative.
type Summary struct {
	Hash     string
	Success  bool
	Verified bool
	// Timestamp is the query time, not the block time.
	Timestamp time.Time
	GasUsed   uint64
	GasPrice  *big.Int
}

// Service fetches transaction details through the session provider.
type Service interface {
	// GetTransactionDetails returns a summary for hash. It never fails:
	// any fetch error degrades to an optimistic unverified summary.
	GetTransactionDetails(ctx context.Context, hash string) *Summary
}

type service struct {
	session session.Service
}

// NewService creates the transaction detail service.
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewService(sess session.Service) Service {
	return &service{session: sess}
}

// transactionResult is the subset of eth_getTransactionByHash we read.
type transactionResult struct {
	GasPrice *hexutil.Big `json:"gasPrice"`
}

// receiptResult is the subset of eth_getTransactionReceipt we read.
type receiptResult struct {
	Status  hexutil.Uint64 `json:"status"`
	GasUsed hexutil.Uint64 `json:"gasUsed"`
}

func (s *service) GetTransactionDetails(ctx context.Context, hash string) *Summary {
	summary, err := s.fetch(ctx, hash)
	if err != nil {
		log.Warn().Err(err).Str("tx_hash", hash).Msg("Transaction lookup failed, returning optimistic summary")
		return &Summary{
			Hash:      hash,
			Success:   true,
			Verified:  false,
			Timestamp: time.Now(),
		}
	}

	return summary
}

func (s *service) fetch(ctx context.Context, hash string) (*Summary, error) {
	p, err := s.session.Provider(ctx)
	if err != nil {
		return nil, err
	}

	rawTx, err := p.Request(ctx, "eth_getTransactionByHash", hash)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}

	// Both lookups answer a literal null while the transaction is unknown
	// or not yet mined. That is not an authoritative result, so it takes
	// the same degradation path as a failed fetch.
	var tx *transactionResult
	if err := json.Unmarshal(rawTx, &tx); err != nil {
		return nil, errors.Wrap(err, "failed to decode transaction")
	}
	if tx == nil {
		return nil, errors.New("transaction not found")
	}

	rawReceipt, err := p.Request(ctx, "eth_getTransactionReceipt", hash)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get receipt")
	}

	var receipt *receiptResult
	if err := json.Unmarshal(rawReceipt, &receipt); err != nil {
		return nil, errors.Wrap(err, "failed to decode receipt")
	}
	if receipt == nil {
		return nil, errors.New("receipt not yet available")
	}

	summary := &Summary{
		Hash:      hash,
		Success:   receipt.Status&0x1 == 0x1,
		Verified:  true,
		Timestamp: time.Now(),
		GasUsed:   uint64(receipt.GasUsed),
	}

	if tx.GasPrice != nil {
		summary.GasPrice = tx.GasPrice.ToInt()
	}

	return summary, nil
}
