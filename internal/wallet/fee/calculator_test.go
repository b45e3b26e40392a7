package fee_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github/monpay/wallet-bridge/internal/wallet/fee"
)

func newCalculator() *fee.Calculator {
	return fee.NewCalculator(0.5, 85, 20)
}

func TestPlatformFee(t *testing.T) {
	c := newCalculator()
	assert.InDelta(t, 5.0, c.PlatformFee(1000), 1e-9)
	assert.InDelta(t, 0.0, c.PlatformFee(0), 1e-9)
}

func TestNetAmount(t *testing.T) {
	c := newCalculator()
	assert.InDelta(t, 995.0, c.NetAmount(1000), 1e-9)
}

func TestVATAmountFromBill(t *testing.T) {
	c := newCalculator()
	// 120 gross at 20% VAT contains 20 of VAT (120 * 20/120).
	assert.InDelta(t, 20.0, c.VATAmountFromBill(120, 20), 1e-9)
	// Zero rate falls back to the configured default.
	assert.InDelta(t, 20.0, c.VATAmountFromBill(120, 0), 1e-9)
}

func TestVATRefund(t *testing.T) {
	c := newCalculator()
	// 100 VAT at 85% refund is 85 gross, minus the 0.5% platform fee.
	assert.InDelta(t, 85-0.425, c.VATRefund(100, 0), 1e-9)
	assert.InDelta(t, 100-0.5, c.VATRefund(100, 100), 1e-9)
}
