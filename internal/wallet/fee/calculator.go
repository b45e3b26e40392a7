package fee

// Calculator computes platform fees and VAT refund figures from displayed
// amounts. All operations are pure and total over the valid numeric
// domain; callers reject non-positive amounts before invoking transfer
// logic.
type Calculator struct {
	feePercent           float64
	defaultRefundPercent float64
	defaultVATRate       float64
}

// NewCalculator creates a Calculator with the configured percentages.
func NewCalculator(feePercent, defaultRefundPercent, defaultVATRate float64) *Calculator {
	return &Calculator{
		feePercent:           feePercent,
		defaultRefundPercent: defaultRefundPercent,
		defaultVATRate:       defaultVATRate,
	}
}

// PlatformFee returns the platform fee on amount.
func (c *Calculator) PlatformFee(amount float64) float64 {
	return amount * c.feePercent / 100
}

// NetAmount returns amount minus the platform fee.
func (c *Calculator) NetAmount(amount float64) float64 {
	return amount - c.PlatformFee(amount)
}

// VATRefund returns the net refundable amount for vatAmount at
// refundPercent. Pass 0 to use the configured default percentage.
func (c *Calculator) VATRefund(vatAmount, refundPercent float64) float64 {
	if refundPercent == 0 {
		refundPercent = c.defaultRefundPercent
	}
	return c.NetAmount(vatAmount * refundPercent / 100)
}

// VATAmountFromBill derives the VAT portion of a gross bill at vatRate.
// Pass 0 to use the configured default rate.
func (c *Calculator) VATAmountFromBill(billAmount, vatRate float64) float64 {
	if vatRate == 0 {
		vatRate = c.defaultVATRate
	}
	return billAmount * vatRate / (100 + vatRate)
}
