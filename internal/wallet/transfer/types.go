package transfer

// Request describes one native-currency transfer. DisplayAmount is the
// value shown to the user for fee and accounting purposes; the on-chain
// amount is configured separately (see config.Payment).
type Request struct {
	Recipient     string
	DisplayAmount float64
	FeeEnabled    bool
}

// Outcome is the uniform result record of a single transfer. Failures are
// folded into Error; Send never lets a provider-level failure escape.
type Outcome struct {
	Success     bool
	TxHash      string
	PlatformFee *float64
	NetAmount   *float64
	Error       string
}

// BulkOutcome aggregates a sequential bulk dispatch. Success is true iff
// at least one item succeeded; partial completion is an expected,
// observable outcome, not an error state.
type BulkOutcome struct {
	Success          bool
	LastTxHash       string
	TxHashes         []string
	TotalPlatformFee *float64
	TotalNetAmount   *float64
	FailedCount      int
	Error            string
}

// sendTxParams is the wire shape of an eth_sendTransaction request.
type sendTxParams struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Value string `json:"value"`
	Gas   string `json:"gas"`
}
