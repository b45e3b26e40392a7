package provider

// Candidate describes one injected wallet object as observed on the host
// namespace. Injected environments frequently expose several competing
// objects under a single key, so a candidate may carry sub-providers.
type Candidate struct {
	// IdentityFlags are the self-reported brand flags (e.g. "MetaMask"
	// for an object claiming isMetaMask).
	IdentityFlags map[string]bool

	// Providers is the optional list of sub-providers multiplexed under
	// this object.
	Providers []*Candidate

	// Transport serves requests for this object. A nil transport means
	// the object cannot execute provider calls.
	Transport Provider
}

// HasIdentityFlag reports whether the candidate self-identifies as brand.
func (c *Candidate) HasIdentityFlag(brand string) bool {
	return c != nil && c.IdentityFlags[brand]
}

// HasSubProviders reports whether the candidate multiplexes sub-providers.
func (c *Candidate) HasSubProviders() bool {
	return c != nil && len(c.Providers) > 0
}

// SupportsRequest reports whether the candidate exposes a working request
// operation.
func (c *Candidate) SupportsRequest() bool {
	return c != nil && c.Transport != nil
}

// Injected is a snapshot of the wallet objects present on the host
// environment at resolution time.
type Injected struct {
	// Ethereum is the EVM-capable injected object, nil when absent.
	Ethereum *Candidate

	// SolanaPresent marks that a Solana-only wallet object is injected.
	// Such wallets are known to register themselves as default handlers
	// and intercept calls meant for EVM providers.
	SolanaPresent bool
}

// NewRPCEnvironment builds a single-candidate environment around transport,
// self-identified as brand. It is the environment used when the service
// runs headless against a configured RPC endpoint instead of a browser
// wallet namespace.
func NewRPCEnvironment(transport Provider, brand string) *Injected {
	return &Injected{
		Ethereum: &Candidate{
			IdentityFlags: map[string]bool{brand: true},
			Transport:     transport,
		},
	}
}
