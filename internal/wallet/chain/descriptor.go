package chain

// NativeCurrency describes the base unit of a chain.
type NativeCurrency struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals int    `json:"decimals"`
}

// Descriptor is the immutable configuration of the target chain. It is
// passed verbatim in wallet_addEthereumChain requests.
type Descriptor struct {
	ChainID           int
	ChainIDHex        string
	DisplayName       string
	NativeCurrency    NativeCurrency
	RPCURL            string
	BlockExplorerURLs []string
}

// MonadTestnet is the single chain this service targets.
var MonadTestnet = Descriptor{
	ChainID:     10143,
	ChainIDHex:  "0x279F",
	DisplayName: "Monad Testnet",
	NativeCurrency: NativeCurrency{
		Name:     "MON",
		Symbol:   "MON",
		Decimals: 18,
	},
	RPCURL:            "https://testnet-rpc.monad.xyz",
	BlockExplorerURLs: []string{"https://testnet.monadexplorer.com"},
}

// addChainParams is the wire shape of a wallet_addEthereumChain request.
type addChainParams struct {
	ChainID           string         `json:"chainId"`
	ChainName         string         `json:"chainName"`
	NativeCurrency    NativeCurrency `json:"nativeCurrency"`
	RPCURLs           []string       `json:"rpcUrls"`
	BlockExplorerURLs []string       `json:"blockExplorerUrls"`
}

// switchChainParams is the wire shape of a wallet_switchEthereumChain request.
type switchChainParams struct {
	ChainID string `json:"chainId"`
}

func (d Descriptor) toAddChainParams() addChainParams {
	return addChainParams{
		ChainID:           d.ChainIDHex,
		ChainName:         d.DisplayName,
		NativeCurrency:    d.NativeCurrency,
		RPCURLs:           []string{d.RPCURL},
		BlockExplorerURLs: d.BlockExplorerURLs,
	}
}
