package types

// GasOracle mirrors the payload of the gastracker gasoracle endpoint. All
// values arrive as strings, prices in gwei.
type GasOracle struct {
	LastBlock       string `json:"LastBlock"`
	SafeGasPrice    string `json:"SafeGasPrice"`
	ProposeGasPrice string `json:"ProposeGasPrice"`
	FastGasPrice    string `json:"FastGasPrice"`
	SuggestBaseFee  string `json:"suggestBaseFee"`
	GasUsedRatio    string `json:"gasUsedRatio"`
}

// GasUpdate is the message published for each gas poll cycle.
type GasUpdate struct {
	Network        string `json:"network"`
	LastBlock      string `json:"lastBlock"`
	SafeGwei       string `json:"safeGwei"`
	ProposeGwei    string `json:"proposeGwei"`
	FastGwei       string `json:"fastGwei"`
	SuggestBaseFee string `json:"suggestBaseFee"`
	NodePriceGwei  string `json:"nodePriceGwei"`
	Timestamp      int64  `json:"timestamp"`
}
