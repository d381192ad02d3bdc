package types

// Transaction is one row of an account txlist payload. Etherscan returns
// every numeric field as a decimal string.
type Transaction struct {
	BlockNumber string `json:"blockNumber"`
	TimeStamp   string `json:"timeStamp"`
	Hash        string `json:"hash"`
	From        string `json:"from"`
	To          string `json:"to"`
	Value       string `json:"value"`
	Gas         string `json:"gas"`
	GasPrice    string `json:"gasPrice"`
	GasUsed     string `json:"gasUsed"`
	Nonce       string `json:"nonce"`
	IsError     string `json:"isError"`
}
