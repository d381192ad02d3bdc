package types

// AccountSnapshot is the message published for each watched address on every
// account poll cycle.
type AccountSnapshot struct {
	Address    string `json:"address"`
	BalanceWei string `json:"balanceWei"`
	BalanceEth string `json:"balanceEth"`
	TxCount    int    `json:"txCount"`
	Timestamp  int64  `json:"timestamp"`
}
