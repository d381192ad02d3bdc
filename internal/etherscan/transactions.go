package etherscan

// TransactionsAPI manages transaction module operations
type TransactionsAPI struct {
	client *Client
}

// NewTransactionsAPI creates a new transactions API client
func NewTransactionsAPI(client *Client) *TransactionsAPI {
	return &TransactionsAPI{client: client}
}

// GetStatus retrieves the contract execution status of a transaction.
func (t *TransactionsAPI) GetStatus(txHash string) (string, error) {
	params := Params{}.Add("txhash", txHash)
	return t.client.call("transaction", "getstatus", params)
}

// GetReceiptStatus retrieves the receipt status of a transaction.
func (t *TransactionsAPI) GetReceiptStatus(txHash string) (string, error) {
	params := Params{}.Add("txhash", txHash)
	return t.client.call("transaction", "gettxreceiptstatus", params)
}
