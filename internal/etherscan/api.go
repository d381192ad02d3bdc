package etherscan

// API provides a centralized access point to all Etherscan modules
type API struct {
	Client       *Client
	Accounts     *AccountsAPI
	Contracts    *ContractsAPI
	Transactions *TransactionsAPI
	Blocks       *BlocksAPI
	Logs         *LogsAPI
	Proxy        *ProxyAPI
	Tokens       *TokensAPI
	GasTracker   *GasTrackerAPI
	Stats        *StatsAPI
}

// NewAPI creates a new centralized API client with all submodules
func NewAPI(baseURL, apiKey string) *API {
	client := NewClient(baseURL, apiKey)

	return &API{
		Client:       client,
		Accounts:     NewAccountsAPI(client),
		Contracts:    NewContractsAPI(client),
		Transactions: NewTransactionsAPI(client),
		Blocks:       NewBlocksAPI(client),
		Logs:         NewLogsAPI(client),
		Proxy:        NewProxyAPI(client),
		Tokens:       NewTokensAPI(client),
		GasTracker:   NewGasTrackerAPI(client),
		Stats:        NewStatsAPI(client),
	}
}
