package etherscan

// StatsAPI manages chain-wide statistics module operations
type StatsAPI struct {
	client *Client
}

// NewStatsAPI creates a new stats API client
func NewStatsAPI(client *Client) *StatsAPI {
	return &StatsAPI{client: client}
}

// GetEthSupply retrieves the current total supply of Ether.
func (s *StatsAPI) GetEthSupply() (string, error) {
	return s.client.call("stats", "ethsupply", nil)
}

// GetEthSupply2 retrieves the total supply including staking rewards and
// burnt fees.
func (s *StatsAPI) GetEthSupply2() (string, error) {
	return s.client.call("stats", "ethsupply2", nil)
}

// GetEthPrice retrieves the latest Ether price.
func (s *StatsAPI) GetEthPrice() (string, error) {
	return s.client.call("stats", "ethprice", nil)
}

// GetChainSize retrieves the chain size over a date range for a client type
// ("geth" or "parity") and sync mode ("default" or "archive").
func (s *StatsAPI) GetChainSize(startDate, endDate, clientType, syncMode, sort string) (string, error) {
	params := Params{}.
		Add("startdate", startDate).
		Add("enddate", endDate).
		Add("clienttype", clientType).
		Add("syncmode", syncMode).
		Add("sort", sort)
	return s.client.call("stats", "chainsize", params)
}

// GetNodeCount retrieves the total number of discoverable nodes.
func (s *StatsAPI) GetNodeCount() (string, error) {
	return s.client.call("stats", "nodecount", nil)
}

// GetDailyTxFee retrieves the daily total transaction fee series.
func (s *StatsAPI) GetDailyTxFee(startDate, endDate, sort string) (string, error) {
	return s.client.call("stats", "dailytxnfee", dateRangeParams(startDate, endDate, sort))
}

// GetDailyNewAddressCount retrieves the daily new address count series.
func (s *StatsAPI) GetDailyNewAddressCount(startDate, endDate, sort string) (string, error) {
	return s.client.call("stats", "dailynewaddress", dateRangeParams(startDate, endDate, sort))
}

// GetDailyNetworkUtilization retrieves the daily network utilization series.
func (s *StatsAPI) GetDailyNetworkUtilization(startDate, endDate, sort string) (string, error) {
	return s.client.call("stats", "dailynetutilization", dateRangeParams(startDate, endDate, sort))
}

// GetDailyAvgHashRate retrieves the daily average hash rate series.
func (s *StatsAPI) GetDailyAvgHashRate(startDate, endDate, sort string) (string, error) {
	return s.client.call("stats", "dailyavghashrate", dateRangeParams(startDate, endDate, sort))
}

// GetDailyTxCount retrieves the daily transaction count series.
func (s *StatsAPI) GetDailyTxCount(startDate, endDate, sort string) (string, error) {
	return s.client.call("stats", "dailytx", dateRangeParams(startDate, endDate, sort))
}

// GetDailyAvgDifficulty retrieves the daily average mining difficulty series.
func (s *StatsAPI) GetDailyAvgDifficulty(startDate, endDate, sort string) (string, error) {
	return s.client.call("stats", "dailyavgnetdifficulty", dateRangeParams(startDate, endDate, sort))
}

// GetDailyMarketCap retrieves the daily historical market cap series.
func (s *StatsAPI) GetDailyMarketCap(startDate, endDate, sort string) (string, error) {
	return s.client.call("stats", "ethdailymarketcap", dateRangeParams(startDate, endDate, sort))
}

// GetDailyEthPrice retrieves the daily historical Ether price series.
func (s *StatsAPI) GetDailyEthPrice(startDate, endDate, sort string) (string, error) {
	return s.client.call("stats", "ethdailyprice", dateRangeParams(startDate, endDate, sort))
}
