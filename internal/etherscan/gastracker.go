package etherscan

// GasTrackerAPI manages gas tracker module operations
type GasTrackerAPI struct {
	client *Client
}

// NewGasTrackerAPI creates a new gas tracker API client
func NewGasTrackerAPI(client *Client) *GasTrackerAPI {
	return &GasTrackerAPI{client: client}
}

// GetConfirmationTimeEstimate retrieves the estimated confirmation time, in
// seconds, for a gas price given in wei.
func (g *GasTrackerAPI) GetConfirmationTimeEstimate(gasPrice int64) (string, error) {
	params := Params{}.Add("gasprice", HexTag(gasPrice))
	return g.client.call("gastracker", "gasestimate", params)
}

// GetGasOracle retrieves the current safe, proposed and fast gas prices.
func (g *GasTrackerAPI) GetGasOracle() (string, error) {
	return g.client.call("gastracker", "gasoracle", nil)
}

// GetDailyAvgGasLimit retrieves the daily average gas limit series.
func (g *GasTrackerAPI) GetDailyAvgGasLimit(startDate, endDate, sort string) (string, error) {
	return g.client.call("stats", "dailyavggaslimit", dateRangeParams(startDate, endDate, sort))
}

// GetDailyGasUsed retrieves the daily total gas used series.
func (g *GasTrackerAPI) GetDailyGasUsed(startDate, endDate, sort string) (string, error) {
	return g.client.call("stats", "dailygasused", dateRangeParams(startDate, endDate, sort))
}

// GetDailyAvgGasPrice retrieves the daily average gas price series.
func (g *GasTrackerAPI) GetDailyAvgGasPrice(startDate, endDate, sort string) (string, error) {
	return g.client.call("stats", "dailyavggasprice", dateRangeParams(startDate, endDate, sort))
}
