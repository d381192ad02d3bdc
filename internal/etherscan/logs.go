package etherscan

// LogsAPI manages event log module operations
type LogsAPI struct {
	client *Client
}

// NewLogsAPI creates a new logs API client
func NewLogsAPI(client *Client) *LogsAPI {
	return &LogsAPI{client: client}
}

// GetLogsByAddress retrieves the event logs emitted by an address, paginated
// over a block range.
func (l *LogsAPI) GetLogsByAddress(address string, fromBlock, toBlock, page, offset int64) (string, error) {
	params := Params{}.
		Add("address", address).
		AddInt("fromblock", fromBlock).
		AddInt("toblock", toBlock).
		AddInt("page", page).
		AddInt("offset", offset)
	return l.client.call("logs", "getLogs", params)
}

// GetLogsByTopics retrieves event logs matching a topic filter chain.
func (l *LogsAPI) GetLogsByTopics(filter *TopicFilter, fromBlock, toBlock, page, offset int64) (string, error) {
	return l.client.call("logs", "getLogs", filter.Params(fromBlock, toBlock, page, offset))
}

// GetLogsByAddressAndTopics retrieves event logs emitted by an address that
// also match a topic filter chain.
func (l *LogsAPI) GetLogsByAddressAndTopics(address string, filter *TopicFilter, fromBlock, toBlock, page, offset int64) (string, error) {
	params := Params{}.Add("address", address)
	params = append(params, filter.Params(fromBlock, toBlock, page, offset)...)
	return l.client.call("logs", "getLogs", params)
}
