package etherscan

// BlocksAPI manages block module operations
type BlocksAPI struct {
	client *Client
}

// NewBlocksAPI creates a new blocks API client
func NewBlocksAPI(client *Client) *BlocksAPI {
	return &BlocksAPI{client: client}
}

// GetBlockReward retrieves the block reward and uncle rewards of a block.
func (b *BlocksAPI) GetBlockReward(blockNo int64) (string, error) {
	params := Params{}.AddInt("blockno", blockNo)
	return b.client.call("block", "getblockreward", params)
}

// GetBlockCountdown retrieves the estimated time until a future block.
func (b *BlocksAPI) GetBlockCountdown(blockNo int64) (string, error) {
	params := Params{}.AddInt("blockno", blockNo)
	return b.client.call("block", "getblockcountdown", params)
}

// GetBlockNumberByTime retrieves the block mined closest to a Unix
// timestamp. closest is "before" or "after".
func (b *BlocksAPI) GetBlockNumberByTime(timestamp int64, closest string) (string, error) {
	params := Params{}.AddInt("timestamp", timestamp).Add("closest", closest)
	return b.client.call("block", "getblocknobytime", params)
}

// dateRangeParams is the shared shape of the daily series endpoints. Dates
// use the yyyy-MM-dd form, sort is "asc" or "desc".
func dateRangeParams(startDate, endDate, sort string) Params {
	return Params{}.
		Add("startdate", startDate).
		Add("enddate", endDate).
		Add("sort", sort)
}

// GetDailyAvgBlockSize retrieves the daily average block size series.
func (b *BlocksAPI) GetDailyAvgBlockSize(startDate, endDate, sort string) (string, error) {
	return b.client.call("block", "getdailyavgblocksize", dateRangeParams(startDate, endDate, sort))
}

// GetDailyBlockCount retrieves the daily block count and rewards series.
func (b *BlocksAPI) GetDailyBlockCount(startDate, endDate, sort string) (string, error) {
	return b.client.call("block", "getdailyblockcount", dateRangeParams(startDate, endDate, sort))
}

// GetDailyBlockRewards retrieves the daily block rewards series.
func (b *BlocksAPI) GetDailyBlockRewards(startDate, endDate, sort string) (string, error) {
	return b.client.call("block", "getdailyblockrewards", dateRangeParams(startDate, endDate, sort))
}

// GetDailyBlockTime retrieves the daily average time-between-blocks series.
func (b *BlocksAPI) GetDailyBlockTime(startDate, endDate, sort string) (string, error) {
	return b.client.call("block", "getdailyblocktime", dateRangeParams(startDate, endDate, sort))
}

// GetDailyUncleBlockCount retrieves the daily uncle count and rewards series.
func (b *BlocksAPI) GetDailyUncleBlockCount(startDate, endDate, sort string) (string, error) {
	return b.client.call("block", "getdailyuncleblockcount", dateRangeParams(startDate, endDate, sort))
}
