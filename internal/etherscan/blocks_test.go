package etherscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBlockRewardQuery(t *testing.T) {
	server, queries := newTestServer(t, envelopeBody(t, "1", "{}"))
	blocks := NewBlocksAPI(NewClient(server.URL, "key"))

	_, err := blocks.GetBlockReward(2165403)

	require.NoError(t, err)
	assert.Equal(t, "module=block&action=getblockreward&apikey=key&blockno=2165403", (*queries)[0])
}

func TestGetBlockNumberByTimeQuery(t *testing.T) {
	server, queries := newTestServer(t, envelopeBody(t, "1", "12712551"))
	blocks := NewBlocksAPI(NewClient(server.URL, "key"))

	_, err := blocks.GetBlockNumberByTime(1578638524, "before")

	require.NoError(t, err)
	assert.Equal(t,
		"module=block&action=getblocknobytime&apikey=key&timestamp=1578638524&closest=before",
		(*queries)[0])
}

func TestDailySeriesShareDateRangeShape(t *testing.T) {
	server, queries := newTestServer(t, envelopeBody(t, "1", "[]"))
	blocks := NewBlocksAPI(NewClient(server.URL, "key"))

	_, err := blocks.GetDailyAvgBlockSize("2020-02-01", "2020-02-28", "asc")
	require.NoError(t, err)
	_, err = blocks.GetDailyBlockTime("2020-02-01", "2020-02-28", "asc")
	require.NoError(t, err)

	assert.Equal(t,
		"module=block&action=getdailyavgblocksize&apikey=key&startdate=2020-02-01&enddate=2020-02-28&sort=asc",
		(*queries)[0])
	assert.Equal(t,
		"module=block&action=getdailyblocktime&apikey=key&startdate=2020-02-01&enddate=2020-02-28&sort=asc",
		(*queries)[1])
}
