package etherscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBalanceQuery(t *testing.T) {
	server, queries := newTestServer(t, envelopeBody(t, "1", "1000"))
	accounts := NewAccountsAPI(NewClient(server.URL, "key"))

	balance, err := accounts.GetBalance("0xde0b295669a9fd93d5f28d9ec85e40f4cb697bae")

	require.NoError(t, err)
	assert.Equal(t, "1000", balance)
	assert.Equal(t,
		"module=account&action=balance&apikey=key&address=0xde0b295669a9fd93d5f28d9ec85e40f4cb697bae&tag=latest",
		(*queries)[0])
}

func TestGetBalanceMultiJoinsAddresses(t *testing.T) {
	server, queries := newTestServer(t, envelopeBody(t, "1", "[]"))
	accounts := NewAccountsAPI(NewClient(server.URL, "key"))

	_, err := accounts.GetBalanceMulti([]string{"0xA", "0xB", "0xC"})

	require.NoError(t, err)
	assert.Contains(t, (*queries)[0], "address=0xA%2C0xB%2C0xC")
}

func TestGetBalanceMultiSingleAddress(t *testing.T) {
	server, queries := newTestServer(t, envelopeBody(t, "1", "[]"))
	accounts := NewAccountsAPI(NewClient(server.URL, "key"))

	_, err := accounts.GetBalanceMulti([]string{"0xA"})

	require.NoError(t, err)
	assert.Contains(t, (*queries)[0], "address=0xA&")
	assert.NotContains(t, (*queries)[0], "%2C")
}

func TestGetTxListQuery(t *testing.T) {
	server, queries := newTestServer(t, envelopeBody(t, "1", "[]"))
	accounts := NewAccountsAPI(NewClient(server.URL, "key"))

	_, err := accounts.GetTxList("0xabc", 0, 99999999, 1, 10, "asc")

	require.NoError(t, err)
	assert.Equal(t,
		"module=account&action=txlist&apikey=key&address=0xabc&startblock=0&endblock=99999999&page=1&offset=10&sort=asc",
		(*queries)[0])
}

func TestGetTxListInternalVariants(t *testing.T) {
	server, queries := newTestServer(t, envelopeBody(t, "1", "[]"))
	accounts := NewAccountsAPI(NewClient(server.URL, "key"))

	_, err := accounts.GetTxListInternalByHash("0xhash")
	require.NoError(t, err)
	assert.Equal(t, "module=account&action=txlistinternal&apikey=key&txhash=0xhash", (*queries)[0])

	_, err = accounts.GetTxListInternalByBlockRange(100, 200, 1, 25, "desc")
	require.NoError(t, err)
	assert.Equal(t,
		"module=account&action=txlistinternal&apikey=key&startblock=100&endblock=200&page=1&offset=25&sort=desc",
		(*queries)[1])
}

func TestGetERC20TransfersQuery(t *testing.T) {
	server, queries := newTestServer(t, envelopeBody(t, "1", "[]"))
	accounts := NewAccountsAPI(NewClient(server.URL, "key"))

	_, err := accounts.GetERC20Transfers("0xabc", "0xtoken", 0, 999, 1, 100, "asc")

	require.NoError(t, err)
	assert.Equal(t,
		"module=account&action=tokentx&apikey=key&address=0xabc&contractaddress=0xtoken&page=1&offset=100&startblock=0&endblock=999&sort=asc",
		(*queries)[0])
}

func TestGetMinedBlocksQuery(t *testing.T) {
	server, queries := newTestServer(t, envelopeBody(t, "1", "[]"))
	accounts := NewAccountsAPI(NewClient(server.URL, "key"))

	_, err := accounts.GetMinedBlocks("0xabc", "blocks", 1, 10, "asc")

	require.NoError(t, err)
	assert.Equal(t,
		"module=account&action=getminedblocks&apikey=key&address=0xabc&blocktype=blocks&page=1&offset=10&sort=asc",
		(*queries)[0])
}

func TestGetBalanceHistoryQuery(t *testing.T) {
	server, queries := newTestServer(t, envelopeBody(t, "1", "500"))
	accounts := NewAccountsAPI(NewClient(server.URL, "key"))

	_, err := accounts.GetBalanceHistory("0xabc", 8000000)

	require.NoError(t, err)
	assert.Equal(t,
		"module=account&action=balancehistory&apikey=key&address=0xabc&blockno=8000000",
		(*queries)[0])
}
