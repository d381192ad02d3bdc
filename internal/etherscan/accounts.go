package etherscan

// AccountsAPI manages account module operations
type AccountsAPI struct {
	client *Client
}

// NewAccountsAPI creates a new accounts API client
func NewAccountsAPI(client *Client) *AccountsAPI {
	return &AccountsAPI{client: client}
}

// GetBalance retrieves the current Ether balance of an address, in wei.
func (a *AccountsAPI) GetBalance(address string) (string, error) {
	params := Params{}.Add("address", address).Add("tag", "latest")
	return a.client.call("account", "balance", params)
}

// GetBalanceMulti retrieves the balances of several addresses in one call.
func (a *AccountsAPI) GetBalanceMulti(addresses []string) (string, error) {
	params := Params{}.Add("address", JoinAddresses(addresses)).Add("tag", "latest")
	return a.client.call("account", "balancemulti", params)
}

// GetTxList retrieves the normal transactions of an address, paginated over a
// block range.
func (a *AccountsAPI) GetTxList(address string, startBlock, endBlock, page, offset int64, sort string) (string, error) {
	params := Params{}.
		Add("address", address).
		AddInt("startblock", startBlock).
		AddInt("endblock", endBlock).
		AddInt("page", page).
		AddInt("offset", offset).
		Add("sort", sort)
	return a.client.call("account", "txlist", params)
}

// GetTxListInternal retrieves the internal transactions of an address.
func (a *AccountsAPI) GetTxListInternal(address string, startBlock, endBlock, page, offset int64, sort string) (string, error) {
	params := Params{}.
		Add("address", address).
		AddInt("startblock", startBlock).
		AddInt("endblock", endBlock).
		AddInt("page", page).
		AddInt("offset", offset).
		Add("sort", sort)
	return a.client.call("account", "txlistinternal", params)
}

// GetTxListInternalByHash retrieves the internal transactions performed
// within one transaction.
func (a *AccountsAPI) GetTxListInternalByHash(txHash string) (string, error) {
	params := Params{}.Add("txhash", txHash)
	return a.client.call("account", "txlistinternal", params)
}

// GetTxListInternalByBlockRange retrieves internal transactions over a block
// range regardless of address.
func (a *AccountsAPI) GetTxListInternalByBlockRange(startBlock, endBlock, page, offset int64, sort string) (string, error) {
	params := Params{}.
		AddInt("startblock", startBlock).
		AddInt("endblock", endBlock).
		AddInt("page", page).
		AddInt("offset", offset).
		Add("sort", sort)
	return a.client.call("account", "txlistinternal", params)
}

// tokenEventParams is the shared shape of the token transfer event endpoints.
func tokenEventParams(address, contractAddress string, startBlock, endBlock, page, offset int64, sort string) Params {
	return Params{}.
		Add("address", address).
		Add("contractaddress", contractAddress).
		AddInt("page", page).
		AddInt("offset", offset).
		AddInt("startblock", startBlock).
		AddInt("endblock", endBlock).
		Add("sort", sort)
}

// GetERC20Transfers retrieves ERC-20 token transfer events for an address,
// optionally filtered by token contract.
func (a *AccountsAPI) GetERC20Transfers(address, contractAddress string, startBlock, endBlock, page, offset int64, sort string) (string, error) {
	params := tokenEventParams(address, contractAddress, startBlock, endBlock, page, offset, sort)
	return a.client.call("account", "tokentx", params)
}

// GetERC721Transfers retrieves ERC-721 token transfer events for an address.
func (a *AccountsAPI) GetERC721Transfers(address, contractAddress string, startBlock, endBlock, page, offset int64, sort string) (string, error) {
	params := tokenEventParams(address, contractAddress, startBlock, endBlock, page, offset, sort)
	return a.client.call("account", "tokennfttx", params)
}

// GetERC1155Transfers retrieves ERC-1155 token transfer events for an address.
func (a *AccountsAPI) GetERC1155Transfers(address, contractAddress string, startBlock, endBlock, page, offset int64, sort string) (string, error) {
	params := tokenEventParams(address, contractAddress, startBlock, endBlock, page, offset, sort)
	return a.client.call("account", "token1155tx", params)
}

// GetMinedBlocks retrieves the blocks (or uncles) validated by an address.
// blockType is "blocks" or "uncles".
func (a *AccountsAPI) GetMinedBlocks(address, blockType string, page, offset int64, sort string) (string, error) {
	params := Params{}.
		Add("address", address).
		Add("blocktype", blockType).
		AddInt("page", page).
		AddInt("offset", offset).
		Add("sort", sort)
	return a.client.call("account", "getminedblocks", params)
}

// GetBeaconWithdrawals retrieves beacon chain withdrawals made to an address.
func (a *AccountsAPI) GetBeaconWithdrawals(address, contractAddress string, startBlock, endBlock, page, offset int64, sort string) (string, error) {
	params := Params{}.
		Add("address", address).
		Add("contractaddress", contractAddress).
		AddInt("page", page).
		AddInt("offset", offset).
		AddInt("startblock", startBlock).
		AddInt("endblock", endBlock).
		Add("sort", sort)
	return a.client.call("account", "txlistbeacon", params)
}

// GetBalanceHistory retrieves the balance of an address at a given block.
func (a *AccountsAPI) GetBalanceHistory(address string, blockNo int64) (string, error) {
	params := Params{}.Add("address", address).AddInt("blockno", blockNo)
	return a.client.call("account", "balancehistory", params)
}
