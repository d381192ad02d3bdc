package etherscan

// TokensAPI manages token module operations
type TokensAPI struct {
	client *Client
}

// NewTokensAPI creates a new tokens API client
func NewTokensAPI(client *Client) *TokensAPI {
	return &TokensAPI{client: client}
}

// GetTotalSupply retrieves the current total supply of a token.
func (t *TokensAPI) GetTotalSupply(contractAddress string) (string, error) {
	params := Params{}.Add("contractaddress", contractAddress)
	return t.client.call("tokens", "tokenSupply", params)
}

// GetBalance retrieves the token balance an address holds.
func (t *TokensAPI) GetBalance(contractAddress, address string) (string, error) {
	params := Params{}.Add("contractaddress", contractAddress).Add("address", address)
	return t.client.call("tokens", "tokenBalance", params)
}

// GetSupplyHistory retrieves the total supply of a token at a given block.
func (t *TokensAPI) GetSupplyHistory(contractAddress string, blockNo int64) (string, error) {
	params := Params{}.Add("contractaddress", contractAddress).AddInt("blockno", blockNo)
	return t.client.call("tokens", "tokenSupplyHistory", params)
}

// GetBalanceHistory retrieves the token balance an address held at a given
// block.
func (t *TokensAPI) GetBalanceHistory(contractAddress, address string, blockNo int64) (string, error) {
	params := Params{}.
		Add("contractaddress", contractAddress).
		Add("address", address).
		AddInt("blockno", blockNo)
	return t.client.call("tokens", "tokenBalanceHistory", params)
}

// GetHolderList retrieves the holders of a token, paginated.
func (t *TokensAPI) GetHolderList(contractAddress string, page, offset int64) (string, error) {
	params := Params{}.
		Add("contractaddress", contractAddress).
		AddInt("page", page).
		AddInt("offset", offset)
	return t.client.call("tokens", "tokenholderlist", params)
}

// GetTokenInfo retrieves the project information and metadata of a token.
func (t *TokensAPI) GetTokenInfo(contractAddress string) (string, error) {
	params := Params{}.Add("contractaddress", contractAddress)
	return t.client.call("tokens", "tokenInfo", params)
}

// GetAddressTokenBalances retrieves the ERC-20 tokens held by an address,
// paginated.
func (t *TokensAPI) GetAddressTokenBalances(address string, page, offset int64) (string, error) {
	params := Params{}.
		Add("address", address).
		AddInt("page", page).
		AddInt("offset", offset)
	return t.client.call("tokens", "addresstokenbalance", params)
}

// GetAddressNFTBalances retrieves the ERC-721 tokens held by an address,
// paginated.
func (t *TokensAPI) GetAddressNFTBalances(address string, page, offset int64) (string, error) {
	params := Params{}.
		Add("address", address).
		AddInt("page", page).
		AddInt("offset", offset)
	return t.client.call("tokens", "addresstokennftbalance", params)
}

// GetAddressNFTInventory retrieves the inventory an address holds of one
// ERC-721 contract, paginated.
func (t *TokensAPI) GetAddressNFTInventory(contractAddress, address string, page, offset int64) (string, error) {
	params := Params{}.
		Add("address", address).
		Add("contractaddress", contractAddress).
		AddInt("page", page).
		AddInt("offset", offset)
	return t.client.call("tokens", "addresstokennftinventory", params)
}
