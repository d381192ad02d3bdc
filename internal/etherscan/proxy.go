package etherscan

// ProxyAPI manages the JSON-RPC passthrough endpoints of the proxy module.
// Block numbers and indexes are passed as integers and formatted into the
// 0x-prefixed hex tags the node expects.
type ProxyAPI struct {
	client *Client
}

// NewProxyAPI creates a new proxy API client
func NewProxyAPI(client *Client) *ProxyAPI {
	return &ProxyAPI{client: client}
}

// BlockNumber retrieves the number of the most recent block.
func (p *ProxyAPI) BlockNumber() (string, error) {
	return p.client.call("proxy", "eth_blockNumber", nil)
}

// GetBlockByNumber retrieves a block. fullTx selects whether transactions
// are returned as full objects or hashes only.
func (p *ProxyAPI) GetBlockByNumber(blockNo int64, fullTx bool) (string, error) {
	params := Params{}.Add("tag", HexTag(blockNo)).AddBool("boolean", fullTx)
	return p.client.call("proxy", "eth_getBlockByNumber", params)
}

// GetUncleByBlockNumberAndIndex retrieves an uncle by block number and the
// position of the uncle within the block.
func (p *ProxyAPI) GetUncleByBlockNumberAndIndex(blockNo, index int64) (string, error) {
	params := Params{}.Add("tag", HexTag(blockNo)).Add("index", HexTag(index))
	return p.client.call("proxy", "eth_getUncleByBlockNumberAndIndex", params)
}

// GetTransactionByHash retrieves a transaction by hash.
func (p *ProxyAPI) GetTransactionByHash(txHash string) (string, error) {
	params := Params{}.Add("txhash", txHash)
	return p.client.call("proxy", "eth_getTransactionByHash", params)
}

// GetTransactionByBlockNumberAndIndex retrieves a transaction by block
// number and its position within the block.
func (p *ProxyAPI) GetTransactionByBlockNumberAndIndex(blockNo, index int64) (string, error) {
	params := Params{}.Add("tag", HexTag(blockNo)).Add("index", HexTag(index))
	return p.client.call("proxy", "eth_getTransactionByBlockNumberAndIndex", params)
}

// GetTransactionCount retrieves the number of transactions sent from an
// address. tag is "earliest", "latest" or "pending".
func (p *ProxyAPI) GetTransactionCount(address, tag string) (string, error) {
	params := Params{}.Add("address", address).Add("tag", tag)
	return p.client.call("proxy", "eth_getTransactionCount", params)
}

// SendRawTransaction submits a pre-signed transaction, given as raw hex.
func (p *ProxyAPI) SendRawTransaction(hex string) (string, error) {
	params := Params{}.Add("hex", hex)
	return p.client.call("proxy", "eth_sendRawTransaction", params)
}

// GetTransactionReceipt retrieves the receipt of a transaction.
func (p *ProxyAPI) GetTransactionReceipt(txHash string) (string, error) {
	params := Params{}.Add("txhash", txHash)
	return p.client.call("proxy", "eth_getTransactionReceipt", params)
}

// Call executes a read-only message call against a contract. data carries
// the encoded method selector and arguments in hex.
func (p *ProxyAPI) Call(to, data, tag string) (string, error) {
	params := Params{}.Add("to", to).Add("data", data).Add("tag", tag)
	return p.client.call("proxy", "eth_call", params)
}

// GetCode retrieves the code stored at an address.
func (p *ProxyAPI) GetCode(address, tag string) (string, error) {
	params := Params{}.Add("address", address).Add("tag", tag)
	return p.client.call("proxy", "eth_getCode", params)
}

// GetStorageAt retrieves the value stored at a position of an address.
// position is given in hex.
func (p *ProxyAPI) GetStorageAt(address, position, tag string) (string, error) {
	params := Params{}.Add("address", address).Add("position", position).Add("tag", tag)
	return p.client.call("proxy", "eth_getStorageAt", params)
}

// GasPrice retrieves the current gas price reported by the node, in wei hex.
func (p *ProxyAPI) GasPrice() (string, error) {
	return p.client.call("proxy", "eth_gasPrice", nil)
}

// EstimateGas estimates the gas needed by a transaction. value, gas and
// gasPrice are given as integers and sent as hex.
func (p *ProxyAPI) EstimateGas(to, data string, value, gas, gasPrice int64) (string, error) {
	params := Params{}.
		Add("data", data).
		Add("to", to).
		Add("value", HexTag(value)).
		Add("gas", HexTag(gas)).
		Add("gasPrice", HexTag(gasPrice))
	return p.client.call("proxy", "eth_estimateGas", params)
}
