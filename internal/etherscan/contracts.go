package etherscan

// ContractsAPI manages contract module operations
type ContractsAPI struct {
	client *Client
}

// NewContractsAPI creates a new contracts API client
func NewContractsAPI(client *Client) *ContractsAPI {
	return &ContractsAPI{client: client}
}

// GetABI retrieves the ABI of a verified contract.
func (c *ContractsAPI) GetABI(address string) (string, error) {
	params := Params{}.Add("address", address)
	return c.client.call("contract", "getabi", params)
}

// GetSourceCode retrieves the source code of a verified contract.
func (c *ContractsAPI) GetSourceCode(address string) (string, error) {
	params := Params{}.Add("address", address)
	return c.client.call("contract", "getsourcecode", params)
}

// GetContractCreation retrieves the creator address and creation transaction
// of up to five contracts in one call.
func (c *ContractsAPI) GetContractCreation(contractAddresses []string) (string, error) {
	params := Params{}.Add("contractaddresses", JoinAddresses(contractAddresses))
	return c.client.call("contract", "getcontractcreation", params)
}
