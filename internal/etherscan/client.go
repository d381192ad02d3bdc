package etherscan

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// Base URLs of the Etherscan API per network.
const (
	MainnetBaseURL = "https://api.etherscan.io/api"
	GoerliBaseURL  = "https://api-goerli.etherscan.io/api"
	SepoliaBaseURL = "https://api-sepolia.etherscan.io/api"
)

// BaseURLForNetwork maps a network name to its API base URL.
// Unknown names fall back to mainnet.
func BaseURLForNetwork(network string) string {
	switch network {
	case "goerli":
		return GoerliBaseURL
	case "sepolia":
		return SepoliaBaseURL
	default:
		return MainnetBaseURL
	}
}

// Client is the single funnel every Etherscan call goes through. It holds the
// API key and the HTTP client handle; both are immutable after construction,
// so a Client is safe for concurrent use.
type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// NewClient creates a new Etherscan API client
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		BaseURL: baseURL,
		APIKey:  apiKey,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// envelope is the two-field wrapper every Etherscan response uses. Result is
// a pointer so a missing field can be told apart from an empty one.
type envelope struct {
	Status string  `json:"status"`
	Result *string `json:"result"`
}

// call issues one GET against the API with the base fields (module, action,
// apikey) followed by the endpoint fields, and unwraps the response envelope.
// The result string is returned verbatim; status is not interpreted here,
// callers that need failure detection inspect the payload themselves.
func (c *Client) call(module, action string, params Params) (string, error) {
	query := Params{}.
		Add("module", module).
		Add("action", action).
		Add("apikey", c.APIKey)
	query = append(query, params...)

	req, err := http.NewRequest(http.MethodGet, c.BaseURL+"?"+query.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("etherscan: build request %s.%s: %w", module, action, err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("etherscan: %s.%s: %w", module, action, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		log.Printf("[etherscan] %s.%s => status=%d body=%s", module, action, resp.StatusCode, body)
		return "", fmt.Errorf("etherscan: %s.%s: unexpected status %s", module, action, resp.Status)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return "", fmt.Errorf("etherscan: %s.%s: decode response: %w", module, action, err)
	}
	if env.Result == nil {
		return "", fmt.Errorf("etherscan: %s.%s: response has no result field", module, action)
	}
	return *env.Result, nil
}
