package etherscan

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Pair is a single query parameter.
type Pair struct {
	Key   string
	Value string
}

// Params is an ordered list of query parameters. Etherscan endpoints differ
// only in which fields they carry, so every endpoint builds its query through
// this one accumulator instead of a dedicated record type. Order is preserved
// through encoding, which keeps query strings deterministic.
type Params []Pair

// Add appends a string parameter.
func (p Params) Add(key, value string) Params {
	return append(p, Pair{Key: key, Value: value})
}

// AddInt appends an integer parameter in decimal form.
func (p Params) AddInt(key string, value int64) Params {
	return p.Add(key, strconv.FormatInt(value, 10))
}

// AddBool appends a boolean parameter as "true" or "false".
func (p Params) AddBool(key string, value bool) Params {
	return p.Add(key, strconv.FormatBool(value))
}

// Encode renders the parameters as a URL query string, preserving insertion
// order. url.Values is not used because it sorts keys on encode.
func (p Params) Encode() string {
	var b strings.Builder
	for i, pair := range p {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(pair.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(pair.Value))
	}
	return b.String()
}

// HexTag formats an integer as the 0x-prefixed hex form the proxy module
// expects for block tags, indexes and gas values.
func HexTag(n int64) string {
	return fmt.Sprintf("0x%x", n)
}

// JoinAddresses renders a list of addresses as the comma-separated form used
// by multi-address endpoints.
func JoinAddresses(addresses []string) string {
	return strings.Join(addresses, ",")
}
