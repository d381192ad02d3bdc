package etherscan

import "fmt"

// Operator combines two adjacent topics in a filter chain.
type Operator string

const (
	OperatorAnd Operator = "and"
	OperatorOr  Operator = "or"
)

// TopicFilter is a chain of up to four indexed-event topics, each pair of
// neighbours joined by a boolean operator. The chain grows from topic0
// outward, so a later topic can never be present without all earlier ones —
// the API rejects such queries and this builder makes them unrepresentable.
type TopicFilter struct {
	topics    []string
	operators []Operator
}

// NewTopicFilter starts a filter chain with the mandatory first topic.
func NewTopicFilter(topic0 string) *TopicFilter {
	return &TopicFilter{topics: []string{topic0}}
}

// And appends a topic joined to the previous one with the "and" operator.
func (f *TopicFilter) And(topic string) *TopicFilter {
	return f.push(topic, OperatorAnd)
}

// Or appends a topic joined to the previous one with the "or" operator.
func (f *TopicFilter) Or(topic string) *TopicFilter {
	return f.push(topic, OperatorOr)
}

func (f *TopicFilter) push(topic string, op Operator) *TopicFilter {
	if len(f.topics) == 4 {
		panic("etherscan: topic filter holds at most four topics")
	}
	f.topics = append(f.topics, topic)
	f.operators = append(f.operators, op)
	return f
}

// Len returns how many topics the chain holds.
func (f *TopicFilter) Len() int {
	return len(f.topics)
}

// Params renders the chain with its block range and pagination as an ordered
// parameter list: fromblock, toblock, topic0, then each further topic
// immediately followed by the operator for the boundary before it, then page
// and offset. A chain with n topics therefore encodes to 3+2(n-1)+2 pairs.
func (f *TopicFilter) Params(fromBlock, toBlock, page, offset int64) Params {
	p := Params{}.
		AddInt("fromblock", fromBlock).
		AddInt("toblock", toBlock).
		Add("topic0", f.topics[0])
	for i := 1; i < len(f.topics); i++ {
		p = p.Add(fmt.Sprintf("topic%d", i), f.topics[i])
		p = p.Add(fmt.Sprintf("topic%d_%d_opr", i-1, i), string(f.operators[i-1]))
	}
	return p.AddInt("page", page).AddInt("offset", offset)
}
