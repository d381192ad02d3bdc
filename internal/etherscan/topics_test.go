package etherscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func keysOf(params Params) []string {
	keys := make([]string, len(params))
	for i, pair := range params {
		keys[i] = pair.Key
	}
	return keys
}

func TestTopicFilterSingleTopic(t *testing.T) {
	params := NewTopicFilter("0xaaa").Params(100, 200, 1, 50)

	assert.Len(t, params, 5)
	assert.Equal(t, []string{"fromblock", "toblock", "topic0", "page", "offset"}, keysOf(params))
	assert.Equal(t, "fromblock=100&toblock=200&topic0=0xaaa&page=1&offset=50", params.Encode())
}

func TestTopicFilterTwoTopics(t *testing.T) {
	params := NewTopicFilter("0xaaa").And("0xbbb").Params(100, 200, 1, 50)

	assert.Len(t, params, 7)
	assert.Equal(t,
		[]string{"fromblock", "toblock", "topic0", "topic1", "topic0_1_opr", "page", "offset"},
		keysOf(params))
	assert.Equal(t, Pair{Key: "topic0_1_opr", Value: "and"}, params[4])
}

func TestTopicFilterThreeTopics(t *testing.T) {
	params := NewTopicFilter("0xaaa").And("0xbbb").Or("0xccc").Params(0, 0, 1, 10)

	assert.Len(t, params, 9)
	assert.Equal(t, Pair{Key: "topic1_2_opr", Value: "or"}, params[6])
}

func TestTopicFilterFourTopics(t *testing.T) {
	params := NewTopicFilter("0xaaa").Or("0xbbb").And("0xccc").Or("0xddd").Params(100, 200, 2, 25)

	assert.Len(t, params, 11)
	assert.Equal(t,
		[]string{"fromblock", "toblock", "topic0", "topic1", "topic0_1_opr",
			"topic2", "topic1_2_opr", "topic3", "topic2_3_opr", "page", "offset"},
		keysOf(params))
	assert.Equal(t, Pair{Key: "topic0_1_opr", Value: "or"}, params[4])
	assert.Equal(t, Pair{Key: "topic1_2_opr", Value: "and"}, params[6])
	assert.Equal(t, Pair{Key: "topic2_3_opr", Value: "or"}, params[8])
}

func TestTopicFilterOperatorFollowsItsTopic(t *testing.T) {
	params := NewTopicFilter("0xaaa").And("0xbbb").Params(1, 2, 1, 10)

	assert.Equal(t, "topic1", params[3].Key)
	assert.Equal(t, "topic0_1_opr", params[4].Key)
}

func TestTopicFilterRejectsFifthTopic(t *testing.T) {
	filter := NewTopicFilter("0xaaa").And("0xbbb").And("0xccc").And("0xddd")

	assert.Equal(t, 4, filter.Len())
	assert.Panics(t, func() { filter.And("0xeee") })
}
