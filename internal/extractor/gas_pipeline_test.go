package extractor

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Panorama-Block/ethscan/internal/etherscan"
	"github.com/Panorama-Block/ethscan/internal/kafka"
)

// newEtherscanStub serves envelopes keyed on the action query field.
func newEtherscanStub(t *testing.T, results map[string]string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		action := r.URL.Query().Get("action")
		result, ok := results[action]
		if !ok {
			http.Error(w, "unknown action "+action, http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		body, _ := json.Marshal(map[string]string{"status": "1", "result": result})
		w.Write(body)
	}))
	t.Cleanup(server.Close)
	return server
}

type recordingBroadcaster struct {
	mutex    sync.Mutex
	messages []interface{}
}

func (b *recordingBroadcaster) Broadcast(v interface{}) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.messages = append(b.messages, v)
}

func TestGasPipelinePollOnce(t *testing.T) {
	oracle, _ := json.Marshal(map[string]string{
		"LastBlock":       "18000000",
		"SafeGasPrice":    "25",
		"ProposeGasPrice": "27",
		"FastGasPrice":    "30",
		"suggestBaseFee":  "24.8",
		"gasUsedRatio":    "0.5,0.7",
	})
	server := newEtherscanStub(t, map[string]string{
		"gasoracle":    string(oracle),
		"eth_gasPrice": "0x3b9aca00",
	})

	api := etherscan.NewAPI(server.URL, "key")
	producer := kafka.NewMockProducer()
	broadcaster := &recordingBroadcaster{}
	pipeline := NewGasPipeline(api, producer, broadcaster, "mainnet", time.Minute)

	pipeline.pollOnce()

	require.Len(t, producer.GasUpdates, 1)
	update := producer.GasUpdates[0]
	assert.Equal(t, "mainnet", update.Network)
	assert.Equal(t, "18000000", update.LastBlock)
	assert.Equal(t, "25", update.SafeGwei)
	assert.Equal(t, "27", update.ProposeGwei)
	assert.Equal(t, "30", update.FastGwei)
	assert.Equal(t, "1", update.NodePriceGwei)
	assert.NotZero(t, update.Timestamp)
	assert.Len(t, broadcaster.messages, 1)
}

func TestGasPipelinePollOnceOracleFailure(t *testing.T) {
	server := newEtherscanStub(t, map[string]string{})

	api := etherscan.NewAPI(server.URL, "key")
	producer := kafka.NewMockProducer()
	pipeline := NewGasPipeline(api, producer, nil, "mainnet", time.Minute)

	pipeline.pollOnce()

	assert.Empty(t, producer.GasUpdates)
}

func TestGasPipelineStartTwice(t *testing.T) {
	server := newEtherscanStub(t, map[string]string{})
	api := etherscan.NewAPI(server.URL, "key")
	pipeline := NewGasPipeline(api, kafka.NewMockProducer(), nil, "mainnet", time.Hour)
	defer pipeline.Stop()

	assert.NoError(t, pipeline.Start())
	assert.Error(t, pipeline.Start())
}

func TestGweiFromHexWei(t *testing.T) {
	gwei, err := gweiFromHexWei("0x3b9aca00")
	require.NoError(t, err)
	assert.Equal(t, "1", gwei)

	gwei, err = gweiFromHexWei("0xff")
	require.NoError(t, err)
	assert.Equal(t, "0.000000255", gwei)

	_, err = gweiFromHexWei("not-hex")
	assert.Error(t, err)
}
