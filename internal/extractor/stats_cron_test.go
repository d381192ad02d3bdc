package extractor

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Panorama-Block/ethscan/internal/etherscan"
	"github.com/Panorama-Block/ethscan/internal/kafka"
)

func TestStatsCronExecuteJobs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Echo the action back so each series carries a distinct payload.
		action := r.URL.Query().Get("action")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"1","result":"payload-` + action + `"}`))
	}))
	t.Cleanup(server.Close)

	api := etherscan.NewAPI(server.URL, "key")
	producer := kafka.NewMockProducer()
	cron := NewStatsCron(api, producer, "mainnet", time.Hour)

	cron.executeJobs()

	require.Len(t, producer.StatSnapshots, 7)
	series := make(map[string]string)
	for _, snap := range producer.StatSnapshots {
		assert.Equal(t, "mainnet", snap.Network)
		assert.NotZero(t, snap.Timestamp)
		series[snap.Series] = snap.Result
	}
	assert.Equal(t, "payload-ethsupply", series["ethsupply"])
	assert.Equal(t, "payload-ethprice", series["ethprice"])
	assert.Equal(t, "payload-nodecount", series["nodecount"])
	assert.Equal(t, "payload-dailytx", series["dailytx"])
	assert.Equal(t, "payload-dailytxnfee", series["dailytxnfee"])
	assert.Equal(t, "payload-dailynewaddress", series["dailynewaddress"])
	assert.Equal(t, "payload-dailyavggasprice", series["dailyavggasprice"])
}

func TestStatsCronSkipsFailedSeries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("action") == "ethsupply" {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"1","result":"ok"}`))
	}))
	t.Cleanup(server.Close)

	api := etherscan.NewAPI(server.URL, "key")
	producer := kafka.NewMockProducer()
	cron := NewStatsCron(api, producer, "mainnet", time.Hour)

	cron.executeJobs()

	assert.Len(t, producer.StatSnapshots, 6)
	for _, snap := range producer.StatSnapshots {
		assert.NotEqual(t, "ethsupply", snap.Series)
	}
}

func TestStatsCronStartStop(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"1","result":"ok"}`))
	}))
	t.Cleanup(server.Close)

	api := etherscan.NewAPI(server.URL, "key")
	cron := NewStatsCron(api, kafka.NewMockProducer(), "mainnet", time.Hour)

	require.NoError(t, cron.Start())
	assert.True(t, cron.IsRunning())
	assert.Error(t, cron.Start())

	cron.Stop()
	assert.False(t, cron.IsRunning())
}
