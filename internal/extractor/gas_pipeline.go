package extractor

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Panorama-Block/ethscan/internal/etherscan"
	"github.com/Panorama-Block/ethscan/internal/kafka"
	"github.com/Panorama-Block/ethscan/internal/types"
)

// Broadcaster pushes updates to streaming consumers. May be nil when the
// WebSocket server is disabled.
type Broadcaster interface {
	Broadcast(v interface{})
}

// GasPipeline polls the gas tracker and the node gas price on an interval
// and publishes one GasUpdate per cycle.
type GasPipeline struct {
	api         *etherscan.API
	producer    kafka.KafkaProducer
	broadcaster Broadcaster
	network     string
	interval    time.Duration

	stop    chan struct{}
	mutex   sync.Mutex
	running bool
}

// NewGasPipeline creates a new gas pipeline
func NewGasPipeline(api *etherscan.API, producer kafka.KafkaProducer, broadcaster Broadcaster, network string, interval time.Duration) *GasPipeline {
	return &GasPipeline{
		api:         api,
		producer:    producer,
		broadcaster: broadcaster,
		network:     network,
		interval:    interval,
		stop:        make(chan struct{}),
	}
}

// Start begins polling until Stop is called.
func (g *GasPipeline) Start() error {
	g.mutex.Lock()
	if g.running {
		g.mutex.Unlock()
		return fmt.Errorf("gas pipeline already running")
	}
	g.running = true
	g.mutex.Unlock()

	log.Printf("[gas] starting pipeline for network %s, interval %s", g.network, g.interval)

	go func() {
		ticker := time.NewTicker(g.interval)
		defer ticker.Stop()

		g.pollOnce()
		for {
			select {
			case <-ticker.C:
				g.pollOnce()
			case <-g.stop:
				return
			}
		}
	}()

	return nil
}

// Stop halts the pipeline.
func (g *GasPipeline) Stop() {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	if !g.running {
		return
	}
	close(g.stop)
	g.running = false
	log.Printf("[gas] pipeline stopped")
}

// pollOnce fetches the gas oracle and the node gas price and publishes the
// combined update.
func (g *GasPipeline) pollOnce() {
	raw, err := g.api.GasTracker.GetGasOracle()
	if err != nil {
		log.Printf("[gas] error fetching gas oracle: %v", err)
		return
	}

	var oracle types.GasOracle
	if err := json.Unmarshal([]byte(raw), &oracle); err != nil {
		log.Printf("[gas] error decoding gas oracle payload: %v", err)
		return
	}

	update := types.GasUpdate{
		Network:        g.network,
		LastBlock:      oracle.LastBlock,
		SafeGwei:       oracle.SafeGasPrice,
		ProposeGwei:    oracle.ProposeGasPrice,
		FastGwei:       oracle.FastGasPrice,
		SuggestBaseFee: oracle.SuggestBaseFee,
		Timestamp:      time.Now().Unix(),
	}

	nodeRaw, err := g.api.Proxy.GasPrice()
	if err != nil {
		log.Printf("[gas] error fetching node gas price: %v", err)
	} else if gwei, err := gweiFromHexWei(nodeRaw); err != nil {
		log.Printf("[gas] error parsing node gas price %q: %v", nodeRaw, err)
	} else {
		update.NodePriceGwei = gwei
	}

	g.producer.PublishGasUpdate(update)
	if g.broadcaster != nil {
		g.broadcaster.Broadcast(update)
	}
}

// gweiFromHexWei converts a 0x-prefixed wei amount to a decimal gwei string.
func gweiFromHexWei(hex string) (string, error) {
	wei, err := strconv.ParseInt(strings.TrimPrefix(hex, "0x"), 16, 64)
	if err != nil {
		return "", err
	}
	return decimal.NewFromInt(wei).Shift(-9).String(), nil
}
