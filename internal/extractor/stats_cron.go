package extractor

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Panorama-Block/ethscan/internal/etherscan"
	"github.com/Panorama-Block/ethscan/internal/kafka"
	"github.com/Panorama-Block/ethscan/internal/types"
)

// StatsCron runs the periodic chain-statistics jobs: supply, price and node
// count snapshots plus the daily series for the previous day.
type StatsCron struct {
	api      *etherscan.API
	producer kafka.KafkaProducer
	network  string
	interval time.Duration

	ticker  *time.Ticker
	stop    chan struct{}
	mutex   sync.Mutex
	running bool
}

// NewStatsCron creates a new stats cron manager
func NewStatsCron(api *etherscan.API, producer kafka.KafkaProducer, network string, interval time.Duration) *StatsCron {
	return &StatsCron{
		api:      api,
		producer: producer,
		network:  network,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

// Start runs the jobs immediately and then on every tick.
func (c *StatsCron) Start() error {
	c.mutex.Lock()
	if c.running {
		c.mutex.Unlock()
		return fmt.Errorf("stats cron already running")
	}
	c.running = true
	c.mutex.Unlock()

	log.Printf("[CRON] starting stats jobs for network %s, interval %s", c.network, c.interval)

	c.executeJobs()

	c.ticker = time.NewTicker(c.interval)
	go func() {
		for {
			select {
			case <-c.ticker.C:
				c.executeJobs()
			case <-c.stop:
				return
			}
		}
	}()

	return nil
}

// Stop stops the cron manager.
func (c *StatsCron) Stop() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if !c.running {
		return
	}
	if c.ticker != nil {
		c.ticker.Stop()
	}
	close(c.stop)
	c.running = false
	log.Printf("[CRON] stats jobs stopped")
}

// IsRunning returns whether the cron manager is running.
func (c *StatsCron) IsRunning() bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.running
}

// executeJobs runs every stats job once. Failures are logged per job so one
// broken series does not stall the others.
func (c *StatsCron) executeJobs() {
	now := time.Now().UTC()
	start := now.AddDate(0, 0, -1).Format("2006-01-02")
	end := now.Format("2006-01-02")

	jobs := []struct {
		series string
		fetch  func() (string, error)
	}{
		{"ethsupply", c.api.Stats.GetEthSupply},
		{"ethprice", c.api.Stats.GetEthPrice},
		{"nodecount", c.api.Stats.GetNodeCount},
		{"dailytx", func() (string, error) { return c.api.Stats.GetDailyTxCount(start, end, "asc") }},
		{"dailytxnfee", func() (string, error) { return c.api.Stats.GetDailyTxFee(start, end, "asc") }},
		{"dailynewaddress", func() (string, error) { return c.api.Stats.GetDailyNewAddressCount(start, end, "asc") }},
		{"dailyavggasprice", func() (string, error) { return c.api.GasTracker.GetDailyAvgGasPrice(start, end, "asc") }},
	}

	for _, job := range jobs {
		raw, err := job.fetch()
		if err != nil {
			log.Printf("[CRON] error fetching %s: %v", job.series, err)
			continue
		}
		c.producer.PublishStatSnapshot(types.StatSnapshot{
			Series:    job.series,
			Network:   c.network,
			Result:    raw,
			Timestamp: time.Now().Unix(),
		})
	}
}

// StartStatsCron starts a new stats cron manager
func StartStatsCron(api *etherscan.API, producer kafka.KafkaProducer, network string, interval time.Duration) *StatsCron {
	cron := NewStatsCron(api, producer, network, interval)
	if err := cron.Start(); err != nil {
		log.Printf("[CRON] error starting stats jobs: %v", err)
	}
	return cron
}
