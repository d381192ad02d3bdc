package extractor

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Panorama-Block/ethscan/internal/etherscan"
	"github.com/Panorama-Block/ethscan/internal/kafka"
	"github.com/Panorama-Block/ethscan/internal/types"
)

// txPageSize is how many recent transactions are fetched per address cycle.
const txPageSize = 10

// AccountPipeline watches a set of addresses, fetching balances and recent
// transactions through a worker pool on a fixed interval.
type AccountPipeline struct {
	api      *etherscan.API
	producer kafka.KafkaProducer

	addresses []string
	addrCh    chan string
	stop      chan struct{}

	workerCount int
	interval    time.Duration

	mutex     sync.Mutex
	processed int64
	errors    int64
	running   bool
	startTime time.Time
}

// NewAccountPipeline creates a new account pipeline
func NewAccountPipeline(api *etherscan.API, producer kafka.KafkaProducer, addresses []string, workerCount int, interval time.Duration) *AccountPipeline {
	return &AccountPipeline{
		api:         api,
		producer:    producer,
		addresses:   addresses,
		addrCh:      make(chan string, len(addresses)+workerCount),
		stop:        make(chan struct{}),
		workerCount: workerCount,
		interval:    interval,
	}
}

// Start launches the workers and the scheduling loop.
func (a *AccountPipeline) Start(ctx context.Context) error {
	a.mutex.Lock()
	if a.running {
		a.mutex.Unlock()
		return fmt.Errorf("account pipeline already running")
	}
	a.running = true
	a.startTime = time.Now()
	a.processed = 0
	a.errors = 0
	a.mutex.Unlock()

	log.Printf("[accounts] starting pipeline with %d workers for %d addresses", a.workerCount, len(a.addresses))

	for i := 0; i < a.workerCount; i++ {
		go a.worker(ctx, i)
	}

	go func() {
		ticker := time.NewTicker(a.interval)
		defer ticker.Stop()

		a.enqueueAll()
		for {
			select {
			case <-ticker.C:
				a.enqueueAll()
			case <-a.stop:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop halts the pipeline.
func (a *AccountPipeline) Stop() {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	if !a.running {
		return
	}
	close(a.stop)
	a.running = false
	log.Printf("[accounts] pipeline stopped, processed=%d errors=%d", a.processed, a.errors)
}

// Submit queues one address for immediate processing.
func (a *AccountPipeline) Submit(address string) error {
	a.mutex.Lock()
	running := a.running
	a.mutex.Unlock()
	if !running {
		return fmt.Errorf("account pipeline is not running")
	}

	select {
	case a.addrCh <- address:
		return nil
	default:
		return fmt.Errorf("address channel is full, consider raising the buffer size")
	}
}

func (a *AccountPipeline) enqueueAll() {
	for _, addr := range a.addresses {
		if err := a.Submit(addr); err != nil {
			log.Printf("[accounts] skipping %s: %v", addr, err)
		}
	}
}

func (a *AccountPipeline) worker(ctx context.Context, id int) {
	log.Printf("[accounts] worker %d started", id)

	for {
		select {
		case <-a.stop:
			return
		case <-ctx.Done():
			return
		case addr := <-a.addrCh:
			if err := a.processAddress(addr); err != nil {
				log.Printf("[accounts] worker %d: %s: %v", id, addr, err)
				a.mutex.Lock()
				a.errors++
				a.mutex.Unlock()
				continue
			}
			a.mutex.Lock()
			a.processed++
			a.mutex.Unlock()
		}
	}
}

// processAddress publishes one snapshot and the latest transactions of an
// address.
func (a *AccountPipeline) processAddress(address string) error {
	balanceWei, err := a.api.Accounts.GetBalance(address)
	if err != nil {
		return err
	}

	balanceEth := ""
	if wei, err := decimal.NewFromString(balanceWei); err == nil {
		balanceEth = wei.Shift(-18).String()
	}

	txsRaw, err := a.api.Accounts.GetTxList(address, 0, 99999999, 1, txPageSize, "desc")
	if err != nil {
		return err
	}

	var txs []types.Transaction
	if err := json.Unmarshal([]byte(txsRaw), &txs); err != nil {
		return fmt.Errorf("decode txlist payload: %w", err)
	}

	a.producer.PublishAccountSnapshot(types.AccountSnapshot{
		Address:    address,
		BalanceWei: balanceWei,
		BalanceEth: balanceEth,
		TxCount:    len(txs),
		Timestamp:  time.Now().Unix(),
	})
	for _, tx := range txs {
		a.producer.PublishTransaction(tx)
	}
	return nil
}

// Stats returns how many addresses were processed and how many failed.
func (a *AccountPipeline) Stats() (processed, errors int64) {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	return a.processed, a.errors
}
