package kafka

import (
	"sync"

	"github.com/Panorama-Block/ethscan/internal/types"
)

// MockProducer implements the KafkaProducer interface for tests and mock
// mode. Published messages are recorded instead of sent.
type MockProducer struct {
	mutex sync.Mutex

	GasUpdates       []types.GasUpdate
	StatSnapshots    []types.StatSnapshot
	AccountSnapshots []types.AccountSnapshot
	Transactions     []types.Transaction
}

// NewMockProducer creates a new mock producer
func NewMockProducer() *MockProducer {
	return &MockProducer{}
}

func (p *MockProducer) PublishGasUpdate(update types.GasUpdate) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.GasUpdates = append(p.GasUpdates, update)
}

func (p *MockProducer) PublishStatSnapshot(snap types.StatSnapshot) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.StatSnapshots = append(p.StatSnapshots, snap)
}

func (p *MockProducer) PublishAccountSnapshot(snap types.AccountSnapshot) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.AccountSnapshots = append(p.AccountSnapshots, snap)
}

func (p *MockProducer) PublishTransaction(tx types.Transaction) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.Transactions = append(p.Transactions, tx)
}

func (p *MockProducer) Close() {}
