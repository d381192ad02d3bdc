package kafka

import (
	"encoding/json"
	"log"

	"github.com/confluentinc/confluent-kafka-go/kafka"

	"github.com/Panorama-Block/ethscan/internal/config"
	"github.com/Panorama-Block/ethscan/internal/types"
)

// KafkaProducer defines the interface the extraction pipelines publish
// through, so tests can swap in a mock.
type KafkaProducer interface {
	PublishGasUpdate(update types.GasUpdate)
	PublishStatSnapshot(snap types.StatSnapshot)
	PublishAccountSnapshot(snap types.AccountSnapshot)
	PublishTransaction(tx types.Transaction)
	Close()
}

// Producer publishes extracted Etherscan data to Kafka topics.
type Producer struct {
	producer *kafka.Producer

	TopicGas          string
	TopicStats        string
	TopicAccounts     string
	TopicTransactions string
}

// NewProducer connects to the broker configured in cfg.
func NewProducer(cfg *config.Config) *Producer {
	p, err := kafka.NewProducer(&kafka.ConfigMap{"bootstrap.servers": cfg.KafkaBroker})
	if err != nil {
		log.Fatalf("Error connecting to Kafka: %v", err)
	}
	return &Producer{
		producer:          p,
		TopicGas:          cfg.KafkaTopicGas,
		TopicStats:        cfg.KafkaTopicStats,
		TopicAccounts:     cfg.KafkaTopicAccounts,
		TopicTransactions: cfg.KafkaTopicTransactions,
	}
}

func (p *Producer) sendMessage(topic string, data []byte) {
	if topic == "" {
		log.Printf("[kafka] empty topic, message dropped")
		return
	}
	err := p.producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: kafka.PartitionAny},
		Value:          data,
	}, nil)
	if err != nil {
		log.Printf("[kafka] error publishing to %s: %v", topic, err)
	}
}

// PublishGasUpdate publishes one gas poll message.
func (p *Producer) PublishGasUpdate(update types.GasUpdate) {
	data, _ := json.Marshal(update)
	p.sendMessage(p.TopicGas, data)
}

// PublishStatSnapshot publishes one stats series snapshot.
func (p *Producer) PublishStatSnapshot(snap types.StatSnapshot) {
	data, _ := json.Marshal(snap)
	p.sendMessage(p.TopicStats, data)
}

// PublishAccountSnapshot publishes one watched-address snapshot.
func (p *Producer) PublishAccountSnapshot(snap types.AccountSnapshot) {
	data, _ := json.Marshal(snap)
	p.sendMessage(p.TopicAccounts, data)
}

// PublishTransaction publishes one transaction of a watched address.
func (p *Producer) PublishTransaction(tx types.Transaction) {
	data, _ := json.Marshal(tx)
	p.sendMessage(p.TopicTransactions, data)
}

// Close flushes pending messages and closes the underlying producer.
func (p *Producer) Close() {
	p.producer.Flush(5000)
	p.producer.Close()
}
