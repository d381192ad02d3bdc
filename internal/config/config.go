package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	APIKey  string
	Network string // mainnet, goerli or sepolia
	BaseURL string // optional override of the network base URL

	KafkaBroker            string
	KafkaTopicGas          string
	KafkaTopicStats        string
	KafkaTopicAccounts     string
	KafkaTopicTransactions string

	WebSocketPort   int
	EnableWebSocket bool

	Workers            int
	GasPollSeconds     int
	StatsCronMinutes   int
	AccountPollSeconds int

	// Addresses tracked by the account pipeline
	WatchAddresses []string
}

func LoadConfig() *Config {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("WARN: .env not found, using environment only")
	}

	apiKey := os.Getenv("ETHERSCAN_API_KEY")
	if apiKey == "" {
		log.Fatalf("ERROR: ETHERSCAN_API_KEY must not be empty")
	}

	network := os.Getenv("NETWORK")
	if network == "" {
		network = "mainnet"
	}

	workers, err := strconv.Atoi(os.Getenv("WORKERS"))
	if err != nil || workers <= 0 {
		workers = 5
	}

	gasPoll, err := strconv.Atoi(os.Getenv("GAS_POLL_SECONDS"))
	if err != nil || gasPoll <= 0 {
		gasPoll = 30
	}

	statsCron, err := strconv.Atoi(os.Getenv("STATS_CRON_MINUTES"))
	if err != nil || statsCron <= 0 {
		statsCron = 10
	}

	accountPoll, err := strconv.Atoi(os.Getenv("ACCOUNT_POLL_SECONDS"))
	if err != nil || accountPoll <= 0 {
		accountPoll = 60
	}

	wsPort, err := strconv.Atoi(os.Getenv("WEBSOCKET_PORT"))
	if err != nil || wsPort <= 0 {
		wsPort = 8081
	}

	enableWsStr := os.Getenv("ENABLE_WEBSOCKET")
	enableWs := enableWsStr == "true" || enableWsStr == "1" || enableWsStr == "yes"

	var watchAddresses []string
	if raw := os.Getenv("WATCH_ADDRESSES"); raw != "" {
		for _, addr := range strings.Split(raw, ",") {
			addr = strings.TrimSpace(addr)
			if addr != "" {
				watchAddresses = append(watchAddresses, addr)
			}
		}
	}

	return &Config{
		APIKey:  apiKey,
		Network: network,
		BaseURL: os.Getenv("ETHERSCAN_API_URL"),

		KafkaBroker:            os.Getenv("KAFKA_BROKER"),
		KafkaTopicGas:          os.Getenv("KAFKA_TOPIC_GAS"),
		KafkaTopicStats:        os.Getenv("KAFKA_TOPIC_STATS"),
		KafkaTopicAccounts:     os.Getenv("KAFKA_TOPIC_ACCOUNTS"),
		KafkaTopicTransactions: os.Getenv("KAFKA_TOPIC_TRANSACTIONS"),

		WebSocketPort:   wsPort,
		EnableWebSocket: enableWs,

		Workers:            workers,
		GasPollSeconds:     gasPoll,
		StatsCronMinutes:   statsCron,
		AccountPollSeconds: accountPoll,

		WatchAddresses: watchAddresses,
	}
}
