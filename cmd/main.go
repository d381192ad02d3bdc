// cmd/main.go
package main

import (
	"context"
	"time"

	"github.com/Panorama-Block/ethscan/internal/config"
	"github.com/Panorama-Block/ethscan/internal/etherscan"
	"github.com/Panorama-Block/ethscan/internal/extractor"
	"github.com/Panorama-Block/ethscan/internal/kafka"
	"github.com/Panorama-Block/ethscan/internal/websocket"
)

func main() {
	cfg := config.LoadConfig()

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = etherscan.BaseURLForNetwork(cfg.Network)
	}
	api := etherscan.NewAPI(baseURL, cfg.APIKey)
	producer := kafka.NewProducer(cfg)
	defer producer.Close()

	// WebSocket stream for frontend consumers
	var ws *websocket.Server
	var broadcaster extractor.Broadcaster
	if cfg.EnableWebSocket {
		ws = websocket.NewServer(cfg.WebSocketPort)
		if err := ws.Start(); err == nil {
			broadcaster = ws
		}
	}

	// Gas pipeline
	gas := extractor.NewGasPipeline(api, producer, broadcaster, cfg.Network, time.Duration(cfg.GasPollSeconds)*time.Second)
	gas.Start()

	// Stats cron jobs
	extractor.StartStatsCron(api, producer, cfg.Network, time.Duration(cfg.StatsCronMinutes)*time.Minute)

	// Account pipeline for watched addresses
	if len(cfg.WatchAddresses) > 0 {
		accounts := extractor.NewAccountPipeline(api, producer, cfg.WatchAddresses, cfg.Workers, time.Duration(cfg.AccountPollSeconds)*time.Second)
		accounts.Start(context.Background())
	}

	select {}
}
