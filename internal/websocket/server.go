package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Server streams extraction updates to connected WebSocket clients.
type Server struct {
	port     int
	upgrader websocket.Upgrader
	server   *http.Server

	mutex            sync.Mutex
	clients          map[*websocket.Conn]bool
	running          bool
	startTime        time.Time
	connectionsTotal int
	messagesTotal    int
}

// NewServer creates a new WebSocket server
func NewServer(port int) *Server {
	return &Server{
		port: port,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow all origins for now, restrict in production
			},
		},
		clients: make(map[*websocket.Conn]bool),
	}
}

// Start begins the WebSocket server
func (s *Server) Start() error {
	s.mutex.Lock()
	if s.running {
		s.mutex.Unlock()
		return fmt.Errorf("WebSocket server already running")
	}
	s.running = true
	s.startTime = time.Now()
	s.mutex.Unlock()

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.HandleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", s.port),
		Handler: mux,
	}

	log.Printf("Starting WebSocket server on port %d", s.port)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("WebSocket server error: %v", err)
		}
	}()

	return nil
}

// Stop halts the WebSocket server and closes every client connection.
func (s *Server) Stop(ctx context.Context) error {
	s.mutex.Lock()
	if !s.running {
		s.mutex.Unlock()
		return nil
	}
	s.running = false
	for conn := range s.clients {
		conn.Close()
		delete(s.clients, conn)
	}
	s.mutex.Unlock()

	if s.server != nil {
		if err := s.server.Shutdown(ctx); err != nil {
			return fmt.Errorf("error shutting down WebSocket server: %w", err)
		}
	}

	log.Printf("WebSocket server stopped")

	return nil
}

// HandleWebSocket upgrades an HTTP connection and registers the client.
func (s *Server) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}

	s.mutex.Lock()
	s.clients[conn] = true
	s.connectionsTotal++
	s.mutex.Unlock()

	log.Printf("New WebSocket connection: %s", conn.RemoteAddr())

	// Drain incoming frames so close handshakes and pings are processed;
	// the stream is one-way otherwise.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				s.remove(conn)
				return
			}
		}
	}()
}

func (s *Server) remove(conn *websocket.Conn) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.clients[conn] {
		delete(s.clients, conn)
		conn.Close()
	}
}

// Broadcast sends a message to every connected client. Clients that fail to
// receive are dropped.
func (s *Server) Broadcast(v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Error marshaling broadcast message: %v", err)
		return
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	for conn := range s.clients {
		conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("Error writing to client %s: %v", conn.RemoteAddr(), err)
			delete(s.clients, conn)
			conn.Close()
			continue
		}
		s.messagesTotal++
	}
}

// ClientCount returns the number of connected clients.
func (s *Server) ClientCount() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return len(s.clients)
}

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	uptime := time.Since(s.startTime).String()
	if !s.running {
		uptime = "0s"
	}

	status := map[string]interface{}{
		"status":           "UP",
		"uptime":           uptime,
		"connections":      len(s.clients),
		"connectionsTotal": s.connectionsTotal,
		"messagesTotal":    s.messagesTotal,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(status)
}
