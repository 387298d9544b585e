package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

// Message is the frame pushed to websocket clients.
type Message struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}

// Hub tracks connected websocket clients and broadcasts order updates to all
// of them. The mobile clients filter frames by the ids in the payload.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]bool)}
}

func (h *Hub) Register(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()
}

func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
}

func (h *Hub) Broadcast(event string, payload interface{}) {
	messageBytes, err := json.Marshal(Message{Event: event, Payload: payload})
	if err != nil {
		log.WithError(err).Error("Error marshaling websocket message")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		if err := client.WriteMessage(websocket.TextMessage, messageBytes); err != nil {
			log.WithError(err).Warn("Dropping websocket client")
			client.Close()
			delete(h.clients, client)
		}
	}
}
