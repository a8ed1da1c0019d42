package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
)

// Hub fans dashboard refresh events out to connected clients so open
// dashboards re-fetch instead of patching local state.
type Hub struct {
	Clients    map[*websocket.Conn]bool
	Register   chan *websocket.Conn
	Unregister chan *websocket.Conn
	Broadcast  chan []byte
	mutex      sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[*websocket.Conn]bool),
		Register:   make(chan *websocket.Conn),
		Unregister: make(chan *websocket.Conn),
		Broadcast:  make(chan []byte),
	}
}

// RefreshMessage tells connected dashboards which data changed so they can
// re-fetch it. Type is always "refresh" and is set on broadcast.
type RefreshMessage struct {
	Type    string `json:"type"`
	Event   string `json:"event"`
	PartyID string `json:"party_id,omitempty"`
	Count   int    `json:"count,omitempty"`
}

// NotifyRefresh broadcasts an event telling clients which data changed.
func (h *Hub) NotifyRefresh(msg RefreshMessage) {
	msg.Type = "refresh"
	body, err := json.Marshal(msg)
	if err != nil {
		return
	}
	h.Broadcast <- body
}

func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.Register:
			h.mutex.Lock()
			h.Clients[conn] = true
			h.mutex.Unlock()
			log.Println("New WS Client Connected")

		case conn := <-h.Unregister:
			h.mutex.Lock()
			if _, ok := h.Clients[conn]; ok {
				delete(h.Clients, conn)
				conn.Close()
			}
			h.mutex.Unlock()

		case message := <-h.Broadcast:
			h.mutex.Lock()
			for conn := range h.Clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					conn.Close()
					delete(h.Clients, conn)
				}
			}
			h.mutex.Unlock()
		}
	}
}
