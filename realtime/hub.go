package realtime

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/lucabarone/trattoria-pos/utils"
)

// Event types exchanged with the registers.
const (
	EventRegisterClient = "REGISTER_CLIENT"
	EventInitialSync    = "INITIAL_SYNC"
	EventOrderCreated   = "ORDER_CREATED"
	EventOrderCompleted = "ORDER_COMPLETED"
	EventDataCleared    = "DATA_CLEARED"
)

// Message is the JSON envelope for every frame on the sync socket.
// RegisterID is only present on inbound REGISTER_CLIENT frames.
type Message struct {
	Type       string      `json:"type"`
	Data       interface{} `json:"data,omitempty"`
	RegisterID int         `json:"registerId,omitempty"`
}

// Hub holds the set of connected register sockets and fans events out
// to them. A connection starts untagged and is tagged with its register
// identity once it sends REGISTER_CLIENT.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]int // conn -> register id, 0 = untagged
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]int)}
}

// Add puts a freshly upgraded connection into the set, untagged.
func (h *Hub) Add(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = 0
}

// Identify tags a connection with the register it belongs to.
func (h *Hub) Identify(conn *websocket.Conn, registerID int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[conn]; ok {
		h.clients[conn] = registerID
	}
}

// Remove drops a connection from the set and closes it. Safe to call
// for a connection that was already removed.
func (h *Hub) Remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, conn)
	conn.Close()
}

// ClientCount reports how many connections are currently in the set.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// SendTo writes one message to a single connection (used for the
// INITIAL_SYNC snapshot after registration).
func (h *Hub) SendTo(conn *websocket.Conn, msg Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return conn.WriteMessage(websocket.TextMessage, data)
}

// Broadcast sends a message to every connected register, including the
// one that originated the event; registers treat their own echoed
// events idempotently.
func (h *Hub) Broadcast(msg Message) {
	h.BroadcastExcept(msg, 0)
}

// BroadcastExcept sends a message to every connection except those
// tagged with excludeRegisterID (0 excludes nobody). Each send is
// best-effort: a failing connection is logged and skipped so the rest
// still get the event.
func (h *Hub) BroadcastExcept(msg Message, excludeRegisterID int) {
	data, err := json.Marshal(msg)
	if err != nil {
		utils.ErrorLogger.Printf("realtime: marshal %s event: %v", msg.Type, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for conn, registerID := range h.clients {
		if excludeRegisterID != 0 && registerID == excludeRegisterID {
			continue
		}
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			utils.ErrorLogger.Printf("realtime: send %s to register %d: %v", msg.Type, registerID, err)
			continue
		}
	}
	utils.InfoLogger.Printf("realtime: %s sent to %d client(s)", msg.Type, len(h.clients))
}
