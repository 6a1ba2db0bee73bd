package websocket

import (
	"log"
	"sync"

	"github.com/Abdul-Mateen-1/Railway-Management-System/models"
	"github.com/gofiber/contrib/websocket"
)

type Client struct {
	UserID uint
	Conn   *websocket.Conn
}

// Hub fans freshly created notifications out to whichever users currently
// hold an open websocket. Delivery is best effort: offline users read their
// notifications from the store when they next ask for them.
type Hub struct {
	clients    map[uint]*websocket.Conn
	clientsMu  sync.RWMutex
	register   chan *Client
	unregister chan *Client
	push       chan *models.Notification
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[uint]*websocket.Conn),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		push:       make(chan *models.Notification, 16),
	}
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// Push queues a notification for delivery. Safe to call from any goroutine;
// a nil hub silently drops the notification.
func (h *Hub) Push(notification *models.Notification) {
	if h == nil {
		return
	}
	h.push <- notification
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			log.Printf("Notification client registered: user %d", client.UserID)
			h.clientsMu.Lock()
			h.clients[client.UserID] = client.Conn
			h.clientsMu.Unlock()
		case client := <-h.unregister:
			log.Printf("Notification client unregistered: user %d", client.UserID)
			h.clientsMu.Lock()
			if conn, ok := h.clients[client.UserID]; ok && conn == client.Conn {
				delete(h.clients, client.UserID)
			}
			h.clientsMu.Unlock()
		case notification := <-h.push:
			h.clientsMu.RLock()
			conn, ok := h.clients[notification.UserID]
			h.clientsMu.RUnlock()
			if !ok {
				continue
			}
			if err := conn.WriteJSON(notification); err != nil {
				log.Printf("Error pushing notification to user %d: %v", notification.UserID, err)
				conn.Close()
				h.clientsMu.Lock()
				delete(h.clients, notification.UserID)
				h.clientsMu.Unlock()
			}
		}
	}
}
