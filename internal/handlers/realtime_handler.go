package handlers

import (
	"log"

	"nutrimix/internal/realtime"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

// RealtimeHandler streams change events to websocket clients.
type RealtimeHandler struct {
	hub *realtime.Hub
}

func NewRealtimeHandler(hub *realtime.Hub) *RealtimeHandler {
	return &RealtimeHandler{hub: hub}
}

// eventMessage is the frame sent for each event.
type eventMessage struct {
	Event string `json:"event"`
}

func (h *RealtimeHandler) RegisterRoutes(router fiber.Router) {
	router.Use("/ws", h.requireUpgrade)
	router.Get("/ws", websocket.New(h.serve))
}

func (h *RealtimeHandler) requireUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// serve holds one subscription for the lifetime of the connection.
func (h *RealtimeHandler) serve(conn *websocket.Conn) {
	sub := h.hub.Subscribe()
	defer h.hub.Unsubscribe(sub)

	// Clients never send anything meaningful; reading only detects disconnects.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case event, ok := <-sub.Events():
			if !ok {
				return
			}
			if err := conn.WriteJSON(eventMessage{Event: string(event)}); err != nil {
				log.Printf("Error writing %s to websocket client: %v", event, err)
				return
			}
		case <-closed:
			return
		}
	}
}
