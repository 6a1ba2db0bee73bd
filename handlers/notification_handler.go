package handlers

import (
	"github.com/Abdul-Mateen-1/Railway-Management-System/middleware"
	"github.com/Abdul-Mateen-1/Railway-Management-System/services"
	hub "github.com/Abdul-Mateen-1/Railway-Management-System/websocket"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

type NotificationHandler struct {
	backend *services.Backend
	hub     *hub.Hub
}

func NewNotificationHandler(backend *services.Backend, h *hub.Hub) *NotificationHandler {
	return &NotificationHandler{backend: backend, hub: h}
}

func (h *NotificationHandler) GetMyNotifications(c *fiber.Ctx) error {
	notifications, err := h.backend.Notifications.ForUser(middleware.UserID(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(notifications)
}

func (h *NotificationHandler) GetUnreadCount(c *fiber.Ctx) error {
	count, err := h.backend.Notifications.UnreadCount(middleware.UserID(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"unread": count})
}

func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid notification id"})
	}

	if err := h.backend.Notifications.MarkRead(uint(id), middleware.UserID(c)); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Notification marked as read"})
}

// Stream upgrades the connection and registers the user with the
// notification hub for live pushes. The read loop only watches for the
// client going away.
func (h *NotificationHandler) Stream() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		token := conn.Locals("user").(*jwt.Token)
		claims := token.Claims.(jwt.MapClaims)
		userID := uint(claims["user_id"].(float64))

		client := &hub.Client{UserID: userID, Conn: conn}
		h.hub.Register(client)
		defer h.hub.Unregister(client)

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
	})
}
