package routes

import (
	"github.com/Abdul-Mateen-1/Railway-Management-System/handlers"
	"github.com/Abdul-Mateen-1/Railway-Management-System/middleware"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

func NotificationRoutes(app *fiber.App, notifications *handlers.NotificationHandler) {
	api := app.Group("/api/v1")

	n := api.Group("/notifications", middleware.Protected())
	n.Get("", notifications.GetMyNotifications)
	n.Get("/unread-count", notifications.GetUnreadCount)
	n.Put("/:id/read", notifications.MarkRead)

	// Live stream. The upgrade check runs before the JWT middleware so plain
	// HTTP requests get a clean 426 instead of a websocket error.
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/notifications", middleware.Protected(), notifications.Stream())
}
