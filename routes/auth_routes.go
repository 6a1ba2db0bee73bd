package routes

import (
	"github.com/Abdul-Mateen-1/Railway-Management-System/handlers"
	"github.com/gofiber/fiber/v2"
)

func AuthRoutes(app *fiber.App, auth *handlers.AuthHandler) {
	api := app.Group("/api/v1/auth")

	api.Post("/register", auth.Register)
	api.Post("/login", auth.Login)
}
