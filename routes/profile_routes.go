package routes

import (
	"github.com/Abdul-Mateen-1/Railway-Management-System/handlers"
	"github.com/Abdul-Mateen-1/Railway-Management-System/middleware"
	"github.com/gofiber/fiber/v2"
)

func ProfileRoutes(app *fiber.App, profile *handlers.ProfileHandler) {
	api := app.Group("/api/v1")

	me := api.Group("/profile", middleware.Protected())
	me.Get("", profile.GetProfile)
	me.Put("", profile.UpdateProfile)
}
