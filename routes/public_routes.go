package routes

import (
	"github.com/Abdul-Mateen-1/Railway-Management-System/handlers"
	"github.com/gofiber/fiber/v2"
)

// PublicRoutes covers the timetable surface that needs no login: browsing
// trains, searching routes and checking schedules and status.
func PublicRoutes(app *fiber.App, trains *handlers.TrainHandler) {
	api := app.Group("/api/v1")

	api.Get("/trains", trains.ListTrains)
	api.Get("/trains/search", trains.SearchTrains)
	api.Get("/trains/:trainNumber/schedule", trains.GetScheduleForTrain)
	api.Get("/trains/:trainNumber/status", trains.CheckTrainStatus)
	api.Get("/schedules", trains.ListSchedules)
}
