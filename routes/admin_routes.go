package routes

import (
	"github.com/Abdul-Mateen-1/Railway-Management-System/handlers"
	"github.com/Abdul-Mateen-1/Railway-Management-System/middleware"
	"github.com/gofiber/fiber/v2"
)

func AdminRoutes(app *fiber.App, admin *handlers.AdminHandler) {
	api := app.Group("/api/v1")

	panel := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())

	trains := panel.Group("/trains")
	trains.Post("", admin.CreateTrain)
	trains.Put("/:trainId", admin.UpdateTrain)
	trains.Delete("/:trainId", admin.DeleteTrain)

	schedules := panel.Group("/schedules")
	schedules.Post("", admin.CreateSchedule)
	schedules.Put("/:scheduleId", admin.UpdateSchedule)
	schedules.Delete("/:scheduleId", admin.DeleteSchedule)

	users := panel.Group("/users")
	users.Get("", admin.GetAllUsers)
	users.Post("", admin.CreateUser)
	users.Put("/:userId", admin.UpdateUser)

	panel.Get("/bookings", admin.GetAllBookings)
	panel.Get("/bookings/:pnr", admin.GetBookingByPNR)

	reports := panel.Group("/reports")
	reports.Get("/revenue", admin.GetRevenueReport)
	reports.Get("/revenue.pdf", admin.DownloadRevenueReportPDF)
	reports.Get("/revenue.csv", admin.DownloadRevenueReportCSV)
	reports.Get("/train-performance", admin.GetTrainPerformanceReport)
	reports.Get("/user-activity", admin.GetUserActivityReport)
}
