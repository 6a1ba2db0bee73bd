package routes

import (
	"github.com/Abdul-Mateen-1/Railway-Management-System/handlers"
	"github.com/Abdul-Mateen-1/Railway-Management-System/middleware"
	"github.com/gofiber/fiber/v2"
)

func BookingRoutes(app *fiber.App, bookings *handlers.BookingHandler) {
	api := app.Group("/api/v1")

	booking := api.Group("/bookings", middleware.Protected(), middleware.PassengerRequired())
	booking.Get("/me", bookings.GetMyBookings)
	booking.Get("/pending-payments", bookings.GetPendingPayments)
	booking.Post("", bookings.CreateBooking)
	booking.Post("/:pnr/pay", bookings.PayBooking)
	booking.Post("/:pnr/cancel", bookings.CancelBooking)
}
