package handlers

import (
	"time"

	"github.com/Abdul-Mateen-1/Railway-Management-System/middleware"
	"github.com/Abdul-Mateen-1/Railway-Management-System/services"
	"github.com/Abdul-Mateen-1/Railway-Management-System/utils"
	"github.com/gofiber/fiber/v2"
)

type BookingHandler struct {
	backend *services.Backend
}

func NewBookingHandler(backend *services.Backend) *BookingHandler {
	return &BookingHandler{backend: backend}
}

type CreateBookingRequest struct {
	TrainNumber   string `json:"train_number" validate:"required"`
	FromStation   string `json:"from_station" validate:"required"`
	ToStation     string `json:"to_station" validate:"required"`
	TravelDate    string `json:"travel_date" validate:"required"`
	NumberOfSeats int    `json:"number_of_seats" validate:"required,min=1"`
	SeatClass     string `json:"seat_class" validate:"required"`
}

type PayBookingRequest struct {
	PaymentMethod string `json:"payment_method" validate:"required,oneof='Card' 'Cash on Delivery'"`
}

func (h *BookingHandler) CreateBooking(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	travelDate, err := time.ParseInLocation("2006-01-02", req.TravelDate, time.Local)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid travel_date format. Use YYYY-MM-DD."})
	}

	user, err := h.backend.Users.GetUserByID(userID)
	if err != nil {
		return serviceError(c, err)
	}

	booking, err := h.backend.Bookings.BookTicket(user, req.TrainNumber,
		req.FromStation, req.ToStation, travelDate, req.NumberOfSeats, req.SeatClass)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Ticket booked successfully. Please proceed to payment to confirm your booking.",
		"booking": booking,
	})
}

func (h *BookingHandler) GetMyBookings(c *fiber.Ctx) error {
	bookings, err := h.backend.Bookings.GetBookingsForUser(middleware.UserID(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(bookings)
}

func (h *BookingHandler) GetPendingPayments(c *fiber.Ctx) error {
	bookings, err := h.backend.Bookings.GetPendingPaymentsForUser(middleware.UserID(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(bookings)
}

// PayBooking records payment for one of the caller's bookings and confirms
// the ticket.
func (h *BookingHandler) PayBooking(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	pnr := c.Params("pnr")

	var req PayBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	booking, err := h.backend.Bookings.GetBookingByPNR(pnr)
	if err != nil {
		return serviceError(c, err)
	}
	if booking.UserID != userID {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Record not found"})
	}

	booking, err = h.backend.Bookings.ProcessPayment(pnr, req.PaymentMethod)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Payment processed successfully. Your ticket is now confirmed.",
		"booking": booking,
	})
}

// CancelBooking cancels one of the caller's bookings and reports the refund
// amount shown to the user.
func (h *BookingHandler) CancelBooking(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	pnr := c.Params("pnr")

	booking, err := h.backend.Bookings.GetBookingByPNR(pnr)
	if err != nil {
		return serviceError(c, err)
	}
	if booking.UserID != userID {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Record not found"})
	}

	booking, refund, err := h.backend.Bookings.CancelBooking(pnr)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":        "Booking cancelled successfully.",
		"booking":        booking,
		"refund_amount":  refund,
		"refund_display": utils.FormatPKR(refund) + " (80%)",
	})
}
