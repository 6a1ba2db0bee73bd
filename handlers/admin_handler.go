package handlers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/Abdul-Mateen-1/Railway-Management-System/models"
	"github.com/Abdul-Mateen-1/Railway-Management-System/services"
	"github.com/gofiber/fiber/v2"
)

// AdminHandler covers the administrative panel: train and schedule
// management, user management, booking oversight and reports.
type AdminHandler struct {
	backend *services.Backend
}

func NewAdminHandler(backend *services.Backend) *AdminHandler {
	return &AdminHandler{backend: backend}
}

type TrainRequest struct {
	TrainNumber string `json:"train_number" validate:"required"`
	TrainName   string `json:"train_name" validate:"required"`
	Type        string `json:"type" validate:"required,oneof=Express Passenger Freight"`
	Route       string `json:"route" validate:"required"`
	Status      string `json:"status" validate:"required,oneof=On-time Delayed Cancelled"`
}

type ScheduleRequest struct {
	TrainNumber   string `json:"train_number" validate:"required"`
	DepartureTime string `json:"departure_time" validate:"required"`
	ArrivalTime   string `json:"arrival_time" validate:"required"`
	Days          string `json:"days" validate:"required"`
	Status        string `json:"status" validate:"required,oneof=Active Inactive"`
}

type AdminCreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone"`
	Role     string `json:"role" validate:"required,oneof=passenger admin"`
}

// --- Trains ---

func (h *AdminHandler) CreateTrain(c *fiber.Ctx) error {
	var req TrainRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	train, err := h.backend.Trains.CreateTrain(&models.Train{
		TrainNumber: req.TrainNumber,
		TrainName:   req.TrainName,
		Type:        req.Type,
		Route:       req.Route,
		Status:      req.Status,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(train)
}

func (h *AdminHandler) UpdateTrain(c *fiber.Ctx) error {
	id, err := c.ParamsInt("trainId")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid train id"})
	}

	var req TrainRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	train, err := h.backend.Trains.UpdateTrain(&models.Train{
		ID:          uint(id),
		TrainNumber: req.TrainNumber,
		TrainName:   req.TrainName,
		Type:        req.Type,
		Route:       req.Route,
		Status:      req.Status,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(train)
}

func (h *AdminHandler) DeleteTrain(c *fiber.Ctx) error {
	id, err := c.ParamsInt("trainId")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid train id"})
	}

	if err := h.backend.Trains.DeleteTrain(uint(id)); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Train and its schedule removed"})
}

// --- Schedules ---

func (h *AdminHandler) CreateSchedule(c *fiber.Ctx) error {
	var req ScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	schedule, err := h.backend.Schedules.CreateSchedule(&models.Schedule{
		TrainNumber:   req.TrainNumber,
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
		Days:          req.Days,
		Status:        req.Status,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(schedule)
}

func (h *AdminHandler) UpdateSchedule(c *fiber.Ctx) error {
	id, err := c.ParamsInt("scheduleId")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid schedule id"})
	}

	var req ScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	schedule, err := h.backend.Schedules.UpdateSchedule(&models.Schedule{
		ID:            uint(id),
		TrainNumber:   req.TrainNumber,
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
		Days:          req.Days,
		Status:        req.Status,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(schedule)
}

func (h *AdminHandler) DeleteSchedule(c *fiber.Ctx) error {
	id, err := c.ParamsInt("scheduleId")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid schedule id"})
	}

	if err := h.backend.Schedules.RemoveSchedule(uint(id)); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Schedule removed"})
}

// --- Users ---

func (h *AdminHandler) GetAllUsers(c *fiber.Ctx) error {
	users, err := h.backend.Users.ListUsers()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(users)
}

func (h *AdminHandler) CreateUser(c *fiber.Ctx) error {
	var req AdminCreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	user, err := h.backend.Users.Register(&models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Role:     req.Role,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

func (h *AdminHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("userId")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user id"})
	}

	user, err := h.backend.Users.GetUserByID(uint(id))
	if err != nil {
		return serviceError(c, err)
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.CNIC != nil {
		user.CNIC = *req.CNIC
	}
	if req.DateOfBirth != nil {
		user.DateOfBirth = *req.DateOfBirth
	}
	if req.Gender != nil {
		user.Gender = *req.Gender
	}
	if req.Address != nil {
		user.Address = *req.Address
	}
	if req.City != nil {
		user.City = *req.City
	}
	if req.PostalCode != nil {
		user.PostalCode = *req.PostalCode
	}
	if req.Password != nil && *req.Password != "" {
		user.Password = *req.Password
	}

	user, err = h.backend.Users.UpdateUser(user)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(user)
}

// --- Bookings ---

func (h *AdminHandler) GetAllBookings(c *fiber.Ctx) error {
	bookings, err := h.backend.Bookings.GetAllBookings()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(bookings)
}

func (h *AdminHandler) GetBookingByPNR(c *fiber.Ctx) error {
	booking, err := h.backend.Bookings.GetBookingByPNR(c.Params("pnr"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(booking)
}

// --- Reports ---

func (h *AdminHandler) GetRevenueReport(c *fiber.Ctx) error {
	report, err := h.backend.Reports.Revenue()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(report)
}

func (h *AdminHandler) GetTrainPerformanceReport(c *fiber.Ctx) error {
	rows, err := h.backend.Reports.TrainPerformance()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(rows)
}

func (h *AdminHandler) GetUserActivityReport(c *fiber.Ctx) error {
	rows, err := h.backend.Reports.UserActivity()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(rows)
}

func (h *AdminHandler) DownloadRevenueReportPDF(c *fiber.Ctx) error {
	pdf, err := h.backend.Reports.RevenuePDF()
	if err != nil {
		return serviceError(c, err)
	}

	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"revenue_report_%s.pdf\"", time.Now().Format("2006-01-02")))
	return c.Send(pdf)
}

func (h *AdminHandler) DownloadRevenueReportCSV(c *fiber.Ctx) error {
	report, err := h.backend.Reports.Revenue()
	if err != nil {
		return serviceError(c, err)
	}

	b := new(bytes.Buffer)
	w := csv.NewWriter(b)

	headers := []string{"PNR", "Train", "Travel Date", "Seats", "Amount", "Payment Method"}
	if err := w.Write(headers); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to write CSV header"})
	}

	for _, booking := range report.Bookings {
		row := []string{
			booking.PNR,
			booking.TrainName,
			booking.TravelDate.Format("2006-01-02"),
			fmt.Sprintf("%d", booking.NumberOfSeats),
			fmt.Sprintf("%.2f", booking.TotalAmount),
			booking.PaymentMethod,
		}
		if err := w.Write(row); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to write CSV row"})
		}
	}
	w.Flush()

	c.Set("Content-Type", "text/csv")
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"revenue_report_%s.csv\"", time.Now().Format("2006-01-02")))
	return c.Send(b.Bytes())
}
