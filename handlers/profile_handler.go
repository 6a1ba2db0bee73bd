package handlers

import (
	"github.com/Abdul-Mateen-1/Railway-Management-System/middleware"
	"github.com/Abdul-Mateen-1/Railway-Management-System/services"
	"github.com/gofiber/fiber/v2"
)

type ProfileHandler struct {
	backend *services.Backend
}

func NewProfileHandler(backend *services.Backend) *ProfileHandler {
	return &ProfileHandler{backend: backend}
}

type UpdateProfileRequest struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	CNIC        *string `json:"cnic"`
	DateOfBirth *string `json:"date_of_birth"`
	Gender      *string `json:"gender"`
	Address     *string `json:"address"`
	City        *string `json:"city"`
	PostalCode  *string `json:"postal_code"`
	Password    *string `json:"password"`
}

func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	user, err := h.backend.Users.GetUserByID(middleware.UserID(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(user)
}

func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	user, err := h.backend.Users.GetUserByID(middleware.UserID(c))
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
