package handlers

import (
	"errors"

	"github.com/Abdul-Mateen-1/Railway-Management-System/services"
	"github.com/gofiber/fiber/v2"
)

// TrainHandler serves the public timetable surface: train lists, search,
// schedules and live status.
type TrainHandler struct {
	backend *services.Backend
}

func NewTrainHandler(backend *services.Backend) *TrainHandler {
	return &TrainHandler{backend: backend}
}

func (h *TrainHandler) ListTrains(c *fiber.Ctx) error {
	trains, err := h.backend.Trains.GetTrains()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(trains)
}

func (h *TrainHandler) SearchTrains(c *fiber.Ctx) error {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Query parameters 'from' and 'to' are required"})
	}

	trains, err := h.backend.Trains.SearchTrains(from, to)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(trains)
}

func (h *TrainHandler) ListSchedules(c *fiber.Ctx) error {
	schedules, err := h.backend.Schedules.GetSchedules()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(schedules)
}

func (h *TrainHandler) GetScheduleForTrain(c *fiber.Ctx) error {
	schedule, err := h.backend.Schedules.GetScheduleForTrain(c.Params("trainNumber"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(schedule)
}

// CheckTrainStatus reports the train's operational status together with its
// schedule, when one exists.
func (h *TrainHandler) CheckTrainStatus(c *fiber.Ctx) error {
	trainNumber := c.Params("trainNumber")

	train, err := h.backend.Trains.GetTrainByNumber(trainNumber)
	if err != nil {
		return serviceError(c, err)
	}

	response := fiber.Map{
		"train_number": train.TrainNumber,
		"train_name":   train.TrainName,
		"route":        train.Route,
		"status":       train.Status,
	}

	schedule, err := h.backend.Schedules.GetScheduleForTrain(trainNumber)
	if err == nil {
		response["schedule"] = schedule
	} else if !errors.Is(err, services.ErrNotFound) {
		return serviceError(c, err)
	}

	return c.JSON(response)
}
