package services_test

import (
	"testing"

	"github.com/Abdul-Mateen-1/Railway-Management-System/models"
	"github.com/Abdul-Mateen-1/Railway-Management-System/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseFare(t *testing.T) {
	assert.Equal(t, 3500, services.BaseFare(models.TrainTypeExpress))
	assert.Equal(t, 2200, services.BaseFare(models.TrainTypePassenger))
	assert.Equal(t, 1500, services.BaseFare(models.TrainTypeFreight))
	assert.Equal(t, services.DefaultBaseFare, services.BaseFare("Metro"))
	assert.Equal(t, services.DefaultBaseFare, services.BaseFare(""))
}

func TestSearchTrains(t *testing.T) {
	backend, repo := newTestBackend(t)
	addTrain(t, repo, "1UP", "Karachi Express", models.TrainTypeExpress, "Karachi - Lahore")
	addTrain(t, repo, "2DN", "Shalimar Express", models.TrainTypeExpress, "Lahore - Karachi")
	addTrain(t, repo, "3UP", "Awam Express", models.TrainTypePassenger, "Islamabad - Multan")

	t.Run("matches both directions", func(t *testing.T) {
		trains, err := backend.Trains.SearchTrains("Karachi", "Lahore")
		require.NoError(t, err)
		require.Len(t, trains, 2)
		// Insertion order, no ranking.
		assert.Equal(t, "1UP", trains[0].TrainNumber)
		assert.Equal(t, "2DN", trains[1].TrainNumber)
	})

	t.Run("case-insensitive", func(t *testing.T) {
		trains, err := backend.Trains.SearchTrains("karachi", "LAHORE")
		require.NoError(t, err)
		assert.Len(t, trains, 2)
	})

	t.Run("both stations must appear", func(t *testing.T) {
		trains, err := backend.Trains.SearchTrains("Karachi", "Multan")
		require.NoError(t, err)
		assert.Empty(t, trains)
	})

	t.Run("substring match", func(t *testing.T) {
		trains, err := backend.Trains.SearchTrains("Islam", "Multan")
		require.NoError(t, err)
		require.Len(t, trains, 1)
		assert.Equal(t, "Awam Express", trains[0].TrainName)
	})
}

func TestCreateTrain(t *testing.T) {
	backend, _ := newTestBackend(t)

	created, err := backend.Trains.CreateTrain(&models.Train{
		TrainNumber: "5UP",
		TrainName:   "Green Line",
		Type:        models.TrainTypeExpress,
		Route:       "Karachi - Islamabad",
		Status:      "On-time",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	t.Run("duplicate train number rejected", func(t *testing.T) {
		_, err := backend.Trains.CreateTrain(&models.Train{
			TrainNumber: "5UP",
			TrainName:   "Copycat",
		})
		assert.ErrorIs(t, err, services.ErrValidation)
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		_, err := backend.Trains.CreateTrain(&models.Train{TrainNumber: "6DN"})
		assert.ErrorIs(t, err, services.ErrValidation)
	})
}

func TestUpdateTrain(t *testing.T) {
	backend, repo := newTestBackend(t)
	train := addTrain(t, repo, "1UP", "Karachi Express", models.TrainTypeExpress, "Karachi - Lahore")

	updated, err := backend.Trains.UpdateTrain(&models.Train{
		ID:          train.ID,
		TrainNumber: "1UP",
		TrainName:   "Karachi Express",
		Type:        models.TrainTypeExpress,
		Route:       "Karachi - Lahore",
		Status:      "Delayed",
	})
	require.NoError(t, err)
	assert.Equal(t, "Delayed", updated.Status)

	reloaded, err := backend.Trains.GetTrainByNumber("1UP")
	require.NoError(t, err)
	assert.Equal(t, "Delayed", reloaded.Status)

	_, err = backend.Trains.UpdateTrain(&models.Train{ID: 9999})
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestDeleteTrainRemovesItsSchedules(t *testing.T) {
	backend, repo := newTestBackend(t)
	train := addTrain(t, repo, "1UP", "Karachi Express", models.TrainTypeExpress, "Karachi - Lahore")
	other := addTrain(t, repo, "3UP", "Awam Express", models.TrainTypePassenger, "Islamabad - Multan")

	_, err := backend.Schedules.CreateSchedule(&models.Schedule{
		TrainNumber:   "1UP",
		DepartureTime: "07:00",
		ArrivalTime:   "23:30",
		Days:          "Daily",
		Status:        "Active",
	})
	require.NoError(t, err)
	_, err = backend.Schedules.CreateSchedule(&models.Schedule{
		TrainNumber:   "3UP",
		DepartureTime: "09:15",
		ArrivalTime:   "16:45",
		Days:          "Mon,Wed,Fri",
		Status:        "Active",
	})
	require.NoError(t, err)

	require.NoError(t, backend.Trains.DeleteTrain(train.ID))

	_, err = backend.Trains.GetTrainByNumber("1UP")
	assert.ErrorIs(t, err, services.ErrNotFound)

	_, err = backend.Schedules.GetScheduleForTrain("1UP")
	assert.ErrorIs(t, err, services.ErrNotFound, "schedules go with the train")

	// The other train and its schedule are untouched.
	schedule, err := backend.Schedules.GetScheduleForTrain("3UP")
	require.NoError(t, err)
	assert.Equal(t, other.TrainName, schedule.TrainName)
}
