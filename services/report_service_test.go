package services_test

import (
	"testing"

	"github.com/Abdul-Mateen-1/Railway-Management-System/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevenueReport(t *testing.T) {
	backend, repo := newTestBackend(t)
	sarah := addUser(t, repo, "Sarah Khan", "sarah.khan@example.com", "password1", "passenger")
	addTrain(t, repo, "1UP", "Karachi Express", models.TrainTypeExpress, "Karachi - Lahore")
	addTrain(t, repo, "3UP", "Awam Express", models.TrainTypePassenger, "Islamabad - Multan")

	confirmed, err := backend.Bookings.BookTicket(sarah, "1UP", "Karachi", "Lahore", travelDate(3), 2, "Economy")
	require.NoError(t, err)
	_, err = backend.Bookings.ProcessPayment(confirmed.PNR, "Card")
	require.NoError(t, err)

	// Still pending, contributes nothing.
	_, err = backend.Bookings.BookTicket(sarah, "3UP", "Islamabad", "Multan", travelDate(4), 1, "Economy")
	require.NoError(t, err)

	// Cancelled after confirmation, also excluded.
	cancelled, err := backend.Bookings.BookTicket(sarah, "1UP", "Karachi", "Lahore", travelDate(5), 1, "Economy")
	require.NoError(t, err)
	_, err = backend.Bookings.ProcessPayment(cancelled.PNR, "Card")
	require.NoError(t, err)
	_, _, err = backend.Bookings.CancelBooking(cancelled.PNR)
	require.NoError(t, err)

	report, err := backend.Reports.Revenue()
	require.NoError(t, err)
	assert.Equal(t, float64(7000), report.TotalRevenue, "only confirmed bookings count")
	assert.Equal(t, 1, report.BookingCount)
	require.Len(t, report.Bookings, 1)
	assert.Equal(t, confirmed.PNR, report.Bookings[0].PNR)
}

func TestRevenueReportEmpty(t *testing.T) {
	backend, _ := newTestBackend(t)

	report, err := backend.Reports.Revenue()
	require.NoError(t, err)
	assert.Zero(t, report.TotalRevenue)
	assert.Zero(t, report.BookingCount)
	assert.NotNil(t, report.Bookings)
}

func TestTrainPerformanceReport(t *testing.T) {
	backend, repo := newTestBackend(t)
	sarah := addUser(t, repo, "Sarah Khan", "sarah.khan@example.com", "password1", "passenger")
	addTrain(t, repo, "1UP", "Karachi Express", models.TrainTypeExpress, "Karachi - Lahore")
	addTrain(t, repo, "3UP", "Awam Express", models.TrainTypePassenger, "Islamabad - Multan")

	_, err := backend.Bookings.BookTicket(sarah, "1UP", "Karachi", "Lahore", travelDate(3), 1, "Economy")
	require.NoError(t, err)
	_, err = backend.Bookings.BookTicket(sarah, "1UP", "Lahore", "Karachi", travelDate(6), 1, "Economy")
	require.NoError(t, err)

	rows, err := backend.Reports.TrainPerformance()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byNumber := make(map[string]int)
	for _, row := range rows {
		byNumber[row.TrainNumber] = row.Bookings
	}
	assert.Equal(t, 2, byNumber["1UP"])
	assert.Equal(t, 0, byNumber["3UP"], "trains without bookings still appear")
}

func TestUserActivityReport(t *testing.T) {
	backend, repo := newTestBackend(t)
	sarah := addUser(t, repo, "Sarah Khan", "sarah.khan@example.com", "password1", "passenger")
	addUser(t, repo, "Ali Raza", "ali.raza@example.com", "password2", "passenger")
	addTrain(t, repo, "1UP", "Karachi Express", models.TrainTypeExpress, "Karachi - Lahore")

	_, err := backend.Bookings.BookTicket(sarah, "1UP", "Karachi", "Lahore", travelDate(3), 1, "Economy")
	require.NoError(t, err)

	rows, err := backend.Reports.UserActivity()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byEmail := make(map[string]int)
	for _, row := range rows {
		byEmail[row.Email] = row.Bookings
	}
	assert.Equal(t, 1, byEmail["sarah.khan@example.com"])
	assert.Equal(t, 0, byEmail["ali.raza@example.com"], "users without bookings still appear")
}
