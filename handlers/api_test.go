package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/Abdul-Mateen-1/Railway-Management-System/database"
	"github.com/Abdul-Mateen-1/Railway-Management-System/handlers"
	"github.com/Abdul-Mateen-1/Railway-Management-System/repository"
	"github.com/Abdul-Mateen-1/Railway-Management-System/routes"
	"github.com/Abdul-Mateen-1/Railway-Management-System/services"
	ws "github.com/Abdul-Mateen-1/Railway-Management-System/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestApp wires the full HTTP surface against a throwaway database with
// the demo seed loaded, matching the production composition minus the cron
// job and the mailer.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	db, err := database.Connect(filepath.Join(t.TempDir(), "api_test.db"))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.Seed(db))

	repo := repository.New(db)
	hub := ws.NewHub()
	go hub.Run()

	backend := services.NewBackend(db, repo, hub, nil, services.CancellationPolicy{AllowPending: true})

	app := fiber.New()
	app.Use(recover.New())

	routes.PublicRoutes(app, handlers.NewTrainHandler(backend))
	routes.AuthRoutes(app, handlers.NewAuthHandler(backend))
	routes.ProfileRoutes(app, handlers.NewProfileHandler(backend))
	routes.BookingRoutes(app, handlers.NewBookingHandler(backend))
	routes.NotificationRoutes(app, handlers.NewNotificationHandler(backend, hub))
	routes.AdminRoutes(app, handlers.NewAdminHandler(backend))

	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	var parsed map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &parsed))
	}
	return resp, parsed
}

func doJSONList(t *testing.T, app *fiber.App, method, path, token string) (*http.Response, []map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	var parsed []map[string]any
	if len(raw) > 0 && raw[0] == '[' {
		require.NoError(t, json.Unmarshal(raw, &parsed))
	}
	return resp, parsed
}

func login(t *testing.T, app *fiber.App, email, password, role string) string {
	t.Helper()

	resp, body := doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", fiber.Map{
		"email":    email,
		"password": password,
		"role":     role,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, "login as %s", email)
	token, ok := body["token"].(string)
	require.True(t, ok, "login response carries a token")
	return token
}

func TestRegisterAndLogin(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", fiber.Map{
		"name":     "Bilal Ahmed",
		"email":    "bilal.ahmed@example.com",
		"password": "secret99",
		"city":     "Multan",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "passenger", body["role"])
	assert.NotContains(t, body, "password", "password never leaves the server")

	t.Run("fresh account can log in", func(t *testing.T) {
		token := login(t, app, "bilal.ahmed@example.com", "secret99", "passenger")
		assert.NotEmpty(t, token)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", fiber.Map{
			"name":     "Bilal Again",
			"email":    "Bilal.Ahmed@example.com",
			"password": "secret99",
		})
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("wrong password rejected", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", fiber.Map{
			"email":    "sarah.khan@example.com",
			"password": "wrong",
			"role":     "passenger",
		})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("passenger cannot log in through the admin door", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", fiber.Map{
			"email":    "sarah.khan@example.com",
			"password": "password1",
			"role":     "admin",
		})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("unknown role fails validation", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", fiber.Map{
			"email":    "sarah.khan@example.com",
			"password": "password1",
			"role":     "conductor",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestPublicTimetable(t *testing.T) {
	app := newTestApp(t)

	t.Run("list trains", func(t *testing.T) {
		resp, trains := doJSONList(t, app, http.MethodGet, "/api/v1/trains", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Len(t, trains, 6)
	})

	t.Run("search needs both stations", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodGet, "/api/v1/trains/search?from=Karachi", "", nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("search matches either direction", func(t *testing.T) {
		resp, trains := doJSONList(t, app, http.MethodGet, "/api/v1/trains/search?from=karachi&to=lahore", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Len(t, trains, 2)
		assert.Equal(t, "1UP", trains[0]["train_number"])
		assert.Equal(t, "2DN", trains[1]["train_number"])
	})

	t.Run("train status includes schedule", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodGet, "/api/v1/trains/1UP/status", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "On-time", body["status"])
		assert.Contains(t, body, "schedule")
	})

	t.Run("train without schedule still reports status", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodGet, "/api/v1/trains/4DN/status", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "Cancelled", body["status"])
		assert.NotContains(t, body, "schedule")
	})

	t.Run("unknown train", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodGet, "/api/v1/trains/99X/status", "", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestBookingFlow(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "sarah.khan@example.com", "password1", "passenger")
	date := time.Now().AddDate(0, 0, 3).Format("2006-01-02")

	resp, body := doJSON(t, app, http.MethodPost, "/api/v1/bookings", token, fiber.Map{
		"train_number":    "1UP",
		"from_station":    "Karachi",
		"to_station":      "Lahore",
		"travel_date":     date,
		"number_of_seats": 1,
		"seat_class":      "Economy",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	booking := body["booking"].(map[string]any)
	pnr := booking["pnr"].(string)
	assert.Equal(t, float64(3500), booking["total_amount"])
	assert.Equal(t, "Pending", booking["status"])
	assert.Equal(t, "Pending", booking["payment_status"])

	t.Run("booking shows up as pending payment", func(t *testing.T) {
		resp, pending := doJSONList(t, app, http.MethodGet, "/api/v1/bookings/pending-payments", token)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Len(t, pending, 1)
		assert.Equal(t, pnr, pending[0]["pnr"])
	})

	t.Run("payment confirms the booking", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodPost, "/api/v1/bookings/"+pnr+"/pay", token, fiber.Map{
			"payment_method": "Card",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		paid := body["booking"].(map[string]any)
		assert.Equal(t, "Confirmed", paid["status"])
		assert.Equal(t, "Paid", paid["payment_status"])
		assert.NotEmpty(t, paid["payment_reference"])
	})

	t.Run("unsupported payment method rejected", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/v1/bookings/"+pnr+"/pay", token, fiber.Map{
			"payment_method": "Cheque",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("cancellation reports the refund", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodPost, "/api/v1/bookings/"+pnr+"/cancel", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, float64(2800), body["refund_amount"])
		assert.Equal(t, "PKR 2,800 (80%)", body["refund_display"])
		cancelled := body["booking"].(map[string]any)
		assert.Equal(t, "Cancelled", cancelled["status"])
	})

	t.Run("cancelled booking stays in history", func(t *testing.T) {
		resp, mine := doJSONList(t, app, http.MethodGet, "/api/v1/bookings/me", token)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		// Seed booking plus the one made here.
		require.Len(t, mine, 2)
	})

	t.Run("someone else's booking reads as not found", func(t *testing.T) {
		other := login(t, app, "ali.raza@example.com", "password2", "passenger")
		resp, _ := doJSON(t, app, http.MethodPost, "/api/v1/bookings/PNR-5K8W2T/cancel", other, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("past travel date rejected", func(t *testing.T) {
		yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
		resp, _ := doJSON(t, app, http.MethodPost, "/api/v1/bookings", token, fiber.Map{
			"train_number":    "1UP",
			"from_station":    "Karachi",
			"to_station":      "Lahore",
			"travel_date":     yesterday,
			"number_of_seats": 1,
			"seat_class":      "Economy",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestAccessControl(t *testing.T) {
	app := newTestApp(t)
	passenger := login(t, app, "sarah.khan@example.com", "password1", "passenger")
	admin := login(t, app, "admin@railsafar.com", "admin123", "admin")

	t.Run("missing token", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodGet, "/api/v1/bookings/me", "", nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("garbage token", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodGet, "/api/v1/bookings/me", "not-a-jwt", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("passenger blocked from admin surface", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodGet, "/api/v1/admin/bookings", passenger, nil)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("admin blocked from passenger booking surface", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodGet, "/api/v1/bookings/me", admin, nil)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("admin sees all bookings", func(t *testing.T) {
		resp, bookings := doJSONList(t, app, http.MethodGet, "/api/v1/admin/bookings", admin)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Len(t, bookings, 1)
	})
}

func TestAdminPanel(t *testing.T) {
	app := newTestApp(t)
	admin := login(t, app, "admin@railsafar.com", "admin123", "admin")

	t.Run("train lifecycle", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodPost, "/api/v1/admin/trains", admin, fiber.Map{
			"train_number": "7UP",
			"train_name":   "Night Coach",
			"type":         "Passenger",
			"route":        "Quetta - Karachi",
			"status":       "On-time",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		id := body["id"].(float64)

		resp, _ = doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/v1/admin/trains/%.0f", id), admin, fiber.Map{
			"train_number": "7UP",
			"train_name":   "Night Coach",
			"type":         "Passenger",
			"route":        "Quetta - Karachi",
			"status":       "Delayed",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp, status := doJSON(t, app, http.MethodGet, "/api/v1/trains/7UP/status", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "Delayed", status["status"])

		resp, _ = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/v1/admin/trains/%.0f", id), admin, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp, _ = doJSON(t, app, http.MethodGet, "/api/v1/trains/7UP/status", "", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("revenue report counts the seeded confirmed booking", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodGet, "/api/v1/admin/reports/revenue", admin, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, float64(5000), body["total_revenue"])
		assert.Equal(t, float64(1), body["booking_count"])
	})

	t.Run("csv export", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/reports/revenue.csv", nil)
		req.Header.Set("Authorization", "Bearer "+admin)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")

		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(raw), "PNR-5K8W2T")
	})

	t.Run("user management", func(t *testing.T) {
		resp, users := doJSONList(t, app, http.MethodGet, "/api/v1/admin/users", admin)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.GreaterOrEqual(t, len(users), 3)

		resp, created := doJSON(t, app, http.MethodPost, "/api/v1/admin/users", admin, fiber.Map{
			"name":     "Station Master",
			"email":    "master@railsafar.com",
			"password": "keys1234",
			"role":     "admin",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, "admin", created["role"])
	})
}

func TestNotificationsOverHTTP(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "sarah.khan@example.com", "password1", "passenger")
	date := time.Now().AddDate(0, 0, 5).Format("2006-01-02")

	resp, _ := doJSON(t, app, http.MethodPost, "/api/v1/bookings", token, fiber.Map{
		"train_number":    "3UP",
		"from_station":    "Islamabad",
		"to_station":      "Multan",
		"travel_date":     date,
		"number_of_seats": 1,
		"seat_class":      "Economy",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, notifications := doJSONList(t, app, http.MethodGet, "/api/v1/notifications", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, notifications)
	id := notifications[0]["id"].(float64)

	resp, body := doJSON(t, app, http.MethodGet, "/api/v1/notifications/unread-count", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), body["unread"])

	resp, _ = doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/v1/notifications/%.0f/read", id), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = doJSON(t, app, http.MethodGet, "/api/v1/notifications/unread-count", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(0), body["unread"])
}
