package main

import (
	"log"
	"time"

	config "github.com/Abdul-Mateen-1/Railway-Management-System/configs"
	"github.com/Abdul-Mateen-1/Railway-Management-System/database"
	"github.com/Abdul-Mateen-1/Railway-Management-System/handlers"
	"github.com/Abdul-Mateen-1/Railway-Management-System/jobs"
	"github.com/Abdul-Mateen-1/Railway-Management-System/mailer"
	"github.com/Abdul-Mateen-1/Railway-Management-System/repository"
	"github.com/Abdul-Mateen-1/Railway-Management-System/routes"
	"github.com/Abdul-Mateen-1/Railway-Management-System/services"
	ws "github.com/Abdul-Mateen-1/Railway-Management-System/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"
)

func main() {
	db, err := database.Connect(config.ConfigOr("DATABASE_PATH", "railway_management.db"))
	if err != nil {
		log.Fatalf("🔥 %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("🔥 %v", err)
	}
	if err := database.Seed(db); err != nil {
		log.Fatalf("🔥 Failed to seed database: %v", err)
	}

	repo := repository.New(db)
	hub := ws.NewHub()
	go hub.Run()

	mail := mailer.New()
	policy := services.CancellationPolicy{
		AllowPending: config.ConfigOr("CANCEL_PENDING_BOOKINGS", "true") == "true",
	}
	backend := services.NewBackend(db, repo, hub, mail, policy)

	reminder := jobs.NewPaymentReminderJob(repo, backend.Notifications)
	c := cron.New()
	c.AddFunc("0 9 * * *", reminder.Run)
	c.Start()
	log.Println("✅ Cron job for payment reminders scheduled successfully.")

	app := fiber.New(fiber.Config{
		Prefork:           false,
		AppName:           "RailSafar API",
		CaseSensitive:     true,
		StrictRouting:     false,
		EnablePrintRoutes: true,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"status":  "error",
				"code":    code,
				"message": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization, Sec-WebSocket-Key, Sec-WebSocket-Version",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Authorization, Content-Disposition",
		MaxAge:        86400,
	}))

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "success",
			"message": "Welcome to RailSafar API",
		})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	authHandler := handlers.NewAuthHandler(backend)
	trainHandler := handlers.NewTrainHandler(backend)
	bookingHandler := handlers.NewBookingHandler(backend)
	profileHandler := handlers.NewProfileHandler(backend)
	notificationHandler := handlers.NewNotificationHandler(backend, hub)
	adminHandler := handlers.NewAdminHandler(backend)

	routes.PublicRoutes(app, trainHandler)
	routes.AuthRoutes(app, authHandler)
	routes.ProfileRoutes(app, profileHandler)
	routes.BookingRoutes(app, bookingHandler)
	routes.NotificationRoutes(app, notificationHandler)
	routes.AdminRoutes(app, adminHandler)

	port := config.ConfigOr("PORT", "8080")
	log.Printf("✅ Server is running on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
