package main

import (
	"log"
	"time"

	"resort_booking/config"
	"resort_booking/database"
	"resort_booking/handler"
	"resort_booking/helper"
	"resort_booking/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:5173",
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	database.ConnectDB()

	// Seeded rooms need their ledger rows before the first search hits.
	helper.ExtendLedgers()

	helper.StartLedgerScheduler()
	defer helper.StopLedgerScheduler()
	helper.StartPromotionScheduler()
	defer helper.StopPromotionScheduler()

	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for {
			<-ticker.C
			handler.ExpireBookings()
		}
	}()

	router.SetupRoutes(app)

	port := config.Config("PORT")
	if port == "" {
		port = "8002"
	}
	log.Fatal(app.Listen(":" + port))
}
