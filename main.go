package main

import (
	"log"
	"wildcamp/config"
	"wildcamp/database"
	bookingRoutes "wildcamp/routers/bookingRoutes"
	campsiteRoutes "wildcamp/routers/campsiteRoutes"
	categoryRoutes "wildcamp/routers/categoryRoutes"
	hostRoutes "wildcamp/routers/hostRoutes"
	reviewRoutes "wildcamp/routers/reviewRoutes"
	sosRoutes "wildcamp/routers/sosRoutes"
	"wildcamp/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	campsiteRoutes.SetupCampsiteRoutes(app)
	bookingRoutes.SetupBookingRoutes(app)
	categoryRoutes.SetupCategoryRoutes(app)
	hostRoutes.SetupHostRoutes(app)
	reviewRoutes.SetupReviewRoutes(app)
	sosRoutes.SetupSosRoutes(app)

	if config.AppConfig.EnableRatingSync {
		utils.StartRatingScheduler()
	}

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
