package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"arc/config"
	"arc/database"
	activityRoutes "arc/routers/activityRoutes"
	programRoutes "arc/routers/programRoutes"
	usageRoutes "arc/routers/usageRoutes"
	"arc/utils"
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

	// Serve the dashboard assets from the public folder
	app.Static("/", "./public")

	programRoutes.SetupProgramRoutes(app)
	activityRoutes.SetupActivityRoutes(app)
	usageRoutes.SetupUsageRoutes(app)

	if config.AppConfig.EnableUsageScheduler {
		utils.InitializeUsageScheduler()
	}

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
