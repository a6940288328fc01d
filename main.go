package main

import (
	"log"

	"skillcert/config"
	"skillcert/database"
	authRoutes "skillcert/routers/authRoutes"
	companyRoutes "skillcert/routers/companyRoutes"
	courseRoutes "skillcert/routers/courseRoutes"
	orderRoutes "skillcert/routers/orderRoutes"
	"skillcert/utils"

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

	authRoutes.SetupAuthRoutes(app)
	companyRoutes.SetupCompanyRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	courseRoutes.SetupAdminCourseRoutes(app)
	orderRoutes.SetupOrderRoutes(app)

	// Daily sweep over active enrollments past their deadline
	utils.InitializeExpiryScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
