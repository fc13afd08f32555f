package main

import (
	"fmt"
	"os"
	"time"

	"github.com/kodraiti-design/eagles-transportes/database"
	"github.com/kodraiti-design/eagles-transportes/database/seeders"
	"github.com/kodraiti-design/eagles-transportes/logger"
	"github.com/kodraiti-design/eagles-transportes/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
)

func main() {
	app := fiber.New(fiber.Config{
		ReadBufferSize:  32768, // 32KB read buffer
		WriteBufferSize: 32768, // 32KB write buffer
		ReadTimeout:     time.Second * 30,
		WriteTimeout:    time.Second * 30,
		BodyLimit:       50 * 1024 * 1024, // delivery photo uploads
	})

	if err := godotenv.Load(); err != nil {
		logger.Error("Error loading .env file", err)
		fmt.Println("Error loading .env file", err)
	}

	db, err := database.InitDB()
	if err != nil {
		logger.Error("Failed to connect to the database", err)
		return
	}

	if err := seeders.Seed(db); err != nil {
		logger.Error("Failed to seed baseline data", err)
		return
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     os.Getenv("FRONTEND_URL"),
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	routes.SetupRoutes(app, db)

	appHost := os.Getenv("APP_HOST")
	appPort := os.Getenv("APP_PORT")
	logger.Success("Server is running on ip: " + appHost + " port: " + appPort)
	if err := app.Listen(appHost + ":" + appPort); err != nil {
		logger.Error("Server stopped", err)
	}
}
