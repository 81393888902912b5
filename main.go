package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/prometheus/client_golang/prometheus"

	"employee-management-api/config"
	_ "employee-management-api/docs"
	"employee-management-api/pkg/metrics"
	"employee-management-api/repository"
	"employee-management-api/router"
)

// @title Employee Management API
// @version 1.0
// @description CRUD backend for employee records with a bare signup/login pair, backed by MongoDB.
//
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
//
// @host localhost:3000
// @BasePath /
// @schemes http https
//
// @tag.name Employees
// @tag.description Employee record management
//
// @tag.name Auth
// @tag.description Signup and login
func main() {
	cfg := config.LoadConfig()

	var employeeRepo repository.EmployeeRepository
	var userRepo repository.UserRepository

	if cfg.MongoString == "" {
		log.Println("ATLASDB_URL not set, running with the in-memory store")
		employeeRepo = repository.NewMemoryEmployeeRepository()
		userRepo = repository.NewMemoryUserRepository()
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		client, err := config.ConnectMongo(ctx, cfg.MongoString)
		cancel()
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		defer func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.Printf("Error disconnecting from MongoDB: %v", err)
			}
		}()

		db := client.Database(cfg.DBName)
		if err := config.EnsureSchema(context.Background(), db); err != nil {
			log.Fatalf("Failed to provision collections: %v", err)
		}

		employeeRepo = repository.NewEmployeeRepository(db)
		userRepo = repository.NewUserRepository(db)
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 50 * 1024 * 1024,
	})

	config.SetupCORS(app)
	app.Use(logger.New())

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	app.Use(metrics.Middleware())

	router.SetupRoutes(app, employeeRepo, userRepo)

	log.Printf("Server running on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
