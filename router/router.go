package router

import (
	"log"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "employee-management-api/docs"
	"employee-management-api/handlers"
	"employee-management-api/repository"
)

// SetupRoutes wires the repositories into handlers and registers every
// route. The store implementations are injected so the same routing runs
// against Mongo in production and the memory store in tests.
func SetupRoutes(app *fiber.App, employeeRepo repository.EmployeeRepository, userRepo repository.UserRepository) {
	employeeHandler := handlers.NewEmployeeHandler(employeeRepo)
	authHandler := handlers.NewAuthHandler(userRepo)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Employee Management API",
			"status":  "running",
			"docs":    "/docs/index.html",
		})
	})
	app.Get("/docs/*", swagger.HandlerDefault)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Get("/employees", employeeHandler.GetAllEmployees)
	app.Get("/employees/:id", employeeHandler.GetEmployeeByID)
	app.Post("/employees", employeeHandler.CreateEmployee)
	app.Put("/employees/:id", employeeHandler.UpdateEmployee)
	app.Delete("/employees/:id", employeeHandler.DeleteEmployee)

	app.Post("/signUp", authHandler.SignUp)
	app.Post("/login", authHandler.Login)

	log.Println("Routes registered:")
	log.Println("- GET    /employees")
	log.Println("- GET    /employees/:id")
	log.Println("- POST   /employees")
	log.Println("- PUT    /employees/:id")
	log.Println("- DELETE /employees/:id")
	log.Println("- POST   /signUp")
	log.Println("- POST   /login")
	log.Println("Swagger documentation available at /docs/index.html")
}
