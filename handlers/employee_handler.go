package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"

	"employee-management-api/models"
	util "employee-management-api/pkg/utils"
	"employee-management-api/repository"
)

type EmployeeHandler struct {
	employeeRepo repository.EmployeeRepository
}

func NewEmployeeHandler(employeeRepo repository.EmployeeRepository) *EmployeeHandler {
	return &EmployeeHandler{
		employeeRepo: employeeRepo,
	}
}

// GetAllEmployees godoc
// @Summary List employees
// @Description Lists all employees, optionally filtered by a text search over names and sorted ascending by a field (createDate by default)
// @Tags Employees
// @Produce json
// @Param search query string false "Text search over indexed fields"
// @Param field query string false "Field to sort ascending by" default(createDate)
// @Success 200 {array} models.Employee
// @Failure 500 {object} models.ErrorResponse
// @Router /employees [get]
func (h *EmployeeHandler) GetAllEmployees(c *fiber.Ctx) error {
	search := c.Query("search")
	sortField := c.Query("field", "createDate")

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	employees, err := h.employeeRepo.List(ctx, search, sortField)
	if err != nil {
		log.Printf("failed to fetch employees: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch employees"})
	}
	return c.JSON(employees)
}

// GetEmployeeByID godoc
// @Summary Get one employee
// @Tags Employees
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} models.Employee
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /employees/{id} [get]
func (h *EmployeeHandler) GetEmployeeByID(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	employee, err := h.employeeRepo.FindByID(ctx, c.Params("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Employee not found"})
		}
		log.Printf("failed to fetch employee: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch employee"})
	}
	return c.JSON(employee)
}

// CreateEmployee godoc
// @Summary Create employee
// @Tags Employees
// @Accept json
// @Produce json
// @Param employee body models.EmployeePayload true "Employee data"
// @Success 201 {object} models.Employee
// @Failure 400 {object} models.ErrorResponse "Validation or duplicate-field message"
// @Router /employees [post]
func (h *EmployeeHandler) CreateEmployee(c *fiber.Ctx) error {
	var payload models.EmployeePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to process request."})
	}

	if message := util.ValidateEmployee(payload); message != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
	}

	employee := &models.Employee{
		Name:        payload.Name,
		Email:       payload.Email,
		MobileNo:    payload.MobileNo,
		Designation: payload.Designation,
		Gender:      payload.Gender,
		Course:      payload.Course,
		CreateDate:  payload.CreateDate,
		ImgUpload:   payload.ImgUpload,
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	created, err := h.employeeRepo.Create(ctx, employee)
	if err != nil {
		log.Printf("failed to create employee: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": storeErrorMessage(err)})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdateEmployee godoc
// @Summary Update employee
// @Description Replaces the fields present in the request body and returns the updated record
// @Tags Employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param employee body models.EmployeePayload true "Employee data"
// @Success 200 {object} models.Employee
// @Failure 400 {object} models.ErrorResponse "Validation or duplicate-field message"
// @Failure 404 {object} models.ErrorResponse
// @Router /employees/{id} [put]
func (h *EmployeeHandler) UpdateEmployee(c *fiber.Ctx) error {
	var payload models.EmployeePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to process request."})
	}

	if message := util.ValidateEmployee(payload); message != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	updated, err := h.employeeRepo.Update(ctx, c.Params("id"), employeeUpdateDocument(c, payload))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Employee not found"})
		}
		log.Printf("failed to update employee: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": storeErrorMessage(err)})
	}
	return c.JSON(updated)
}

// DeleteEmployee godoc
// @Summary Delete employee
// @Tags Employees
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /employees/{id} [delete]
func (h *EmployeeHandler) DeleteEmployee(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	err := h.employeeRepo.Delete(ctx, c.Params("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Employee not found"})
		}
		log.Printf("failed to delete employee: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete employee"})
	}
	return c.JSON(fiber.Map{"message": "Employee deleted successfully"})
}

// employeeUpdateDocument builds the $set document from the fields actually
// present in the request, so an omitted field keeps its stored value instead
// of being zeroed. Presence comes from the raw JSON keys, or from the form
// keys when the body is form-encoded.
func employeeUpdateDocument(c *fiber.Ctx, payload models.EmployeePayload) bson.M {
	present := map[string]bool{}
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEApplicationForm) {
		c.Request().PostArgs().VisitAll(func(key, _ []byte) {
			present[string(key)] = true
		})
	} else {
		var raw map[string]json.RawMessage
		if err := json.Unmarshal(c.Body(), &raw); err == nil {
			for key := range raw {
				present[key] = true
			}
		}
	}

	update := bson.M{}
	if present["name"] {
		update["name"] = payload.Name
	}
	if present["email"] {
		update["email"] = payload.Email
	}
	if present["mobileNo"] {
		update["mobileNo"] = payload.MobileNo
	}
	if present["designation"] {
		update["designation"] = payload.Designation
	}
	if present["gender"] {
		update["gender"] = payload.Gender
	}
	if present["course"] {
		course := payload.Course
		if course == nil {
			course = []string{}
		}
		update["course"] = course
	}
	if present["createDate"] {
		update["createDate"] = payload.CreateDate
	}
	if present["imgUpload"] {
		update["imgUpload"] = payload.ImgUpload
	}
	return update
}
