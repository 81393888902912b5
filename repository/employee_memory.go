package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"employee-management-api/models"
)

// errSchemaViolation stands in for the collection validator rejecting a
// document; it classifies as the generic failure message, same as Mongo's
// DocumentValidationFailure would.
var errSchemaViolation = errors.New("document failed validation")

// MemoryEmployeeRepository is an in-memory EmployeeRepository used when no
// Mongo connection string is configured, and by the handler tests. It
// enforces the same uniqueness and document rules the Mongo collection does
// so both error paths behave identically.
type MemoryEmployeeRepository struct {
	mu    sync.RWMutex
	store map[string]models.Employee
}

func NewMemoryEmployeeRepository() *MemoryEmployeeRepository {
	return &MemoryEmployeeRepository{store: make(map[string]models.Employee)}
}

func (r *MemoryEmployeeRepository) List(ctx context.Context, search, sortField string) ([]models.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	employees := []models.Employee{}
	for _, employee := range r.store {
		if search != "" && !strings.Contains(strings.ToLower(employee.Name), strings.ToLower(search)) {
			continue
		}
		employees = append(employees, employee)
	}

	if sortField == "" {
		sortField = "createDate"
	}
	sort.SliceStable(employees, func(i, j int) bool {
		return employeeLess(employees[i], employees[j], sortField)
	})
	return employees, nil
}

// employeeLess orders createDate by the timestamps themselves; every other
// sortable field compares as a string.
func employeeLess(a, b models.Employee, field string) bool {
	switch field {
	case "name":
		return a.Name < b.Name
	case "email":
		return a.Email < b.Email
	case "mobileNo":
		return a.MobileNo < b.MobileNo
	case "designation":
		return a.Designation < b.Designation
	case "gender":
		return a.Gender < b.Gender
	case "imgUpload":
		return a.ImgUpload < b.ImgUpload
	case "_id":
		return a.ID.Hex() < b.ID.Hex()
	default:
		return a.CreateDate.Before(b.CreateDate)
	}
}

func (r *MemoryEmployeeRepository) FindByID(ctx context.Context, id string) (*models.Employee, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, fmt.Errorf("invalid employee id %q: %w", id, err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	employee, ok := r.store[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &employee, nil
}

func (r *MemoryEmployeeRepository) Create(ctx context.Context, employee *models.Employee) (*models.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	employee.ID = primitive.NewObjectID()
	if employee.CreateDate.IsZero() {
		employee.CreateDate = time.Now()
	}
	if employee.Course == nil {
		employee.Course = []string{}
	}

	if err := r.checkUnique(*employee); err != nil {
		return nil, err
	}
	if err := checkEmployeeDocument(*employee); err != nil {
		return nil, err
	}

	r.store[employee.ID.Hex()] = *employee
	return employee, nil
}

func (r *MemoryEmployeeRepository) Update(ctx context.Context, id string, update bson.M) (*models.Employee, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, fmt.Errorf("invalid employee id %q: %w", id, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	employee, ok := r.store[id]
	if !ok {
		return nil, ErrNotFound
	}

	applyEmployeeUpdate(&employee, update)

	if err := r.checkUnique(employee); err != nil {
		return nil, err
	}
	if err := checkEmployeeDocument(employee); err != nil {
		return nil, err
	}

	r.store[id] = employee
	return &employee, nil
}

func (r *MemoryEmployeeRepository) Delete(ctx context.Context, id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return fmt.Errorf("invalid employee id %q: %w", id, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[id]; !ok {
		return ErrNotFound
	}
	delete(r.store, id)
	return nil
}

// checkUnique mirrors the unique indexes on email and mobileNo. The record
// itself is skipped so an update that keeps its own values passes.
func (r *MemoryEmployeeRepository) checkUnique(employee models.Employee) error {
	for _, existing := range r.store {
		if existing.ID == employee.ID {
			continue
		}
		if existing.Email == employee.Email {
			return ErrDuplicateEmail
		}
		if existing.MobileNo == employee.MobileNo {
			return ErrDuplicateMobile
		}
	}
	return nil
}

// checkEmployeeDocument mirrors the collection $jsonSchema validator: the
// fields the pre-validation deliberately skips still fail here.
func checkEmployeeDocument(employee models.Employee) error {
	if employee.Name == "" || employee.Email == "" || employee.MobileNo == "" ||
		employee.Designation == "" || employee.ImgUpload == "" {
		return errSchemaViolation
	}
	if employee.Gender != models.GenderMale && employee.Gender != models.GenderFemale {
		return errSchemaViolation
	}
	if employee.Course == nil {
		return errSchemaViolation
	}
	return nil
}

func applyEmployeeUpdate(employee *models.Employee, update bson.M) {
	for key, value := range update {
		switch key {
		case "name":
			if s, ok := value.(string); ok {
				employee.Name = s
			}
		case "email":
			if s, ok := value.(string); ok {
				employee.Email = s
			}
		case "mobileNo":
			if s, ok := value.(string); ok {
				employee.MobileNo = s
			}
		case "designation":
			if s, ok := value.(string); ok {
				employee.Designation = s
			}
		case "gender":
			if g, ok := value.(models.Gender); ok {
				employee.Gender = g
			}
		case "course":
			if c, ok := value.([]string); ok {
				employee.Course = c
			}
		case "createDate":
			if t, ok := value.(time.Time); ok {
				employee.CreateDate = t
			}
		case "imgUpload":
			if s, ok := value.(string); ok {
				employee.ImgUpload = s
			}
		}
	}
}
