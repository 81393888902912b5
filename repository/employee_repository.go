package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"employee-management-api/config"
	"employee-management-api/models"
)

// EmployeeRepository is the store behind the employee endpoints. Update takes
// a bson.M of the fields present in the request; fields not in the document
// keep their stored values.
type EmployeeRepository interface {
	List(ctx context.Context, search, sortField string) ([]models.Employee, error)
	FindByID(ctx context.Context, id string) (*models.Employee, error)
	Create(ctx context.Context, employee *models.Employee) (*models.Employee, error)
	Update(ctx context.Context, id string, update bson.M) (*models.Employee, error)
	Delete(ctx context.Context, id string) error
}

type MongoEmployeeRepository struct {
	collection *mongo.Collection
}

func NewEmployeeRepository(db *mongo.Database) *MongoEmployeeRepository {
	return &MongoEmployeeRepository{
		collection: db.Collection(config.EmployeeCollection),
	}
}

func (r *MongoEmployeeRepository) List(ctx context.Context, search, sortField string) ([]models.Employee, error) {
	filter := bson.M{}
	if search != "" {
		filter = bson.M{"$text": bson.M{"$search": search}}
	}
	if sortField == "" {
		sortField = "createDate"
	}

	findOptions := options.Find().SetSort(bson.D{{Key: sortField, Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to find employees: %w", err)
	}
	defer cursor.Close(ctx)

	employees := []models.Employee{}
	if err = cursor.All(ctx, &employees); err != nil {
		return nil, fmt.Errorf("failed to decode employees: %w", err)
	}
	return employees, nil
}

func (r *MongoEmployeeRepository) FindByID(ctx context.Context, id string) (*models.Employee, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid employee id %q: %w", id, err)
	}

	var employee models.Employee
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&employee)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find employee: %w", err)
	}
	return &employee, nil
}

func (r *MongoEmployeeRepository) Create(ctx context.Context, employee *models.Employee) (*models.Employee, error) {
	employee.ID = primitive.NewObjectID()
	if employee.CreateDate.IsZero() {
		employee.CreateDate = time.Now()
	}
	if employee.Course == nil {
		employee.Course = []string{}
	}

	_, err := r.collection.InsertOne(ctx, employee)
	if err != nil {
		return nil, classifyWriteError(err)
	}
	return employee, nil
}

func (r *MongoEmployeeRepository) Update(ctx context.Context, id string, update bson.M) (*models.Employee, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid employee id %q: %w", id, err)
	}

	findOptions := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Employee
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, bson.M{"$set": update}, findOptions).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, classifyWriteError(err)
	}
	return &updated, nil
}

func (r *MongoEmployeeRepository) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid employee id %q: %w", id, err)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
