package config

import (
	"context"
	"errors"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	EmployeeCollection = "employees"
	UserCollection     = "users"
)

// ConnectMongo opens and pings a client. The caller owns the client and is
// responsible for disconnecting it; nothing here is kept as package state.
func ConnectMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to create MongoDB client: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	log.Println("Connected to MongoDB!")
	return client, nil
}

// employeeSchema is the collection-level safety net behind the handler
// pre-validation: required fields, the gender enum and the field patterns
// are enforced here even for writes that skip the pre-check.
var employeeSchema = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{"name", "email", "mobileNo", "designation", "gender", "course", "imgUpload"},
		"properties": bson.M{
			"name":        bson.M{"bsonType": "string", "minLength": 1},
			"email":       bson.M{"bsonType": "string", "minLength": 1},
			"mobileNo":    bson.M{"bsonType": "string", "pattern": "^[0-9]{10}$"},
			"designation": bson.M{"bsonType": "string", "minLength": 1},
			"gender":      bson.M{"enum": []string{"Male", "Female"}},
			"course":      bson.M{"bsonType": "array"},
			"imgUpload":   bson.M{"bsonType": "string", "minLength": 1},
		},
	},
}

var userSchema = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{"userName", "password", "name"},
		"properties": bson.M{
			"userName": bson.M{"bsonType": "string", "minLength": 1},
			"password": bson.M{"bsonType": "string", "minLength": 1},
			"name":     bson.M{"bsonType": "string", "minLength": 1},
		},
	},
}

// EnsureSchema provisions collections, validators and indexes on startup:
// unique indexes on employees.email, employees.mobileNo and users.userName,
// plus the text index over employee names that backs the search parameter.
func EnsureSchema(ctx context.Context, db *mongo.Database) error {
	if err := createCollection(ctx, db, EmployeeCollection, employeeSchema); err != nil {
		return err
	}
	if err := createCollection(ctx, db, UserCollection, userSchema); err != nil {
		return err
	}

	_, err := db.Collection(EmployeeCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "mobileNo", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "name", Value: "text"}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create employee indexes: %w", err)
	}

	_, err = db.Collection(UserCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userName", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}

	return nil
}

func createCollection(ctx context.Context, db *mongo.Database, name string, schema bson.M) error {
	err := db.CreateCollection(ctx, name, options.CreateCollection().SetValidator(schema))
	if err != nil && !isNamespaceExists(err) {
		return fmt.Errorf("failed to create collection %s: %w", name, err)
	}
	return nil
}

// NamespaceExists: the collection was already provisioned by a previous run.
func isNamespaceExists(err error) bool {
	var commandError mongo.CommandError
	return errors.As(err, &commandError) && commandError.Code == 48
}
