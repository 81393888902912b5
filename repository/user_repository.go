package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"employee-management-api/config"
	"employee-management-api/models"
)

// UserRepository backs the signup/login pair. Users are created once and
// only ever read afterwards.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	FindByUserName(ctx context.Context, userName string) (*models.User, error)
}

type MongoUserRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{
		collection: db.Collection(config.UserCollection),
	}
}

func (r *MongoUserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	user.ID = primitive.NewObjectID()

	_, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		return nil, classifyWriteError(err)
	}
	return user, nil
}

func (r *MongoUserRepository) FindByUserName(ctx context.Context, userName string) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"userName": userName}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}
