package repository

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"employee-management-api/models"
)

// MemoryUserRepository is the in-memory UserRepository counterpart, keyed by
// userName since that is the only lookup the system performs.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	store map[string]models.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{store: make(map[string]models.User)}
}

func (r *MemoryUserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.UserName == "" || user.Password == "" || user.Name == "" {
		return nil, errSchemaViolation
	}
	if _, exists := r.store[user.UserName]; exists {
		return nil, ErrDuplicateField
	}

	user.ID = primitive.NewObjectID()
	r.store[user.UserName] = *user
	return user, nil
}

func (r *MemoryUserRepository) FindByUserName(ctx context.Context, userName string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.store[userName]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}
