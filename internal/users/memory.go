package users

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/taskhive/taskhive-api/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryRepository is an in-memory Repository used by unit tests. It mirrors
// the Mongo repository's behavior, including the unique-email constraint.
type MemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*models.User // keyed by normalized email
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{store: make(map[string]*models.User)}
}

func (m *MemoryRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if u, ok := m.store[strings.ToLower(email)]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (m *MemoryRepository) Create(ctx context.Context, u *models.User) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := strings.ToLower(u.Email)
	if _, ok := m.store[key]; ok {
		return nil, ErrDuplicateEmail
	}
	now := time.Now().UTC()
	u.ID = primitive.NewObjectID()
	u.CreatedAt = now
	u.UpdatedAt = now
	cp := *u
	m.store[key] = &cp
	return u, nil
}
