package tasks

import (
	"context"
	"sync"
	"time"

	"github.com/taskhive/taskhive-api/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryRepository is an in-memory Repository used by unit tests.
type MemoryRepository struct {
	mu    sync.RWMutex
	store map[primitive.ObjectID]models.Task
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{store: make(map[primitive.ObjectID]models.Task)}
}

func (m *MemoryRepository) Create(ctx context.Context, t *models.Task) (*models.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().UTC()
	t.ID = primitive.NewObjectID()
	t.CreatedAt = now
	t.UpdatedAt = now
	m.store[t.ID] = *t
	return t, nil
}

func (m *MemoryRepository) ListByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []models.Task{}
	for _, id := range ids {
		if t, ok := m.store[id]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}
