package projects

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
	store map[primitive.ObjectID]*models.Project
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{store: make(map[primitive.ObjectID]*models.Project)}
}

func (m *MemoryRepository) Create(ctx context.Context, p *models.Project) (*models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().UTC()
	p.ID = primitive.NewObjectID()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.TaskIDs == nil {
		p.TaskIDs = []primitive.ObjectID{}
	}
	cp := *p
	m.store[p.ID] = &cp
	return p, nil
}

func (m *MemoryRepository) List(ctx context.Context) ([]*models.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*models.Project, 0, len(m.store))
	for _, p := range m.store {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (m *MemoryRepository) Get(ctx context.Context, id primitive.ObjectID) (*models.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.store[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *MemoryRepository) Update(ctx context.Context, id primitive.ObjectID, title, description string) (*models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.store[id]
	if !ok {
		return nil, ErrNotFound
	}
	p.Title = title
	p.Description = description
	p.UpdatedAt = time.Now().UTC()
	cp := *p
	return &cp, nil
}

func (m *MemoryRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.store, id)
	return nil
}

func (m *MemoryRepository) AttachTask(ctx context.Context, projectID, taskID primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.store[projectID]; ok {
		p.TaskIDs = append(p.TaskIDs, taskID)
	}
	return nil
}
