package about

import (
	"context"
	"sync"
	"time"

	"github.com/adewale-dev/portfolio-api/internal/models"
	"github.com/google/uuid"
)

// MemoryRepository is an in-memory Repository for tests and local development.
type MemoryRepository struct {
	mu  sync.RWMutex
	doc *models.About
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (m *MemoryRepository) Get(ctx context.Context) (*models.About, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.doc == nil {
		return nil, nil
	}
	cp := *m.doc
	return &cp, nil
}

func (m *MemoryRepository) Save(ctx context.Context, a *models.About) (*models.About, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().UTC()
	cp := *a
	cp.UpdatedAt = now
	if m.doc == nil {
		cp.ID = uuid.NewString()
		cp.CreatedAt = now
	} else {
		cp.ID = m.doc.ID
		cp.CreatedAt = m.doc.CreatedAt
	}
	m.doc = &cp
	out := cp
	return &out, nil
}
