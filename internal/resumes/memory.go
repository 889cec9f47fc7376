package resumes

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/adewale-dev/portfolio-api/internal/models"
	"github.com/google/uuid"
)

// MemoryRepository is an in-memory Repository for tests and local development.
type MemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*models.Resume
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{store: make(map[string]*models.Resume)}
}

func (m *MemoryRepository) Create(ctx context.Context, doc *models.Resume) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	doc.CreatedAt = now
	doc.UpdatedAt = now
	cp := *doc
	m.store[doc.ID] = &cp
	return nil
}

func (m *MemoryRepository) List(ctx context.Context) ([]*models.Resume, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*models.Resume, 0, len(m.store))
	for _, doc := range m.store {
		cp := *doc
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *MemoryRepository) Get(ctx context.Context, id string) (*models.Resume, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	doc, ok := m.store[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *doc
	return &cp, nil
}

func (m *MemoryRepository) Update(ctx context.Context, doc *models.Resume) (*models.Resume, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.store[doc.ID]
	if !ok {
		return nil, ErrNotFound
	}
	cur.PersonalInfo = doc.PersonalInfo
	cur.Experience = doc.Experience
	cur.Education = doc.Education
	cur.Skills = doc.Skills
	cur.Certifications = doc.Certifications
	cur.Languages = doc.Languages
	cur.IsActive = doc.IsActive
	cur.UpdatedAt = time.Now().UTC()
	cp := *cur
	return &cp, nil
}

func (m *MemoryRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[id]; !ok {
		return ErrNotFound
	}
	delete(m.store, id)
	return nil
}
