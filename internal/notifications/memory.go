package notifications

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/adewale-dev/portfolio-api/internal/models"
	"github.com/google/uuid"
)

// MemoryRepository is an in-memory Repository used by unit tests and local
// development without a database.
type MemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*models.Notification
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{store: make(map[string]*models.Notification)}
}

func (m *MemoryRepository) Create(ctx context.Context, n *models.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	n.CreatedAt = now
	n.UpdatedAt = now
	cp := *n
	m.store[n.ID] = &cp
	return nil
}

func (m *MemoryRepository) CreateMany(ctx context.Context, ns []*models.Notification) error {
	for _, n := range ns {
		if err := m.Create(ctx, n); err != nil {
			return err
		}
	}
	return nil
}

func (m *MemoryRepository) List(ctx context.Context, limit int64) ([]*models.Notification, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*models.Notification, 0, len(m.store))
	for _, n := range m.store {
		cp := *n
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *MemoryRepository) Update(ctx context.Context, id string, p UpdateParams) (*models.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.store[id]
	if !ok {
		return nil, ErrNotFound
	}
	if p.Read != nil {
		n.Read = *p.Read
	}
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Message != nil {
		n.Message = *p.Message
	}
	if p.Link != nil {
		n.Link = *p.Link
	}
	n.UpdatedAt = time.Now().UTC()
	cp := *n
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

func (m *MemoryRepository) MarkAllRead(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var modified int64
	for _, n := range m.store {
		if !n.Read {
			n.Read = true
			n.UpdatedAt = time.Now().UTC()
			modified++
		}
	}
	return modified, nil
}
