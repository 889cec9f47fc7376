package accounts

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
	store map[string]*models.Account
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{store: make(map[string]*models.Account)}
}

func (m *MemoryRepository) Create(ctx context.Context, a *models.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now
	cp := *a
	m.store[a.ID] = &cp
	return nil
}

func (m *MemoryRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, a := range m.store {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryRepository) GetByID(ctx context.Context, id string) (*models.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.store[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (m *MemoryRepository) First(ctx context.Context) (*models.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	all := make([]*models.Account, 0, len(m.store))
	for _, a := range m.store {
		all = append(all, a)
	}
	if len(all) == 0 {
		return nil, ErrNotFound
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.Before(all[j].CreatedAt) })
	cp := *all[0]
	return &cp, nil
}

func (m *MemoryRepository) Count(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.store)), nil
}

func (m *MemoryRepository) UpdatePassword(ctx context.Context, id, hash string, changedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.store[id]
	if !ok {
		return ErrNotFound
	}
	a.PasswordHash = hash
	t := changedAt
	a.LastPasswordChange = &t
	a.UpdatedAt = changedAt
	return nil
}

func (m *MemoryRepository) UpdateEmail(ctx context.Context, id, email string, changedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.store[id]
	if !ok {
		return ErrNotFound
	}
	a.Email = email
	t := changedAt
	a.LastEmailChange = &t
	a.UpdatedAt = changedAt
	return nil
}

func (m *MemoryRepository) UpdateProfile(ctx context.Context, id string, p models.Profile) (*models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.store[id]
	if !ok {
		return nil, ErrNotFound
	}
	a.Profile = p
	a.UpdatedAt = time.Now().UTC()
	cp := *a
	return &cp, nil
}
