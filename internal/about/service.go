package about

import (
	"context"

	"github.com/adewale-dev/portfolio-api/internal/models"
)

// Service serves and mutates the singleton about document.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

// Get returns the stored about document, or the structurally complete empty
// document when none has been saved yet. It never returns a not-found error.
func (s *Service) Get(ctx context.Context) (*models.About, error) {
	a, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return models.EmptyAbout(), nil
	}
	if a.Skills == nil {
		a.Skills = []string{}
	}
	return a, nil
}

func (s *Service) Update(ctx context.Context, a *models.About) (*models.About, error) {
	if a.Skills == nil {
		a.Skills = []string{}
	}
	return s.repo.Save(ctx, a)
}
