package projects

import (
	"context"
	"errors"

	"github.com/adewale-dev/portfolio-api/internal/models"
)

var ErrMissingFields = errors.New("title and description are required")

// Notifier receives the fan-out for newly created projects.
type Notifier interface {
	ProjectCreated(ctx context.Context, p *models.Project)
}

// Service encapsulates project business logic
type Service struct {
	repo     Repository
	notifier Notifier
}

// NewService creates a project service. notifier may be nil to disable fan-out.
func NewService(r Repository, n Notifier) *Service {
	return &Service{repo: r, notifier: n}
}

func (s *Service) Create(ctx context.Context, p *models.Project) (*models.Project, error) {
	if p.Title == "" || p.Description == "" {
		return nil, ErrMissingFields
	}
	if p.Technologies == nil {
		p.Technologies = []string{}
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	if s.notifier != nil {
		s.notifier.ProjectCreated(ctx, p)
	}
	return p, nil
}

func (s *Service) List(ctx context.Context) ([]*models.Project, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*models.Project, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Update(ctx context.Context, p *models.Project) (*models.Project, error) {
	if p.Title == "" || p.Description == "" {
		return nil, ErrMissingFields
	}
	return s.repo.Update(ctx, p)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
