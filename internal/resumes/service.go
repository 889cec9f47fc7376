package resumes

import (
	"context"
	"errors"

	"github.com/adewale-dev/portfolio-api/internal/models"
)

var ErrMissingFields = errors.New("full name and email are required")

// Service encapsulates resume business logic
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

// normalize ensures the list fields are never nil so renderers and JSON
// responses see empty arrays instead of null.
func normalize(doc *models.Resume) {
	if doc.Experience == nil {
		doc.Experience = []models.Experience{}
	}
	if doc.Education == nil {
		doc.Education = []models.Education{}
	}
	if doc.Skills == nil {
		doc.Skills = []models.SkillGroup{}
	}
	if doc.Certifications == nil {
		doc.Certifications = []models.Certification{}
	}
	if doc.Languages == nil {
		doc.Languages = []models.Language{}
	}
}

func (s *Service) Create(ctx context.Context, doc *models.Resume) (*models.Resume, error) {
	if doc.PersonalInfo.FullName == "" || doc.PersonalInfo.Email == "" {
		return nil, ErrMissingFields
	}
	normalize(doc)
	if err := s.repo.Create(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *Service) List(ctx context.Context) ([]*models.Resume, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*models.Resume, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Update(ctx context.Context, doc *models.Resume) (*models.Resume, error) {
	if doc.PersonalInfo.FullName == "" || doc.PersonalInfo.Email == "" {
		return nil, ErrMissingFields
	}
	normalize(doc)
	return s.repo.Update(ctx, doc)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
