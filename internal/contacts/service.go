package contacts

import (
	"context"
	"errors"

	"github.com/adewale-dev/portfolio-api/internal/models"
)

var (
	ErrMissingFields = errors.New("name, email and message are required")
	ErrInvalidStatus = errors.New("invalid contact status")
)

// Notifier receives the fan-out for newly created contacts.
type Notifier interface {
	ContactReceived(ctx context.Context, c *models.Contact)
}

// Service owns the contact lifecycle: public creation, admin viewing (which
// advances new -> read), explicit status changes and deletion.
type Service struct {
	repo     Repository
	notifier Notifier
}

// NewService creates a contact service. notifier may be nil to disable fan-out.
func NewService(r Repository, n Notifier) *Service {
	return &Service{repo: r, notifier: n}
}

// Create stores a visitor submission. The status is always forced to "new";
// whatever the caller supplied is ignored.
func (s *Service) Create(ctx context.Context, name, email, message string) (*models.Contact, error) {
	if name == "" || email == "" || message == "" {
		return nil, ErrMissingFields
	}
	c := &models.Contact{
		Name:    name,
		Email:   email,
		Message: message,
		Status:  models.ContactStatusNew,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	if s.notifier != nil {
		s.notifier.ContactReceived(ctx, c)
	}
	return c, nil
}

func (s *Service) List(ctx context.Context) ([]*models.Contact, error) {
	return s.repo.List(ctx)
}

// View returns the contact and, when it is still "new", persists the "read"
// transition before returning. Viewing an already-read contact changes nothing.
func (s *Service) View(ctx context.Context, id string) (*models.Contact, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.Status == models.ContactStatusNew {
		return s.repo.UpdateStatus(ctx, id, models.ContactStatusRead)
	}
	return c, nil
}

// UpdateStatus sets the contact's status to any member of the closed
// enumeration. The state machine does not forbid moving backwards; the UI
// simply never offers it.
func (s *Service) UpdateStatus(ctx context.Context, id string, status models.ContactStatus) (*models.Contact, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
