package notifications

import (
	"context"
	"errors"
	"time"

	"github.com/adewale-dev/portfolio-api/internal/models"
	"github.com/adewale-dev/portfolio-api/pkg/logger"
	"github.com/adewale-dev/portfolio-api/pkg/metrics"
)

var ErrInvalid = errors.New("invalid notification")

// previewLen is how much of a contact message survives into its notification.
const previewLen = 50

// Service encapsulates notification business logic, including the fan-out
// writes triggered by contact and project creation.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

// Create validates and stores an administrator-authored notification.
func (s *Service) Create(ctx context.Context, n *models.Notification) error {
	if !n.Type.Valid() || n.Title == "" || n.Message == "" {
		return ErrInvalid
	}
	return s.repo.Create(ctx, n)
}

func (s *Service) List(ctx context.Context) ([]*models.Notification, error) {
	return s.repo.List(ctx, 20)
}

func (s *Service) Update(ctx context.Context, id string, p UpdateParams) (*models.Notification, error) {
	return s.repo.Update(ctx, id, p)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// MarkAllRead flips every unread notification to read. Calling it with
// nothing unread is a no-op, not an error.
func (s *Service) MarkAllRead(ctx context.Context) (int64, error) {
	return s.repo.MarkAllRead(ctx)
}

// ContactReceived fans out the notification for a newly created contact
// message. The contact write has already succeeded when this runs; failures
// here are retried and then surfaced through logs and metrics only.
func (s *Service) ContactReceived(ctx context.Context, c *models.Contact) {
	n := &models.Notification{
		Type:      models.NotificationTypeContact,
		Title:     "New Contact Message",
		Message:   c.Name + " sent you a message: " + preview(c.Message),
		Link:      "/admin/contacts",
		RelatedID: c.ID,
	}
	s.createWithRetry(ctx, n, "contact")
}

// ProjectCreated fans out the notification for a newly created project.
func (s *Service) ProjectCreated(ctx context.Context, p *models.Project) {
	n := &models.Notification{
		Type:      models.NotificationTypeProject,
		Title:     "New Project Added",
		Message:   "Project \"" + p.Title + "\" was added to your portfolio",
		Link:      "/admin/projects",
		RelatedID: p.ID,
	}
	s.createWithRetry(ctx, n, "project")
}

func (s *Service) createWithRetry(ctx context.Context, n *models.Notification, source string) {
	metrics.NotificationFanout.WithLabelValues(source).Inc()
	backoff := 50 * time.Millisecond
	var err error
	for attempt := 1; attempt <= 3; attempt++ {
		if err = s.repo.Create(ctx, n); err == nil {
			return
		}
		if attempt < 3 {
			time.Sleep(backoff)
			backoff *= 2
		}
	}
	// primary entity is already durable; record the gap instead of rolling back
	metrics.NotificationFanoutFailures.WithLabelValues(source).Inc()
	logger.Errorf("notification fan-out failed (source=%s relatedId=%s): %v", source, n.RelatedID, err)
}

// Seed inserts the three illustrative sample notifications.
func (s *Service) Seed(ctx context.Context) error {
	samples := []*models.Notification{
		{
			Type:    models.NotificationTypeContact,
			Title:   "New Contact Message",
			Message: "John Doe sent you a message about collaboration opportunities",
			Link:    "/admin/contacts",
		},
		{
			Type:    models.NotificationTypeProject,
			Title:   "Project Updated",
			Message: "Your portfolio project has been successfully updated",
			Link:    "/admin/projects",
		},
		{
			Type:    models.NotificationTypeSystem,
			Title:   "Welcome to Notifications",
			Message: "Your notification system is now active and ready to use!",
			Read:    true,
		},
	}
	return s.repo.CreateMany(ctx, samples)
}

func preview(msg string) string {
	r := []rune(msg)
	if len(r) <= previewLen {
		return msg
	}
	return string(r[:previewLen]) + "..."
}
