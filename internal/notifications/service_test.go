package notifications

import (
	"context"
	"strings"
	"testing"

	"github.com/adewale-dev/portfolio-api/internal/models"
	"github.com/stretchr/testify/require"
)

func TestCreateValidates(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	err := svc.Create(ctx, &models.Notification{Type: "bogus", Title: "t", Message: "m"})
	require.ErrorIs(t, err, ErrInvalid)

	err = svc.Create(ctx, &models.Notification{Type: models.NotificationTypeSystem, Title: "", Message: "m"})
	require.ErrorIs(t, err, ErrInvalid)

	err = svc.Create(ctx, &models.Notification{Type: models.NotificationTypeSystem, Title: "t", Message: "m"})
	require.NoError(t, err)
}

func TestContactReceivedFanout(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	ctx := context.Background()

	long := "Hello, interested in working together on a large project with you"
	svc.ContactReceived(ctx, &models.Contact{ID: "c-1", Name: "Alice", Message: long})

	list, err := repo.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)

	n := list[0]
	require.Equal(t, models.NotificationTypeContact, n.Type)
	require.Equal(t, "c-1", n.RelatedID)
	require.Equal(t, "/admin/contacts", n.Link)
	require.True(t, strings.HasPrefix(n.Message, "Alice sent you a message: "))
	require.Contains(t, n.Message, long[:50])
	require.True(t, strings.HasSuffix(n.Message, "..."))
}

func TestContactReceivedShortMessageNotTruncated(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)

	svc.ContactReceived(context.Background(), &models.Contact{ID: "c-2", Name: "Bob", Message: "Hi there"})

	list, err := repo.List(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "Bob sent you a message: Hi there", list[0].Message)
}

func TestProjectCreatedFanout(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)

	svc.ProjectCreated(context.Background(), &models.Project{ID: "p-1", Title: "Side Project"})

	list, err := repo.List(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, models.NotificationTypeProject, list[0].Type)
	require.Equal(t, "p-1", list[0].RelatedID)
	require.False(t, list[0].Read)
}

func TestMarkAllReadIdempotent(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	ctx := context.Background()

	require.NoError(t, svc.Seed(ctx))

	// seed has two unread and one pre-read sample
	modified, err := svc.MarkAllRead(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(2), modified)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	for _, n := range list {
		require.True(t, n.Read)
	}

	// second invocation touches nothing and does not error
	modified, err = svc.MarkAllRead(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(0), modified)
}

func TestUpdateAndDeleteNotFound(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	read := true
	_, err := svc.Update(ctx, "missing", UpdateParams{Read: &read})
	require.ErrorIs(t, err, ErrNotFound)

	require.ErrorIs(t, svc.Delete(ctx, "missing"), ErrNotFound)
}
