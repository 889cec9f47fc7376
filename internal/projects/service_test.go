package projects

import (
	"context"
	"testing"
	"time"

	"github.com/adewale-dev/portfolio-api/internal/models"
	"github.com/adewale-dev/portfolio-api/internal/notifications"
	"github.com/stretchr/testify/require"
)

func TestCreateFansOut(t *testing.T) {
	nrepo := notifications.NewMemoryRepository()
	svc := NewService(NewMemoryRepository(), notifications.NewService(nrepo))

	p, err := svc.Create(context.Background(), &models.Project{Title: "Portfolio", Description: "This site"})
	require.NoError(t, err)
	require.NotEmpty(t, p.ID)

	ns, err := nrepo.List(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, ns, 1)
	require.Equal(t, models.NotificationTypeProject, ns[0].Type)
	require.Equal(t, p.ID, ns[0].RelatedID)
}

func TestCreateValidates(t *testing.T) {
	svc := NewService(NewMemoryRepository(), nil)

	_, err := svc.Create(context.Background(), &models.Project{Title: "", Description: "x"})
	require.ErrorIs(t, err, ErrMissingFields)
	_, err = svc.Create(context.Background(), &models.Project{Title: "x", Description: ""})
	require.ErrorIs(t, err, ErrMissingFields)
}

func TestListOrdering(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo, nil)
	ctx := context.Background()

	// create out of order; same Order value falls back to newest-first
	a := &models.Project{Title: "a", Description: "d", Order: 2}
	require.NoError(t, repo.Create(ctx, a))
	b := &models.Project{Title: "b", Description: "d", Order: 1}
	require.NoError(t, repo.Create(ctx, b))
	time.Sleep(5 * time.Millisecond)
	c := &models.Project{Title: "c", Description: "d", Order: 1}
	require.NoError(t, repo.Create(ctx, c))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, "c", list[0].Title)
	require.Equal(t, "b", list[1].Title)
	require.Equal(t, "a", list[2].Title)
}

func TestUpdateAndDelete(t *testing.T) {
	svc := NewService(NewMemoryRepository(), nil)
	ctx := context.Background()

	p, err := svc.Create(ctx, &models.Project{Title: "Old", Description: "d"})
	require.NoError(t, err)

	p.Title = "New"
	p.Featured = true
	got, err := svc.Update(ctx, p)
	require.NoError(t, err)
	require.Equal(t, "New", got.Title)
	require.True(t, got.Featured)

	_, err = svc.Update(ctx, &models.Project{ID: "missing", Title: "t", Description: "d"})
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, svc.Delete(ctx, p.ID))
	require.ErrorIs(t, svc.Delete(ctx, p.ID), ErrNotFound)
}
