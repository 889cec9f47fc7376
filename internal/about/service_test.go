package about

import (
	"context"
	"testing"

	"github.com/adewale-dev/portfolio-api/internal/models"
	"github.com/stretchr/testify/require"
)

func TestGetBeforeFirstSave(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	a, err := svc.Get(context.Background())
	require.NoError(t, err)
	require.NotNil(t, a)
	require.Empty(t, a.Bio)
	require.NotNil(t, a.Skills)
	require.Empty(t, a.Skills)
}

func TestUpdateIsSingleton(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	first, err := svc.Update(ctx, &models.About{Bio: "first", Title: "Engineer"})
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	second, err := svc.Update(ctx, &models.About{Bio: "second", Title: "Engineer", Skills: []string{"Go"}})
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, "second", got.Bio)
	require.Equal(t, []string{"Go"}, got.Skills)
}

func TestUpdateNormalizesSkills(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	got, err := svc.Update(context.Background(), &models.About{Bio: "b"})
	require.NoError(t, err)
	require.NotNil(t, got.Skills)
}
