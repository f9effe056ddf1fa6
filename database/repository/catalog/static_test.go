package catalogRepo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticCatalogLookups(t *testing.T) {
	repo := NewStaticCatalogRepo()
	ctx := context.Background()

	astrologers, err := repo.ListAstrologers(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, astrologers)

	got, err := repo.GetAstrologer(ctx, astrologers[0].ID)
	require.NoError(t, err)
	assert.Equal(t, astrologers[0].Name, got.Name)

	_, err = repo.GetAstrologer(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.GetProblem(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStaticCatalogListReturnsCopy(t *testing.T) {
	repo := NewStaticCatalogRepo()
	ctx := context.Background()

	first, err := repo.ListProblems(ctx)
	require.NoError(t, err)
	first[0].Title = "mutated"

	second, err := repo.ListProblems(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", second[0].Title)
}

func TestCatalogDataIsConsistent(t *testing.T) {
	seen := map[string]bool{}
	for _, a := range defaultAstrologers {
		assert.False(t, seen[a.ID], "duplicate astrologer id %s", a.ID)
		seen[a.ID] = true
		assert.NotEmpty(t, a.Availability, a.ID)
		assert.Positive(t, a.PricePerHour, a.ID)
	}
	for _, p := range defaultProblems {
		assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
		assert.NotEmpty(t, p.Category, p.ID)
	}
}
