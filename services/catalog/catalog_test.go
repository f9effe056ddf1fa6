package catalog

import (
	"context"
	"testing"

	catalogRepo "astromarket/database/repository/catalog"
	"astromarket/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupProblemsKeepsFirstAppearanceOrder(t *testing.T) {
	problems := []models.Problem{
		{ID: "1", Title: "a", Category: "Career"},
		{ID: "2", Title: "b", Category: "Health"},
		{ID: "3", Title: "c", Category: "Career"},
	}

	groups := GroupProblems(problems)
	require.Len(t, groups, 2)
	assert.Equal(t, "Career", groups[0].Category)
	assert.Equal(t, []string{"1", "3"}, ids(groups[0].Problems))
	assert.Equal(t, "Health", groups[1].Category)
	assert.Equal(t, []string{"2"}, ids(groups[1].Problems))
}

func TestGroupProblemsEmpty(t *testing.T) {
	assert.Empty(t, GroupProblems(nil))
}

func TestGroupedProblemsCoversCatalog(t *testing.T) {
	svc := &DefaultCatalogService{Repo: catalogRepo.NewStaticCatalogRepo()}
	ctx := context.Background()

	groups, err := svc.GroupedProblems(ctx)
	require.NoError(t, err)

	all, err := svc.Repo.ListProblems(ctx)
	require.NoError(t, err)

	total := 0
	for _, g := range groups {
		for _, p := range g.Problems {
			assert.Equal(t, g.Category, p.Category)
		}
		total += len(g.Problems)
	}
	assert.Equal(t, len(all), total)
}

func ids(problems []models.Problem) []string {
	out := make([]string, 0, len(problems))
	for _, p := range problems {
		out = append(out, p.ID)
	}
	return out
}
