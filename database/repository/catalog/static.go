package catalogRepo

import (
	"context"
	"fmt"

	"astromarket/models"
)

// StaticCatalogRepo implements CatalogRepository over fixed in-memory data.
type StaticCatalogRepo struct {
	problems    []models.Problem
	astrologers []models.Astrologer
}

// NewStaticCatalogRepo returns the built-in catalog.
func NewStaticCatalogRepo() CatalogRepository {
	return &StaticCatalogRepo{problems: defaultProblems, astrologers: defaultAstrologers}
}

// NewStaticCatalogRepoWith builds a catalog from caller supplied entries.
func NewStaticCatalogRepoWith(problems []models.Problem, astrologers []models.Astrologer) CatalogRepository {
	return &StaticCatalogRepo{problems: problems, astrologers: astrologers}
}

func (r *StaticCatalogRepo) ListProblems(ctx context.Context) ([]models.Problem, error) {
	out := make([]models.Problem, len(r.problems))
	copy(out, r.problems)
	return out, nil
}

func (r *StaticCatalogRepo) GetProblem(ctx context.Context, id string) (*models.Problem, error) {
	for i := range r.problems {
		if r.problems[i].ID == id {
			p := r.problems[i]
			return &p, nil
		}
	}
	return nil, fmt.Errorf("problem %s: %w", id, ErrNotFound)
}

func (r *StaticCatalogRepo) ListAstrologers(ctx context.Context) ([]models.Astrologer, error) {
	out := make([]models.Astrologer, len(r.astrologers))
	copy(out, r.astrologers)
	return out, nil
}

func (r *StaticCatalogRepo) GetAstrologer(ctx context.Context, id string) (*models.Astrologer, error) {
	for i := range r.astrologers {
		if r.astrologers[i].ID == id {
			a := r.astrologers[i]
			return &a, nil
		}
	}
	return nil, fmt.Errorf("astrologer %s: %w", id, ErrNotFound)
}
