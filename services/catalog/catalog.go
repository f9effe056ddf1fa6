package catalog

import (
	"context"
	"fmt"

	"astromarket/models"
)

// GroupProblems groups problems by category. Groups keep the order in
// which their category first appears; problems keep catalog order.
func GroupProblems(problems []models.Problem) []models.ProblemGroup {
	groups := []models.ProblemGroup{}
	index := map[string]int{}
	for _, p := range problems {
		i, ok := index[p.Category]
		if !ok {
			i = len(groups)
			index[p.Category] = i
			groups = append(groups, models.ProblemGroup{Category: p.Category})
		}
		groups[i].Problems = append(groups[i].Problems, p)
	}
	return groups
}

func (s *DefaultCatalogService) GroupedProblems(ctx context.Context) ([]models.ProblemGroup, error) {
	problems, err := s.Repo.ListProblems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list problems: %w", err)
	}
	return GroupProblems(problems), nil
}

func (s *DefaultCatalogService) GetProblem(ctx context.Context, id string) (*models.Problem, error) {
	return s.Repo.GetProblem(ctx, id)
}

func (s *DefaultCatalogService) ListAstrologers(ctx context.Context) ([]models.Astrologer, error) {
	astrologers, err := s.Repo.ListAstrologers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list astrologers: %w", err)
	}
	return astrologers, nil
}

func (s *DefaultCatalogService) GetAstrologer(ctx context.Context, id string) (*models.Astrologer, error) {
	return s.Repo.GetAstrologer(ctx, id)
}
