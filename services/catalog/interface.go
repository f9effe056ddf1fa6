package catalog

import (
	"context"

	catalogRepo "astromarket/database/repository/catalog"
	"astromarket/models"
)

// CatalogService exposes the problem and astrologer catalogs.
type CatalogService interface {
	GroupedProblems(ctx context.Context) ([]models.ProblemGroup, error)
	GetProblem(ctx context.Context, id string) (*models.Problem, error)
	ListAstrologers(ctx context.Context) ([]models.Astrologer, error)
	GetAstrologer(ctx context.Context, id string) (*models.Astrologer, error)
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Repo catalogRepo.CatalogRepository
}
