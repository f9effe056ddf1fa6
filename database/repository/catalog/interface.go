package catalogRepo

import (
	"context"
	"errors"

	"astromarket/models"
)

var ErrNotFound = errors.New("catalog entry not found")

// CatalogRepository serves the immutable problem and astrologer catalogs.
type CatalogRepository interface {
	// ListProblems returns every predefined problem in catalog order.
	ListProblems(ctx context.Context) ([]models.Problem, error)
	// GetProblem returns a single problem or ErrNotFound.
	GetProblem(ctx context.Context, id string) (*models.Problem, error)
	// ListAstrologers returns every astrologer in catalog order.
	ListAstrologers(ctx context.Context) ([]models.Astrologer, error)
	// GetAstrologer returns a single astrologer or ErrNotFound.
	GetAstrologer(ctx context.Context, id string) (*models.Astrologer, error)
}
