package sarthi

import (
	"context"

	consultationRepo "astromarket/database/repository/consultation"
	"astromarket/metrics"
	"astromarket/models"
	"astromarket/services/catalog"

	"go.uber.org/zap"
)

// CustomCheck describes the word-count indicator for custom text.
type CustomCheck struct {
	WordCount int  `json:"wordCount"`
	Limit     int  `json:"limit"`
	CanSubmit bool `json:"canSubmit"`
}

// SarthiService drives the problem-guidance flow.
type SarthiService interface {
	ListProblems(ctx context.Context) ([]models.ProblemGroup, error)
	CheckCustom(text string) CustomCheck
	SelectProblem(ctx context.Context, userID, problemID string) (*models.ConsultationRequest, error)
	SubmitCustom(ctx context.Context, userID, text string) (*models.ConsultationRequest, error)
	ListRequests(ctx context.Context, userID string) ([]models.ConsultationRequest, error)
}

// DefaultSarthiService is the production implementation.
type DefaultSarthiService struct {
	Catalog  catalog.CatalogService
	Requests consultationRepo.ConsultationRequestRepository
	Metrics  *metrics.BookingMetrics
	Logger   *zap.Logger
}
