package customer

import (
	"context"

	customerRepo "astromarket/database/repository/customer"
	"astromarket/metrics"
	"astromarket/models"

	"go.uber.org/zap"
)

// SearchResult is a filtered roster page plus stats over the whole roster.
type SearchResult struct {
	Customers []models.CustomerData `json:"customers"`
	Stats     models.CustomerStats  `json:"stats"`
}

type CustomerAdminService interface {
	Roster(ctx context.Context) ([]models.CustomerData, error)
	Search(ctx context.Context, filter models.CustomerFilter) (*SearchResult, error)
	Stats(ctx context.Context) (models.CustomerStats, error)
	GetCustomer(ctx context.Context, id string) (*models.CustomerDetail, error)
	Export(ctx context.Context, filter models.CustomerFilter) ([]byte, error)
}

// DefaultCustomerAdminService is the production implementation.
type DefaultCustomerAdminService struct {
	Repo    customerRepo.CustomerRepository
	Metrics *metrics.BookingMetrics
	Logger  *zap.Logger
}
