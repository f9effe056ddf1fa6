package customer

import (
	"context"
	"errors"
	"fmt"

	customerRepo "astromarket/database/repository/customer"
	"astromarket/models"

	"go.uber.org/zap"
)

func (s *DefaultCustomerAdminService) Roster(ctx context.Context) ([]models.CustomerData, error) {
	roster, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load customers: %w", err)
	}
	return roster, nil
}

func (s *DefaultCustomerAdminService) Search(ctx context.Context, filter models.CustomerFilter) (*SearchResult, error) {
	if !ValidStatus(filter.Status) {
		return nil, ErrInvalidStatus
	}
	roster, err := s.Roster(ctx)
	if err != nil {
		return nil, err
	}
	s.Metrics.ObserveCustomerSearch()

	result := &SearchResult{
		Customers: FilterCustomers(roster, filter),
		Stats:     ComputeStats(roster),
	}
	s.logger().Debug("Customer search",
		zap.String("term", filter.Term),
		zap.String("status", filter.Status),
		zap.Int("matches", len(result.Customers)),
	)
	return result, nil
}

func (s *DefaultCustomerAdminService) Stats(ctx context.Context) (models.CustomerStats, error) {
	roster, err := s.Roster(ctx)
	if err != nil {
		return models.CustomerStats{}, err
	}
	return ComputeStats(roster), nil
}

func (s *DefaultCustomerAdminService) GetCustomer(ctx context.Context, id string) (*models.CustomerDetail, error) {
	c, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, customerRepo.ErrCustomerNotFound) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load customer %s: %w", id, err)
	}
	return &models.CustomerDetail{Customer: *c, Services: c.ServiceCounts()}, nil
}

// Export is shown to admins but not implemented.
func (s *DefaultCustomerAdminService) Export(ctx context.Context, filter models.CustomerFilter) ([]byte, error) {
	if !ValidStatus(filter.Status) {
		return nil, ErrInvalidStatus
	}
	s.logger().Info("Customer export requested", zap.String("term", filter.Term), zap.String("status", filter.Status))
	return nil, ErrExportUnavailable
}

func (s *DefaultCustomerAdminService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
