package customer

import (
	"context"
	"testing"
	"time"

	customerRepo "astromarket/database/repository/customer"
	"astromarket/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(roster []models.CustomerData) *DefaultCustomerAdminService {
	return &DefaultCustomerAdminService{Repo: customerRepo.NewMemoryCustomerRepo(roster)}
}

func TestSearchStatsCoverFullRoster(t *testing.T) {
	svc := newTestService(customerRepo.MockRoster(time.Now()))

	res, err := svc.Search(context.Background(), models.CustomerFilter{Term: "priya"})
	require.NoError(t, err)
	require.Len(t, res.Customers, 1)
	assert.Equal(t, 8, res.Stats.TotalCustomers)
	assert.Equal(t, 58966, res.Stats.TotalRevenue)

	_, err = svc.Search(context.Background(), models.CustomerFilter{Status: "gone"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestGetCustomer(t *testing.T) {
	svc := newTestService(customerRepo.MockRoster(time.Now()))

	detail, err := svc.GetCustomer(context.Background(), "cust-002")
	require.NoError(t, err)
	assert.Equal(t, "Rahul Sharma", detail.Customer.Name)
	assert.Equal(t, detail.Customer.ServiceCounts(), detail.Services)

	_, err = svc.GetCustomer(context.Background(), "cust-999")
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestExportUnavailable(t *testing.T) {
	svc := newTestService(nil)
	_, err := svc.Export(context.Background(), models.CustomerFilter{})
	assert.ErrorIs(t, err, ErrExportUnavailable)

	_, err = svc.Export(context.Background(), models.CustomerFilter{Status: "gone"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestStatsEmptyRoster(t *testing.T) {
	stats, err := newTestService(nil).Stats(context.Background())
	require.NoError(t, err)
	assert.Nil(t, stats.AverageSpend)
}
