package customerRepo

import (
	"context"
	"testing"
	"time"

	"astromarket/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCustomerRepo(t *testing.T) {
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	repo := NewMemoryCustomerRepo(MockRoster(now))
	ctx := context.Background()

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 8)

	c, err := repo.GetByID(ctx, "cust-001")
	require.NoError(t, err)
	assert.Equal(t, "Priya Patel", c.Name)
	assert.Equal(t, models.CustomerStatusActive, c.Status)

	_, err = repo.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestMemoryCustomerRepoIsolatesCaller(t *testing.T) {
	roster := MockRoster(time.Now())
	repo := NewMemoryCustomerRepo(roster)
	roster[0].Name = "changed"

	all, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Priya Patel", all[0].Name)

	all[1].Name = "changed again"
	again, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Rahul Sharma", again[1].Name)
}

func TestEmptyRoster(t *testing.T) {
	repo := NewMemoryCustomerRepo(nil)
	all, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}
