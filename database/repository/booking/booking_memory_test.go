package bookingRepo

import (
	"context"
	"testing"

	"astromarket/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBookingRepo(t *testing.T) {
	repo := NewMemoryBookingRepo()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, models.Booking{ID: "b1", SessionID: "s1", UserID: "u1"}))
	require.NoError(t, repo.Create(ctx, models.Booking{ID: "b2", SessionID: "s2", UserID: "u2"}))
	assert.ErrorIs(t, repo.Create(ctx, models.Booking{ID: "b1", SessionID: "s9", UserID: "u1"}), ErrDuplicateBooking)

	got, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "b1", got[0].ID)

	none, err := repo.ListByUser(ctx, "u3")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMemoryBookingRepoOnePerSession(t *testing.T) {
	repo := NewMemoryBookingRepo()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, models.Booking{ID: "b1", SessionID: "s1", UserID: "u1"}))
	err := repo.Create(ctx, models.Booking{ID: "b2", SessionID: "s1", UserID: "u1"})
	assert.ErrorIs(t, err, ErrDuplicateBooking)

	found, err := repo.GetBySession(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "b1", found.ID)

	_, err = repo.GetBySession(ctx, "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
