package bookingRepo

import (
	"context"
	"fmt"
	"sync"

	"astromarket/models"
)

// MemoryBookingRepo keeps bookings in process memory.
type MemoryBookingRepo struct {
	mu       sync.RWMutex
	bookings []models.Booking
}

func NewMemoryBookingRepo() *MemoryBookingRepo {
	return &MemoryBookingRepo{}
}

func (r *MemoryBookingRepo) Create(ctx context.Context, booking models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.ID == booking.ID {
			return fmt.Errorf("%w: id %s", ErrDuplicateBooking, booking.ID)
		}
		if b.SessionID == booking.SessionID {
			return fmt.Errorf("%w: session %s", ErrDuplicateBooking, booking.SessionID)
		}
	}
	r.bookings = append(r.bookings, booking)
	return nil
}

func (r *MemoryBookingRepo) GetBySession(ctx context.Context, sessionID string) (*models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.bookings {
		if b.SessionID == sessionID {
			found := b
			return &found, nil
		}
	}
	return nil, ErrBookingNotFound
}

func (r *MemoryBookingRepo) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []models.Booking{}
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}
