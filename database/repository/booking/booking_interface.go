package bookingRepo

import (
	"context"
	"errors"

	"astromarket/models"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	// ErrDuplicateBooking is returned when a session or booking ID is already stored.
	ErrDuplicateBooking = errors.New("booking already exists")
)

// BookingRepository stores confirmed Brahma consultations. At most one
// booking exists per session.
type BookingRepository interface {
	Create(ctx context.Context, booking models.Booking) error
	GetBySession(ctx context.Context, sessionID string) (*models.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
}
