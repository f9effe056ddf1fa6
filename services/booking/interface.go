package booking

import (
	"context"
	"time"

	bookingRepo "astromarket/database/repository/booking"
	"astromarket/metrics"
	"astromarket/models"
	"astromarket/services/catalog"

	"go.uber.org/zap"
)

// SelectionInput carries the booking form fields a client wants to change.
// Nil fields are left untouched.
type SelectionInput struct {
	Date     *string  `json:"date"`
	Time     *string  `json:"time"`
	Duration *float64 `json:"duration"`
}

// ReminderScheduler queues a reminder ahead of a confirmed consultation.
type ReminderScheduler interface {
	ScheduleConsultationReminder(ctx context.Context, booking models.Booking, startsAt time.Time) error
}

// BookingSessionService drives the Brahma flow: list -> booking -> success.
type BookingSessionService interface {
	StartSession(ctx context.Context, userID string) (*Session, error)
	GetSession(ctx context.Context, userID, sessionID string) (*Session, error)
	DateOptions() []models.DateOption
	SelectAstrologer(ctx context.Context, userID, sessionID, astrologerID string) (*Session, error)
	UpdateSelection(ctx context.Context, userID, sessionID string, input SelectionInput) (*Session, error)
	ProcessPayment(ctx context.Context, userID, sessionID string) (*Session, error)
	ConfirmBooking(ctx context.Context, userID, sessionID string) (*Session, error)
	Back(ctx context.Context, userID, sessionID string) (*Session, error)
	CancelSession(ctx context.Context, userID, sessionID string) error
	ListBookings(ctx context.Context, userID string) ([]models.Booking, error)
	Shutdown()
}

// DefaultBookingSessionService implements BookingSessionService.
type DefaultBookingSessionService struct {
	Catalog   catalog.CatalogService
	Store     SessionStore
	Payments  PaymentHandler
	Bookings  bookingRepo.BookingRepository
	Reminders ReminderScheduler
	Metrics   *metrics.BookingMetrics
	Logger    *zap.Logger
	Currency  string
	Location  *time.Location
	Now       func() time.Time

	// lifetime bounds every payment task started by this service.
	lifetime context.Context
	stop     context.CancelFunc
	tasks    *paymentTasks
	locks    *sessionLocks
}

// Deps groups the collaborators of a DefaultBookingSessionService.
type Deps struct {
	Catalog   catalog.CatalogService
	Store     SessionStore
	Payments  PaymentHandler
	Bookings  bookingRepo.BookingRepository
	Reminders ReminderScheduler
	Metrics   *metrics.BookingMetrics
	Logger    *zap.Logger
	Currency  string
}

func NewBookingSessionService(d Deps) *DefaultBookingSessionService {
	lifetime, stop := context.WithCancel(context.Background())
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	currency := d.Currency
	if currency == "" {
		currency = "INR"
	}
	return &DefaultBookingSessionService{
		Catalog:   d.Catalog,
		Store:     d.Store,
		Payments:  d.Payments,
		Bookings:  d.Bookings,
		Reminders: d.Reminders,
		Metrics:   d.Metrics,
		Logger:    logger,
		Currency:  currency,
		Location:  time.Local,
		Now:       time.Now,
		lifetime:  lifetime,
		stop:      stop,
		tasks:     newPaymentTasks(),
		locks:     newSessionLocks(),
	}
}
