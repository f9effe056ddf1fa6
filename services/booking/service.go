package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "astromarket/database/repository/booking"
	catalogRepo "astromarket/database/repository/catalog"
	"astromarket/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StartSession opens a flow on the astrologer list.
func (s *DefaultBookingSessionService) StartSession(ctx context.Context, userID string) (*Session, error) {
	now := s.Now()
	session := &Session{
		ID:        uuid.New().String(),
		UserID:    userID,
		Step:      ViewingStep{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	s.Metrics.ObserveSessionStarted()
	s.Logger.Debug("Booking session started", zap.String("session", session.ID), zap.String("userId", userID))
	return session, nil
}

func (s *DefaultBookingSessionService) GetSession(ctx context.Context, userID, sessionID string) (*Session, error) {
	return s.load(ctx, userID, sessionID)
}

func (s *DefaultBookingSessionService) DateOptions() []models.DateOption {
	return UpcomingDates(s.Now().In(s.Location), BookingWindowDays)
}

func (s *DefaultBookingSessionService) SelectAstrologer(ctx context.Context, userID, sessionID, astrologerID string) (*Session, error) {
	unlock := s.locks.lock(sessionID)
	defer unlock()

	session, err := s.load(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	astrologer, err := s.Catalog.GetAstrologer(ctx, astrologerID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownAstrologer, astrologerID)
		}
		return nil, err
	}

	next, err := SelectAstrologer(session.Step, *astrologer)
	if err != nil {
		return nil, err
	}
	return s.transition(ctx, session, next)
}

func (s *DefaultBookingSessionService) UpdateSelection(ctx context.Context, userID, sessionID string, input SelectionInput) (*Session, error) {
	unlock := s.locks.lock(sessionID)
	defer unlock()

	session, err := s.load(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	step, ok := session.Step.(BookingStep)
	if !ok {
		return nil, newTransitionError(session.Step.Name(), "change the booking form")
	}

	form := step.Form
	if input.Date != nil {
		if err := form.SetDate(*input.Date, s.DateOptions()); err != nil {
			return nil, err
		}
	}
	if input.Time != nil {
		if err := form.SetTime(*input.Time, step.Astrologer); err != nil {
			return nil, err
		}
	}
	if input.Duration != nil {
		if err := form.SetDuration(*input.Duration); err != nil {
			return nil, err
		}
	}

	step.Form = form
	session.Step = step
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// ProcessPayment starts the payment for the current selection. The session is
// returned in the processing phase; the outcome lands on the session later.
// A missing date or time is rejected without touching the session.
func (s *DefaultBookingSessionService) ProcessPayment(ctx context.Context, userID, sessionID string) (*Session, error) {
	unlock := s.locks.lock(sessionID)
	defer unlock()

	session, err := s.load(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	step, ok := session.Step.(BookingStep)
	if !ok {
		return nil, newTransitionError(session.Step.Name(), "pay")
	}

	attemptID := uuid.New().String()
	form := step.Form
	if err := form.BeginPayment(attemptID); err != nil {
		return nil, err
	}
	step.Form = form
	session.Step = step
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}

	req := models.PaymentRequest{
		UserID:      userID,
		SessionID:   sessionID,
		Amount:      form.TotalAmount(step.Astrologer),
		Currency:    s.Currency,
		Idempotency: attemptID,
		Description: fmt.Sprintf("Consultation with %s on %s at %s", step.Astrologer.Name, form.Date, form.Time),
		Metadata: map[string]string{
			"sessionId":    sessionID,
			"astrologerId": step.Astrologer.ID,
		},
	}
	s.tasks.start(s.lifetime, sessionID, func(taskCtx context.Context) {
		started := time.Now()
		inv, err := s.Payments.ProcessPayment(taskCtx, req)
		s.finishPayment(userID, sessionID, attemptID, inv, err, time.Since(started))
	})

	s.Logger.Info("Payment started",
		zap.String("session", sessionID),
		zap.String("attempt", attemptID),
		zap.Int("amount", req.Amount),
	)
	return session, nil
}

// finishPayment applies a payment outcome if the session still waits for that attempt.
func (s *DefaultBookingSessionService) finishPayment(userID, sessionID, attemptID string, inv *models.Invoice, payErr error, took time.Duration) {
	unlock := s.locks.lock(sessionID)
	defer unlock()

	outcome := "completed"
	switch {
	case errors.Is(payErr, context.Canceled):
		outcome = "canceled"
	case payErr != nil:
		outcome = "failed"
	}
	s.Metrics.ObservePayment(outcome, took.Seconds())

	// The task context may already be canceled; the write-back gets its own deadline.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	session, err := s.load(ctx, userID, sessionID)
	if err != nil {
		s.Logger.Debug("Dropping payment result for closed session",
			zap.String("session", sessionID), zap.String("outcome", outcome))
		return
	}
	step, ok := session.Step.(BookingStep)
	if !ok {
		return
	}

	form := step.Form
	var applied bool
	if payErr != nil {
		applied = form.FailPayment(attemptID, payErr.Error())
	} else {
		applied = form.CompletePayment(attemptID, inv)
	}
	if !applied {
		return
	}

	step.Form = form
	session.Step = step
	if err := s.save(ctx, session); err != nil {
		s.Logger.Error("Failed to store payment outcome", zap.String("session", sessionID), zap.Error(err))
		return
	}
	if payErr != nil && outcome != "canceled" {
		s.Logger.Warn("Payment failed", zap.String("session", sessionID), zap.Error(payErr))
		return
	}
	s.Logger.Info("Payment finished", zap.String("session", sessionID), zap.String("outcome", outcome))
}

// ConfirmBooking records the consultation and moves the flow to success.
// Confirming an already confirmed session returns it unchanged.
func (s *DefaultBookingSessionService) ConfirmBooking(ctx context.Context, userID, sessionID string) (*Session, error) {
	unlock := s.locks.lock(sessionID)
	defer unlock()

	session, err := s.load(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if _, done := session.Step.(ConfirmedStep); done {
		return session, nil
	}
	step, ok := session.Step.(BookingStep)
	if !ok {
		return nil, newTransitionError(session.Step.Name(), "confirm")
	}
	if !step.Form.PaymentCompleted() {
		return nil, ErrPaymentIncomplete
	}

	record, err := s.bookingFor(ctx, session, step)
	if err != nil {
		return nil, err
	}
	next, err := Complete(session.Step, record)
	if err != nil {
		return nil, err
	}

	session, err = s.transition(ctx, session, next)
	if err != nil {
		return nil, err
	}
	s.Metrics.ObserveBookingConfirmed()
	s.scheduleReminder(ctx, record)
	s.Logger.Info("Booking confirmed",
		zap.String("booking", record.ID),
		zap.String("astrologer", record.AstrologerID),
		zap.String("date", record.Date),
		zap.String("time", record.Time),
	)
	return session, nil
}

// bookingFor returns the booking already stored for the session, creating it
// on first use. A confirm retried after a failed session save reuses the
// earlier record.
func (s *DefaultBookingSessionService) bookingFor(ctx context.Context, session *Session, step BookingStep) (models.Booking, error) {
	existing, err := s.Bookings.GetBySession(ctx, session.ID)
	if err == nil {
		return *existing, nil
	}
	if !errors.Is(err, bookingRepo.ErrBookingNotFound) {
		return models.Booking{}, fmt.Errorf("failed to look up booking: %w", err)
	}
	record := s.newBooking(session, step)
	if err := s.Bookings.Create(ctx, record); err != nil {
		return models.Booking{}, fmt.Errorf("failed to save booking: %w", err)
	}
	return record, nil
}

func (s *DefaultBookingSessionService) newBooking(session *Session, step BookingStep) models.Booking {
	b := models.Booking{
		ID:             uuid.New().String(),
		SessionID:      session.ID,
		UserID:         session.UserID,
		AstrologerID:   step.Astrologer.ID,
		AstrologerName: step.Astrologer.Name,
		Date:           step.Form.Date,
		Time:           step.Form.Time,
		Duration:       step.Form.Duration,
		TotalAmount:    step.Form.TotalAmount(step.Astrologer),
		Currency:       s.Currency,
		Status:         models.BookingStatusConfirmed,
		CreatedAt:      s.Now(),
	}
	if inv := step.Form.Invoice; inv != nil {
		b.InvoiceID = inv.InvoiceID
		b.PaymentID = inv.PaymentID
	}
	return b
}

func (s *DefaultBookingSessionService) scheduleReminder(ctx context.Context, b models.Booking) {
	if s.Reminders == nil {
		return
	}
	startsAt, err := ConsultationStart(b, s.Location)
	if err != nil {
		s.Logger.Warn("Skipping reminder", zap.String("booking", b.ID), zap.Error(err))
		return
	}
	if err := s.Reminders.ScheduleConsultationReminder(ctx, b, startsAt); err != nil {
		s.Logger.Warn("Failed to schedule reminder", zap.String("booking", b.ID), zap.Error(err))
	}
}

// Back returns to the astrologer list, abandoning any payment in flight.
func (s *DefaultBookingSessionService) Back(ctx context.Context, userID, sessionID string) (*Session, error) {
	unlock := s.locks.lock(sessionID)
	defer unlock()

	session, err := s.load(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	next, err := Back(session.Step)
	if err != nil {
		return nil, err
	}
	s.tasks.cancel(sessionID)
	return s.transition(ctx, session, next)
}

// CancelSession ends the flow and its payment task.
func (s *DefaultBookingSessionService) CancelSession(ctx context.Context, userID, sessionID string) error {
	unlock := s.locks.lock(sessionID)
	defer unlock()

	if _, err := s.load(ctx, userID, sessionID); err != nil {
		return err
	}
	s.tasks.cancel(sessionID)
	return s.Store.Delete(ctx, sessionID)
}

func (s *DefaultBookingSessionService) ListBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	return s.Bookings.ListByUser(ctx, userID)
}

// Shutdown cancels all payment tasks and waits for them to return.
func (s *DefaultBookingSessionService) Shutdown() {
	s.stop()
	s.tasks.shutdown()
}

// load fetches a session owned by userID. Sessions of other users look missing.
func (s *DefaultBookingSessionService) load(ctx context.Context, userID, sessionID string) (*Session, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (s *DefaultBookingSessionService) save(ctx context.Context, session *Session) error {
	session.UpdatedAt = s.Now()
	return s.Store.Save(ctx, session)
}

func (s *DefaultBookingSessionService) transition(ctx context.Context, session *Session, next Step) (*Session, error) {
	from := session.Step.Name()
	session.Step = next
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	s.Metrics.ObserveTransition(string(from), string(next.Name()))
	return session, nil
}
