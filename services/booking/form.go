package booking

import (
	"astromarket/models"
)

type PaymentPhase string

const (
	PhaseSelecting  PaymentPhase = "selecting"
	PhaseProcessing PaymentPhase = "processing"
	PhaseCompleted  PaymentPhase = "completed"
)

// Form is the date/time/duration picker of a booking step together with
// its payment phase.
type Form struct {
	Date      string          `json:"date,omitempty"`
	Time      string          `json:"time,omitempty"`
	Duration  float64         `json:"duration"`
	Phase     PaymentPhase    `json:"phase"`
	AttemptID string          `json:"attemptId,omitempty"`
	Invoice   *models.Invoice `json:"invoice,omitempty"`
	LastError string          `json:"lastError,omitempty"`
}

func NewForm() Form {
	return Form{Duration: DefaultDuration, Phase: PhaseSelecting}
}

func (f Form) PaymentCompleted() bool {
	return f.Phase == PhaseCompleted
}

// editable rejects changes once a payment has started.
func (f Form) editable() error {
	switch f.Phase {
	case PhaseProcessing:
		return ErrPaymentInProgress
	case PhaseCompleted:
		return ErrPaymentCompleted
	}
	return nil
}

func (f *Form) SetDate(date string, offered []models.DateOption) error {
	if err := f.editable(); err != nil {
		return err
	}
	if !containsDate(offered, date) {
		return ErrInvalidDate
	}
	f.Date = date
	return nil
}

func (f *Form) SetTime(slot string, a models.Astrologer) error {
	if err := f.editable(); err != nil {
		return err
	}
	if !a.OffersSlot(slot) {
		return ErrInvalidTime
	}
	f.Time = slot
	return nil
}

func (f *Form) SetDuration(hours float64) error {
	if err := f.editable(); err != nil {
		return err
	}
	if !ValidDuration(hours) {
		return ErrInvalidDuration
	}
	f.Duration = hours
	return nil
}

func (f Form) TotalAmount(a models.Astrologer) int {
	return TotalAmount(a.PricePerHour, f.Duration)
}

// ReadyForPayment requires both a date and a time.
func (f Form) ReadyForPayment() error {
	if f.Date == "" || f.Time == "" {
		return ErrDateTimeRequired
	}
	return nil
}

// BeginPayment moves selecting -> processing under attemptID.
func (f *Form) BeginPayment(attemptID string) error {
	if err := f.ReadyForPayment(); err != nil {
		return err
	}
	if err := f.editable(); err != nil {
		return err
	}
	f.Phase = PhaseProcessing
	f.AttemptID = attemptID
	f.LastError = ""
	return nil
}

// CompletePayment applies only to the attempt still in flight.
func (f *Form) CompletePayment(attemptID string, inv *models.Invoice) bool {
	if f.Phase != PhaseProcessing || f.AttemptID != attemptID {
		return false
	}
	f.Phase = PhaseCompleted
	f.Invoice = inv
	return true
}

// FailPayment returns the attempt to selecting so the user can retry.
func (f *Form) FailPayment(attemptID, reason string) bool {
	if f.Phase != PhaseProcessing || f.AttemptID != attemptID {
		return false
	}
	f.Phase = PhaseSelecting
	f.AttemptID = ""
	f.LastError = reason
	return true
}
