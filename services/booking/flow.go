package booking

import "astromarket/models"

type StepName string

const (
	StepList    StepName = "list"
	StepBooking StepName = "booking"
	StepSuccess StepName = "success"
)

// NextPaths are the navigation targets offered once a booking is confirmed.
var NextPaths = []string{"/dashboard", "/my-dashboard"}

// Step is the Brahma flow state. Its implementations are ViewingStep,
// BookingStep and ConfirmedStep; each carries only the data valid for it.
type Step interface {
	Name() StepName
	isStep()
}

// ViewingStep is the astrologer list.
type ViewingStep struct{}

// BookingStep holds the chosen astrologer and the booking form.
type BookingStep struct {
	Astrologer models.Astrologer
	Form       Form
}

// ConfirmedStep is terminal.
type ConfirmedStep struct {
	Astrologer models.Astrologer
	Booking    models.Booking
}

func (ViewingStep) Name() StepName   { return StepList }
func (BookingStep) Name() StepName   { return StepBooking }
func (ConfirmedStep) Name() StepName { return StepSuccess }

func (ViewingStep) isStep()   {}
func (BookingStep) isStep()   {}
func (ConfirmedStep) isStep() {}

// SelectAstrologer: list -> booking.
func SelectAstrologer(s Step, a models.Astrologer) (Step, error) {
	if _, ok := s.(ViewingStep); !ok {
		return s, newTransitionError(s.Name(), "select an astrologer")
	}
	return BookingStep{Astrologer: a, Form: NewForm()}, nil
}

// Back: booking -> list. The form is discarded.
func Back(s Step) (Step, error) {
	if _, ok := s.(BookingStep); !ok {
		return s, newTransitionError(s.Name(), "go back")
	}
	return ViewingStep{}, nil
}

// Complete: booking -> success. Requires a completed payment and a chosen date and time.
func Complete(s Step, b models.Booking) (Step, error) {
	bs, ok := s.(BookingStep)
	if !ok {
		return s, newTransitionError(s.Name(), "complete the booking")
	}
	if err := bs.Form.ReadyForPayment(); err != nil {
		return s, err
	}
	if !bs.Form.PaymentCompleted() {
		return s, ErrPaymentIncomplete
	}
	return ConfirmedStep{Astrologer: bs.Astrologer, Booking: b}, nil
}
