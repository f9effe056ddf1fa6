package booking

import (
	"testing"

	"astromarket/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAstrologer = models.Astrologer{
	ID:           "ast-test",
	Name:         "Acharya Test",
	PricePerHour: 999,
	Availability: []string{"10:00 AM", "04:00 PM"},
}

var testDates = []models.DateOption{{Value: "2026-02-01"}, {Value: "2026-02-02"}}

func readyForm(t *testing.T) Form {
	t.Helper()
	f := NewForm()
	require.NoError(t, f.SetDate("2026-02-01", testDates))
	require.NoError(t, f.SetTime("10:00 AM", testAstrologer))
	return f
}

func TestFormValidation(t *testing.T) {
	f := NewForm()
	assert.Equal(t, DefaultDuration, f.Duration)
	assert.Equal(t, PhaseSelecting, f.Phase)

	assert.ErrorIs(t, f.SetDate("2030-01-01", testDates), ErrInvalidDate)
	assert.ErrorIs(t, f.SetTime("09:00 AM", testAstrologer), ErrInvalidTime)
	assert.ErrorIs(t, f.SetDuration(3), ErrInvalidDuration)
	assert.ErrorIs(t, f.ReadyForPayment(), ErrDateTimeRequired)

	require.NoError(t, f.SetDuration(1.5))
	assert.Equal(t, 1499, f.TotalAmount(testAstrologer))
}

func TestBeginPaymentRequiresDateAndTime(t *testing.T) {
	f := NewForm()
	require.NoError(t, f.SetDate("2026-02-01", testDates))

	err := f.BeginPayment("a1")
	assert.ErrorIs(t, err, ErrDateTimeRequired)
	assert.Equal(t, PhaseSelecting, f.Phase)
	assert.Empty(t, f.AttemptID)
}

func TestPaymentPhases(t *testing.T) {
	f := readyForm(t)
	require.NoError(t, f.BeginPayment("a1"))
	assert.Equal(t, PhaseProcessing, f.Phase)

	assert.ErrorIs(t, f.SetTime("04:00 PM", testAstrologer), ErrPaymentInProgress)
	assert.ErrorIs(t, f.BeginPayment("a2"), ErrPaymentInProgress)

	assert.False(t, f.CompletePayment("stale", &models.Invoice{}))
	assert.True(t, f.CompletePayment("a1", &models.Invoice{InvoiceID: "inv-1"}))
	assert.True(t, f.PaymentCompleted())
	assert.Equal(t, "inv-1", f.Invoice.InvoiceID)

	assert.ErrorIs(t, f.SetDuration(2), ErrPaymentCompleted)
	assert.False(t, f.FailPayment("a1", "late failure"))
}

func TestFailPaymentAllowsRetry(t *testing.T) {
	f := readyForm(t)
	require.NoError(t, f.BeginPayment("a1"))
	assert.True(t, f.FailPayment("a1", "card declined"))
	assert.Equal(t, PhaseSelecting, f.Phase)
	assert.Equal(t, "card declined", f.LastError)

	require.NoError(t, f.BeginPayment("a2"))
	assert.Empty(t, f.LastError)
}

func TestFlowTransitions(t *testing.T) {
	var s Step = ViewingStep{}

	_, err := Back(s)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = Complete(s, models.Booking{})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	s, err = SelectAstrologer(s, testAstrologer)
	require.NoError(t, err)
	require.Equal(t, StepBooking, s.Name())

	_, err = SelectAstrologer(s, testAstrologer)
	var te *TransitionError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, StepBooking, te.From)

	_, err = Complete(s, models.Booking{})
	assert.ErrorIs(t, err, ErrDateTimeRequired)

	bs := s.(BookingStep)
	bs.Form = readyForm(t)
	_, err = Complete(bs, models.Booking{})
	assert.ErrorIs(t, err, ErrPaymentIncomplete)

	require.NoError(t, bs.Form.BeginPayment("a1"))
	bs.Form.CompletePayment("a1", &models.Invoice{})
	done, err := Complete(bs, models.Booking{ID: "b1"})
	require.NoError(t, err)
	assert.Equal(t, StepSuccess, done.Name())
	assert.Equal(t, "b1", done.(ConfirmedStep).Booking.ID)

	_, err = Back(done)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	back, err := Back(bs)
	require.NoError(t, err)
	assert.Equal(t, StepList, back.Name())
}
