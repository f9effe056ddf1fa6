package booking

import (
	"errors"
	"fmt"
)

var (
	ErrSessionNotFound    = errors.New("booking session not found or expired")
	ErrUnknownAstrologer  = errors.New("unknown astrologer")
	ErrDateTimeRequired   = errors.New("please select date and time")
	ErrInvalidDate        = errors.New("date is not one of the offered dates")
	ErrInvalidTime        = errors.New("time is not in the astrologer's availability")
	ErrInvalidDuration    = errors.New("duration must be 1, 1.5 or 2 hours")
	ErrPaymentInProgress  = errors.New("payment is being processed")
	ErrPaymentCompleted   = errors.New("payment already completed")
	ErrPaymentIncomplete  = errors.New("payment has not completed")
	ErrInvalidPaymentData = errors.New("invalid payment request")
)

// TransitionError reports a step change the booking flow does not allow.
type TransitionError struct {
	From   StepName
	Action string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s from step %q", e.Action, e.From)
}

// ErrInvalidTransition matches any *TransitionError via errors.Is.
var ErrInvalidTransition = errors.New("invalid booking step transition")

func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

func newTransitionError(from StepName, action string) error {
	return &TransitionError{From: from, Action: action}
}
