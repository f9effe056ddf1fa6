package sarthi

import "errors"

var (
	ErrNotCustomMode     = errors.New("selector is not in custom mode")
	ErrNotPredefinedMode = errors.New("selector is not in predefined mode")
	// ErrCannotSubmit is returned when the custom text has no words or exceeds MaxCustomWords.
	ErrCannotSubmit   = errors.New("custom problem cannot be submitted")
	ErrUnknownProblem = errors.New("unknown problem")
)
