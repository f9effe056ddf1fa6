package sarthi

import (
	"strings"

	"astromarket/models"
)

type Mode string

const (
	ModePredefined Mode = "predefined"
	ModeCustom     Mode = "custom"

	MaxCustomWords     = 50
	CustomProblemTitle = "Custom Problem"
)

// Selector is the predefined/custom problem picker. The zero value is not
// usable; call NewSelector. A Selector is not safe for concurrent use.
type Selector struct {
	mode Mode
	text string
}

func NewSelector() *Selector {
	return &Selector{mode: ModePredefined}
}

func (s *Selector) Mode() Mode { return s.mode }

func (s *Selector) Text() string { return s.text }

// ToggleCustom switches to custom mode.
func (s *Selector) ToggleCustom() {
	s.mode = ModeCustom
}

// Back returns to predefined mode and drops any typed text.
func (s *Selector) Back() {
	s.mode = ModePredefined
	s.text = ""
}

// Reset discards all state.
func (s *Selector) Reset() {
	*s = Selector{mode: ModePredefined}
}

func (s *Selector) SetText(text string) error {
	if s.mode != ModeCustom {
		return ErrNotCustomMode
	}
	s.text = text
	return nil
}

// CountWords splits on whitespace and ignores empty tokens.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// CanSubmitText reports whether text holds between 1 and MaxCustomWords words.
func CanSubmitText(text string) bool {
	n := CountWords(text)
	return n > 0 && n <= MaxCustomWords
}

func (s *Selector) WordCount() int {
	return CountWords(s.text)
}

func (s *Selector) CanSubmit() bool {
	return s.mode == ModeCustom && CanSubmitText(s.text)
}

// Submit emits the custom problem.
func (s *Selector) Submit() (models.ProblemSelection, error) {
	if s.mode != ModeCustom {
		return models.ProblemSelection{}, ErrNotCustomMode
	}
	if !CanSubmitText(s.text) {
		return models.ProblemSelection{}, ErrCannotSubmit
	}
	return models.ProblemSelection{
		Title:       CustomProblemTitle,
		Description: strings.TrimSpace(s.text),
		Custom:      true,
	}, nil
}

// Select emits a listed problem. Only the title is carried, no description.
func (s *Selector) Select(p models.Problem) (models.ProblemSelection, error) {
	if s.mode != ModePredefined {
		return models.ProblemSelection{}, ErrNotPredefinedMode
	}
	return models.ProblemSelection{ProblemID: p.ID, Title: p.Title}, nil
}
