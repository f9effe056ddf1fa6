package booking

import (
	"encoding/json"
	"fmt"
	"time"

	"astromarket/models"
)

// Session is one user's pass through the Brahma flow.
type Session struct {
	ID        string
	UserID    string
	Step      Step
	CreatedAt time.Time
	UpdatedAt time.Time
}

// sessionView is the wire and cache shape of a Session. Computed fields are
// written for clients and ignored when decoding.
type sessionView struct {
	SessionID  string             `json:"sessionId"`
	UserID     string             `json:"userId"`
	Step       StepName           `json:"step"`
	Astrologer *models.Astrologer `json:"astrologer,omitempty"`
	Form       *Form              `json:"form,omitempty"`
	Booking    *models.Booking    `json:"booking,omitempty"`
	CreatedAt  time.Time          `json:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt"`

	TotalAmount *int     `json:"totalAmount,omitempty"`
	CanConfirm  bool     `json:"canConfirm"`
	NextPaths   []string `json:"nextPaths,omitempty"`
}

func (s Session) MarshalJSON() ([]byte, error) {
	v := sessionView{
		SessionID: s.ID,
		UserID:    s.UserID,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
	switch st := s.Step.(type) {
	case ViewingStep:
		v.Step = StepList
	case BookingStep:
		a, f := st.Astrologer, st.Form
		total := f.TotalAmount(a)
		v.Step = StepBooking
		v.Astrologer = &a
		v.Form = &f
		v.TotalAmount = &total
		v.CanConfirm = f.PaymentCompleted()
	case ConfirmedStep:
		a, b := st.Astrologer, st.Booking
		v.Step = StepSuccess
		v.Astrologer = &a
		v.Booking = &b
		v.NextPaths = NextPaths
	default:
		return nil, fmt.Errorf("unknown booking step %T", s.Step)
	}
	return json.Marshal(v)
}

func (s *Session) UnmarshalJSON(data []byte) error {
	var v sessionView
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	s.ID = v.SessionID
	s.UserID = v.UserID
	s.CreatedAt = v.CreatedAt
	s.UpdatedAt = v.UpdatedAt

	switch v.Step {
	case StepList:
		s.Step = ViewingStep{}
	case StepBooking:
		if v.Astrologer == nil || v.Form == nil {
			return fmt.Errorf("booking step without astrologer or form")
		}
		s.Step = BookingStep{Astrologer: *v.Astrologer, Form: *v.Form}
	case StepSuccess:
		if v.Astrologer == nil || v.Booking == nil {
			return fmt.Errorf("success step without astrologer or booking")
		}
		s.Step = ConfirmedStep{Astrologer: *v.Astrologer, Booking: *v.Booking}
	default:
		return fmt.Errorf("unknown booking step %q", v.Step)
	}
	return nil
}
