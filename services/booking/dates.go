package booking

import (
	"fmt"
	"time"

	"astromarket/models"
)

const (
	DateLayout = "2006-01-02"
	dateLabel  = "Mon, Jan 2"
	slotLayout = "03:04 PM"

	// BookingWindowDays is how many calendar days ahead a consultation can be booked.
	BookingWindowDays = 7
)

// UpcomingDates lists the days calendar days following now's date.
func UpcomingDates(now time.Time, days int) []models.DateOption {
	y, m, d := now.Date()
	out := make([]models.DateOption, 0, days)
	for i := 1; i <= days; i++ {
		day := time.Date(y, m, d+i, 0, 0, 0, 0, now.Location())
		out = append(out, models.DateOption{
			Value: day.Format(DateLayout),
			Label: day.Format(dateLabel),
		})
	}
	return out
}

func containsDate(options []models.DateOption, value string) bool {
	for _, o := range options {
		if o.Value == value {
			return true
		}
	}
	return false
}

// ConsultationStart combines a booking's date and slot into a point in time.
func ConsultationStart(b models.Booking, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout+" "+slotLayout, b.Date+" "+b.Time, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse consultation start %q %q: %w", b.Date, b.Time, err)
	}
	return t, nil
}
