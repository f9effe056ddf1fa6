package models

import "time"

// ReminderPayload is queued for a consultation reminder.
type ReminderPayload struct {
	BookingID      string    `json:"bookingId"`
	UserID         string    `json:"userId"`
	AstrologerName string    `json:"astrologerName"`
	Title          string    `json:"title"`
	Body           string    `json:"body"`
	StartsAt       time.Time `json:"startsAt"`
}
