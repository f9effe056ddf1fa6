package models

import "time"

const (
	BookingStatusConfirmed = "confirmed"
)

// Booking represents a confirmed Brahma consultation.
type Booking struct {
	ID             string    `bson:"id" json:"id"`
	SessionID      string    `bson:"sessionId" json:"sessionId"`
	UserID         string    `bson:"userId" json:"userId"`
	AstrologerID   string    `bson:"astrologerId" json:"astrologerId"`
	AstrologerName string    `bson:"astrologerName" json:"astrologerName"`
	Date           string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	Time           string    `bson:"time" json:"time"` // one of the astrologer's slots
	Duration       float64   `bson:"duration" json:"duration"`
	TotalAmount    int       `bson:"totalAmount" json:"totalAmount"`
	Currency       string    `bson:"currency" json:"currency"`
	InvoiceID      string    `bson:"invoiceId" json:"invoiceId"`
	PaymentID      string    `bson:"paymentId,omitempty" json:"paymentId,omitempty"`
	Status         string    `bson:"status" json:"status"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
}

// DateOption is one entry of the booking form's date picker.
type DateOption struct {
	Value string `json:"value"` // "YYYY-MM-DD"
	Label string `json:"label"` // "Mon, Jan 2"
}
