package models

import "time"

const (
	PaymentMethodSimulated = "simulated"
	PaymentMethodCard      = "card"

	InvoiceStatusPaid = "paid"
)

// --- PaymentRequest & Invoice ---
type PaymentRequest struct {
	UserID      string
	SessionID   string
	Amount      int
	Currency    string
	Method      string
	Idempotency string
	Metadata    map[string]string
	Description string
}

type Invoice struct {
	InvoiceID string    `json:"invoiceId"`
	UserID    string    `json:"userId"`
	Amount    int       `json:"amount"`
	Currency  string    `json:"currency"`
	Status    string    `json:"status"`
	Method    string    `json:"method"`
	PaymentID string    `json:"paymentId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
