package booking

import (
	"context"
	"fmt"
	"time"

	"astromarket/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// --- Interfaces ---
type PaymentHandler interface {
	ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error)
}

// SimulatedPaymentHandler always succeeds after Delay unless ctx ends first.
type SimulatedPaymentHandler struct {
	Delay  time.Duration
	Logger *zap.Logger
}

func NewSimulatedPaymentHandler(delay time.Duration, logger *zap.Logger) *SimulatedPaymentHandler {
	return &SimulatedPaymentHandler{Delay: delay, Logger: logger}
}

func (h *SimulatedPaymentHandler) ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	timer := time.NewTimer(h.Delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
	}

	now := time.Now()
	inv := &models.Invoice{
		InvoiceID: uuid.New().String(),
		UserID:    req.UserID,
		Amount:    req.Amount,
		Currency:  req.Currency,
		Method:    models.PaymentMethodSimulated,
		Status:    models.InvoiceStatusPaid,
		PaymentID: "sim_" + uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if h.Logger != nil {
		h.Logger.Info("Simulated payment successful",
			zap.String("invoice", inv.InvoiceID),
			zap.String("session", req.SessionID),
			zap.Int("amount", inv.Amount),
		)
	}
	return inv, nil
}

// --- Validator ---
func validateRequest(req models.PaymentRequest) error {
	if req.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidPaymentData)
	}
	if req.UserID == "" {
		return fmt.Errorf("%w: missing user ID", ErrInvalidPaymentData)
	}
	if req.Currency == "" {
		return fmt.Errorf("%w: missing currency", ErrInvalidPaymentData)
	}
	return nil
}
