package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"astromarket/models"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// StripePaymentHandler creates a PaymentIntent per attempt. The card is
// confirmed client side with the intent's client secret.
type StripePaymentHandler struct {
	Logger *zap.Logger
}

func NewStripePaymentHandler(logger *zap.Logger) *StripePaymentHandler {
	return &StripePaymentHandler{Logger: logger}
}

func (h *StripePaymentHandler) ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	params := &stripe.PaymentIntentParams{
		// Stripe amounts are in the currency's minor unit.
		Amount:      stripe.Int64(int64(req.Amount) * 100),
		Currency:    stripe.String(strings.ToLower(req.Currency)),
		Description: stripe.String(req.Description),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	if req.Idempotency != "" {
		params.SetIdempotencyKey(req.Idempotency)
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe payment intent failed: %w", err)
	}

	now := time.Now()
	inv := &models.Invoice{
		InvoiceID: uuid.New().String(),
		UserID:    req.UserID,
		Amount:    req.Amount,
		Currency:  req.Currency,
		Method:    models.PaymentMethodCard,
		Status:    string(pi.Status),
		PaymentID: pi.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	h.Logger.Info("Stripe payment intent created",
		zap.String("invoice", inv.InvoiceID),
		zap.String("paymentIntent", pi.ID),
		zap.String("status", inv.Status),
	)
	return inv, nil
}
