package consultationRepo

import (
	"context"

	"astromarket/models"
)

// ConsultationRequestRepository records Sarthi problem selections.
type ConsultationRequestRepository interface {
	Create(ctx context.Context, req models.ConsultationRequest) error
	ListByUser(ctx context.Context, userID string) ([]models.ConsultationRequest, error)
}
