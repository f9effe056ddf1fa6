package consultationRepo

import (
	"context"
	"sync"

	"astromarket/models"
)

type MemoryRequestRepo struct {
	mu       sync.RWMutex
	requests []models.ConsultationRequest
}

func NewMemoryRequestRepo() *MemoryRequestRepo {
	return &MemoryRequestRepo{}
}

func (r *MemoryRequestRepo) Create(ctx context.Context, req models.ConsultationRequest) error {
	r.mu.Lock()
	r.requests = append(r.requests, req)
	r.mu.Unlock()
	return nil
}

func (r *MemoryRequestRepo) ListByUser(ctx context.Context, userID string) ([]models.ConsultationRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []models.ConsultationRequest{}
	for _, req := range r.requests {
		if req.UserID == userID {
			out = append(out, req)
		}
	}
	return out, nil
}
