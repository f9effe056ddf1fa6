package customerRepo

import (
	"context"
	"fmt"

	"astromarket/models"
)

// MemoryCustomerRepo serves a fixed roster loaded at construction.
type MemoryCustomerRepo struct {
	customers []models.CustomerData
}

// NewMemoryCustomerRepo returns a repository over customers.
// Pass MockRoster(now) for the built-in roster.
func NewMemoryCustomerRepo(customers []models.CustomerData) *MemoryCustomerRepo {
	roster := make([]models.CustomerData, len(customers))
	copy(roster, customers)
	return &MemoryCustomerRepo{customers: roster}
}

func (r *MemoryCustomerRepo) List(ctx context.Context) ([]models.CustomerData, error) {
	out := make([]models.CustomerData, len(r.customers))
	copy(out, r.customers)
	return out, nil
}

func (r *MemoryCustomerRepo) GetByID(ctx context.Context, id string) (*models.CustomerData, error) {
	for i := range r.customers {
		if r.customers[i].ID == id {
			c := r.customers[i]
			return &c, nil
		}
	}
	return nil, fmt.Errorf("customer %s: %w", id, ErrCustomerNotFound)
}
