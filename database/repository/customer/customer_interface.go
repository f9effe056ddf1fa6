package customerRepo

import (
	"context"
	"errors"

	"astromarket/models"
)

var ErrCustomerNotFound = errors.New("customer not found")

// CustomerRepository is the read side of the admin customer roster.
type CustomerRepository interface {
	// List returns the full roster.
	List(ctx context.Context) ([]models.CustomerData, error)
	// GetByID returns a single customer or ErrCustomerNotFound.
	GetByID(ctx context.Context, id string) (*models.CustomerData, error)
}
