package repository

import (
	"context"

	"freight/internal/domain"
)

// RateFilter holds the optional criteria for querying the rate catalog.
// Zero values impose no constraint. Origin and Destination match as
// case-insensitive substrings of the corresponding rate fields.
type RateFilter struct {
	Mode        domain.FreightMode
	Type        domain.RateType
	Origin      string
	Destination string
}

// RateRepository defines the read operations over the rate catalog.
type RateRepository interface {
	// Filter returns rates matching all provided criteria, in catalog order.
	// An empty result is valid output, not an error.
	Filter(ctx context.Context, filter RateFilter) ([]*domain.FreightRate, error)

	// GetByID retrieves a rate by ID.
	GetByID(ctx context.Context, id string) (*domain.FreightRate, error)

	// GetAll retrieves the full catalog in catalog order.
	GetAll(ctx context.Context) ([]*domain.FreightRate, error)
}
