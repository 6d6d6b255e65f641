package repository

import (
	"context"

	"freight/internal/domain"
)

// BookingRepository defines the storage operations for bookings.
type BookingRepository interface {
	// Create appends a new booking. The rate reference is stored as
	// supplied and not validated against the catalog.
	Create(ctx context.Context, booking *domain.Booking) error

	// GetByID retrieves a booking by ID.
	GetByID(ctx context.Context, id string) (*domain.Booking, error)

	// GetAll retrieves all bookings in insertion order, oldest first.
	GetAll(ctx context.Context) ([]*domain.Booking, error)
}
