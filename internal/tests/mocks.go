package tests

import (
	"context"
	"sync"
	"sync/atomic"

	"freight/internal/domain"
	"freight/internal/repository"
)

// ──────────────────────────────────────────────
// MOCK RATE REPOSITORY
// ──────────────────────────────────────────────

// MockRateRepository is a mock implementation of RateRepository.
type MockRateRepository struct {
	mu    sync.RWMutex
	rates []*domain.FreightRate

	// Captured arguments for verification
	LastFilter repository.RateFilter

	// Counters for verification
	FilterCallCount  int32
	GetByIDCallCount int32

	// Error injection
	FilterError  error
	GetByIDError error
}

// NewMockRateRepository creates a new mock rate repository.
func NewMockRateRepository() *MockRateRepository {
	return &MockRateRepository{}
}

// AddRate adds a rate to the mock repository.
func (m *MockRateRepository) AddRate(rate *domain.FreightRate) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rates = append(m.rates, rate)
}

func (m *MockRateRepository) Filter(ctx context.Context, filter repository.RateFilter) ([]*domain.FreightRate, error) {
	atomic.AddInt32(&m.FilterCallCount, 1)
	if m.FilterError != nil {
		return nil, m.FilterError
	}
	m.mu.Lock()
	m.LastFilter = filter
	m.mu.Unlock()

	m.mu.RLock()
	defer m.mu.RUnlock()
	// Return all rates (mock doesn't apply the filter criteria).
	result := make([]*domain.FreightRate, 0, len(m.rates))
	for _, r := range m.rates {
		copy := *r
		result = append(result, &copy)
	}
	return result, nil
}

func (m *MockRateRepository) GetByID(ctx context.Context, id string) (*domain.FreightRate, error) {
	atomic.AddInt32(&m.GetByIDCallCount, 1)
	if m.GetByIDError != nil {
		return nil, m.GetByIDError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, r := range m.rates {
		if r.ID == id {
			copy := *r
			return &copy, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *MockRateRepository) GetAll(ctx context.Context) ([]*domain.FreightRate, error) {
	return m.Filter(ctx, repository.RateFilter{})
}

// ──────────────────────────────────────────────
// MOCK BOOKING REPOSITORY
// ──────────────────────────────────────────────

// MockBookingRepository is a mock implementation of BookingRepository.
type MockBookingRepository struct {
	mu       sync.RWMutex
	bookings []*domain.Booking

	// Counters for verification
	CreateCallCount int32

	// Error injection
	CreateError error
}

// NewMockBookingRepository creates a new mock booking repository.
func NewMockBookingRepository() *MockBookingRepository {
	return &MockBookingRepository{}
}

// AddBooking adds a booking to the mock repository.
func (m *MockBookingRepository) AddBooking(booking *domain.Booking) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bookings = append(m.bookings, booking)
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	copy := *booking
	m.bookings = append(m.bookings, &copy)
	return nil
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, b := range m.bookings {
		if b.ID == id {
			copy := *b
			return &copy, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *MockBookingRepository) GetAll(ctx context.Context) ([]*domain.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Booking, 0, len(m.bookings))
	for _, b := range m.bookings {
		copy := *b
		result = append(result, &copy)
	}
	return result, nil
}

// CountBookings returns the number of bookings.
func (m *MockBookingRepository) CountBookings() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.bookings)
}

// GetBooking returns the booking by ID (for test assertions).
func (m *MockBookingRepository) GetBooking(id string) *domain.Booking {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, b := range m.bookings {
		if b.ID == id {
			return b
		}
	}
	return nil
}
