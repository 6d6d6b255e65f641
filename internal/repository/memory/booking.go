package memory

import (
	"context"
	"sync"

	"freight/internal/domain"
	"freight/internal/repository"
)

// BookingStore is an in-memory, append-only BookingRepository. Bookings
// are kept in insertion order; the mutex serializes appends so the store
// can sit behind concurrent HTTP handlers. There is no update or delete,
// and a process restart discards everything.
type BookingStore struct {
	mu       sync.RWMutex
	bookings []*domain.Booking
	byID     map[string]*domain.Booking
}

// Ensure BookingStore implements BookingRepository.
var _ repository.BookingRepository = (*BookingStore)(nil)

// NewBookingStore creates a store pre-populated with the given bookings.
func NewBookingStore(seed []*domain.Booking) *BookingStore {
	s := &BookingStore{
		bookings: make([]*domain.Booking, 0, len(seed)),
		byID:     make(map[string]*domain.Booking),
	}
	for _, b := range seed {
		copy := *b
		s.bookings = append(s.bookings, &copy)
		s.byID[copy.ID] = &copy
	}
	return s
}

func (s *BookingStore) Create(ctx context.Context, booking *domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copy := *booking
	s.bookings = append(s.bookings, &copy)
	s.byID[copy.ID] = &copy
	return nil
}

func (s *BookingStore) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *b
	return &copy, nil
}

func (s *BookingStore) GetAll(ctx context.Context) ([]*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		copy := *b
		result = append(result, &copy)
	}
	return result, nil
}

// Count returns the number of stored bookings.
func (s *BookingStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.bookings)
}
