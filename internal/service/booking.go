package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"freight/internal/domain"
	"freight/internal/repository"
)

// dateLayout is the ISO 8601 date format used for all booking dates.
const dateLayout = "2006-01-02"

// BookingService handles booking operations.
type BookingService struct {
	bookingRepo repository.BookingRepository
	rateRepo    repository.RateRepository
	refs        *ReferenceGenerator
}

// NewBookingService creates a new BookingService.
func NewBookingService(
	bookingRepo repository.BookingRepository,
	rateRepo repository.RateRepository,
	refs *ReferenceGenerator,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		rateRepo:    rateRepo,
		refs:        refs,
	}
}

// CreateBookingRequest contains the parameters for creating a booking.
type CreateBookingRequest struct {
	RateID        string
	DepartureDate string
	Status        domain.BookingStatus // Optional: empty defaults to pending
}

// CreateBooking constructs a new booking with a fresh id and reference and
// appends it to the store. The rate id is stored as supplied: it is not
// checked against the catalog, and the departure date is not checked
// against the rate's validity window.
func (s *BookingService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	if req.RateID == "" {
		return nil, ErrInvalidRateID
	}

	if req.DepartureDate == "" {
		return nil, ErrMissingDepartureDate
	}

	if _, err := time.Parse(dateLayout, req.DepartureDate); err != nil {
		return nil, ErrInvalidDepartureDate
	}

	status, err := ValidateBookingStatus(string(req.Status))
	if err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		ID:            uuid.New().String(),
		RateID:        req.RateID,
		BookingDate:   time.Now().Format(dateLayout),
		DepartureDate: req.DepartureDate,
		Status:        status,
		Reference:     s.refs.Next(),
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	return booking, nil
}

// GetBooking retrieves a single booking by id.
func (s *BookingService) GetBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	if bookingID == "" {
		return nil, ErrInvalidBookingID
	}

	return s.bookingRepo.GetByID(ctx, bookingID)
}

// ListBookings returns all bookings in insertion order, including those
// whose rate reference no longer resolves.
func (s *BookingService) ListBookings(ctx context.Context) ([]*domain.Booking, error) {
	return s.bookingRepo.GetAll(ctx)
}

// BookingWithRate pairs a booking with its resolved rate.
type BookingWithRate struct {
	Booking *domain.Booking
	Rate    *domain.FreightRate
}

// ListBookingsWithRates resolves each booking's rate against the catalog.
// Bookings with a dangling rate reference are silently dropped from the
// result; they remain visible through ListBookings.
func (s *BookingService) ListBookingsWithRates(ctx context.Context) ([]*BookingWithRate, error) {
	bookings, err := s.bookingRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*BookingWithRate, 0, len(bookings))
	for _, b := range bookings {
		rate, err := s.rateRepo.GetByID(ctx, b.RateID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				continue
			}
			return nil, err
		}
		result = append(result, &BookingWithRate{Booking: b, Rate: rate})
	}
	return result, nil
}

// ValidateBookingStatus validates a booking status string.
func ValidateBookingStatus(status string) (domain.BookingStatus, error) {
	switch domain.BookingStatus(status) {
	case domain.BookingStatusPending, domain.BookingStatusConfirmed,
		domain.BookingStatusCanceled:
		return domain.BookingStatus(status), nil
	case "":
		return domain.BookingStatusPending, nil // Default to pending
	default:
		return "", ErrInvalidBookingStatus
	}
}
