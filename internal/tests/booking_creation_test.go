package tests

import (
	"context"
	"errors"
	"math/rand"
	"regexp"
	"testing"

	"github.com/google/uuid"

	"freight/internal/domain"
	"freight/internal/service"
)

func newBookingService(bookingRepo *MockBookingRepository, rateRepo *MockRateRepository) *service.BookingService {
	refs := service.NewReferenceGenerator("BKG-", rand.NewSource(1))
	return service.NewBookingService(bookingRepo, rateRepo, refs)
}

// ──────────────────────────────────────────────
// BOOKING CREATION
// ──────────────────────────────────────────────

func TestBookingCreation_ValidInput_Succeeds(t *testing.T) {
	t.Parallel()

	bookingRepo := NewMockBookingRepository()
	bookingService := newBookingService(bookingRepo, NewMockRateRepository())

	rateID := uuid.New().String()
	booking, err := bookingService.CreateBooking(context.Background(), service.CreateBookingRequest{
		RateID:        rateID,
		DepartureDate: "2024-02-01",
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if booking.ID == "" {
		t.Error("expected booking ID to be set")
	}
	if booking.RateID != rateID {
		t.Errorf("expected rate ID %s, got %s", rateID, booking.RateID)
	}
	if booking.DepartureDate != "2024-02-01" {
		t.Errorf("departure date not copied verbatim: got %s", booking.DepartureDate)
	}
	if booking.Status != domain.BookingStatusPending {
		t.Errorf("expected new booking to be pending, got %s", booking.Status)
	}
	if booking.BookingDate == "" {
		t.Error("expected booking date to be set to the creation date")
	}

	if bookingRepo.CreateCallCount != 1 {
		t.Errorf("expected Create to be called once, called %d times", bookingRepo.CreateCallCount)
	}
}

func TestBookingCreation_ReferenceMatchesPrefixPattern(t *testing.T) {
	t.Parallel()

	bookingService := newBookingService(NewMockBookingRepository(), NewMockRateRepository())

	booking, err := bookingService.CreateBooking(context.Background(), service.CreateBookingRequest{
		RateID:        uuid.New().String(),
		DepartureDate: "2024-02-01",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pattern := regexp.MustCompile(`^BKG-\d{1,7}$`)
	if !pattern.MatchString(booking.Reference) {
		t.Errorf("reference %q does not match the expected pattern", booking.Reference)
	}
}

func TestBookingCreation_ReferenceIsDeterministicWithSeededSource(t *testing.T) {
	t.Parallel()

	refsA := service.NewReferenceGenerator("BKG-", rand.NewSource(42))
	refsB := service.NewReferenceGenerator("BKG-", rand.NewSource(42))

	for i := 0; i < 10; i++ {
		a, b := refsA.Next(), refsB.Next()
		if a != b {
			t.Fatalf("same seed produced different references: %s vs %s", a, b)
		}
	}
}

func TestBookingCreation_CreateThenGetByID_Equal(t *testing.T) {
	t.Parallel()

	bookingRepo := NewMockBookingRepository()
	bookingService := newBookingService(bookingRepo, NewMockRateRepository())

	created, err := bookingService.CreateBooking(context.Background(), service.CreateBookingRequest{
		RateID:        uuid.New().String(),
		DepartureDate: "2024-02-01",
		Status:        domain.BookingStatusConfirmed,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := bookingService.GetBooking(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *got != *created {
		t.Errorf("stored booking differs from returned one: got %+v, want %+v", got, created)
	}
}

func TestBookingCreation_MultipleBookingsAreDistinct(t *testing.T) {
	t.Parallel()

	bookingRepo := NewMockBookingRepository()
	bookingService := newBookingService(bookingRepo, NewMockRateRepository())

	req := service.CreateBookingRequest{
		RateID:        uuid.New().String(),
		DepartureDate: "2024-02-01",
	}

	first, err := bookingService.CreateBooking(context.Background(), req)
	if err != nil {
		t.Fatalf("first creation failed: %v", err)
	}
	second, err := bookingService.CreateBooking(context.Background(), req)
	if err != nil {
		t.Fatalf("second creation failed: %v", err)
	}

	if first.ID == second.ID {
		t.Error("expected different booking IDs for separate requests")
	}
	if bookingRepo.CountBookings() != 2 {
		t.Errorf("expected 2 bookings, got %d", bookingRepo.CountBookings())
	}
}

func TestBookingCreation_ValidationFailures(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		req     service.CreateBookingRequest
		wantErr error
	}{
		{
			name:    "missing rate id",
			req:     service.CreateBookingRequest{DepartureDate: "2024-02-01"},
			wantErr: service.ErrInvalidRateID,
		},
		{
			name:    "missing departure date",
			req:     service.CreateBookingRequest{RateID: uuid.New().String()},
			wantErr: service.ErrMissingDepartureDate,
		},
		{
			name: "malformed departure date",
			req: service.CreateBookingRequest{
				RateID:        uuid.New().String(),
				DepartureDate: "02/01/2024",
			},
			wantErr: service.ErrInvalidDepartureDate,
		},
		{
			name: "status outside the enumeration",
			req: service.CreateBookingRequest{
				RateID:        uuid.New().String(),
				DepartureDate: "2024-02-01",
				Status:        domain.BookingStatus("shipped"),
			},
			wantErr: service.ErrInvalidBookingStatus,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			bookingRepo := NewMockBookingRepository()
			bookingService := newBookingService(bookingRepo, NewMockRateRepository())

			_, err := bookingService.CreateBooking(context.Background(), tc.req)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("expected %v, got: %v", tc.wantErr, err)
			}
			if bookingRepo.CreateCallCount != 0 {
				t.Error("nothing should be appended when validation fails")
			}
		})
	}
}

func TestBookingCreation_DanglingRateIDIsAccepted(t *testing.T) {
	t.Parallel()

	// The catalog is empty: the rate reference resolves to nothing, and
	// creation must still succeed.
	bookingService := newBookingService(NewMockBookingRepository(), NewMockRateRepository())

	booking, err := bookingService.CreateBooking(context.Background(), service.CreateBookingRequest{
		RateID:        uuid.New().String(),
		DepartureDate: "2024-02-01",
	})
	if err != nil {
		t.Fatalf("expected creation to succeed with a dangling rate id, got: %v", err)
	}
	if booking == nil {
		t.Fatal("expected a booking to be returned")
	}
}

func TestBookingCreation_RepoErrorPropagates(t *testing.T) {
	t.Parallel()

	bookingRepo := NewMockBookingRepository()
	bookingRepo.CreateError = errors.New("mock: store unavailable")
	bookingService := newBookingService(bookingRepo, NewMockRateRepository())

	_, err := bookingService.CreateBooking(context.Background(), service.CreateBookingRequest{
		RateID:        uuid.New().String(),
		DepartureDate: "2024-02-01",
	})
	if err == nil {
		t.Error("expected the repository error to propagate")
	}
}
