package tests

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"freight/internal/domain"
	"freight/internal/service"
)

func newCreateRequest(rateID string) service.CreateBookingRequest {
	return service.CreateBookingRequest{
		RateID:        rateID,
		DepartureDate: "2024-02-01",
	}
}

// ──────────────────────────────────────────────
// BOOKING + RATE JOINED VIEW
// ──────────────────────────────────────────────

func TestBookingJoin_DanglingRateExcludedFromJoinButListedRaw(t *testing.T) {
	t.Parallel()

	rateRepo := NewMockRateRepository()
	rate := &domain.FreightRate{
		ID:        uuid.New().String(),
		Mode:      domain.FreightModeOcean,
		Type:      domain.RateTypeContract,
		Carrier:   "Maersk Line",
		TotalRate: 2870,
	}
	rateRepo.AddRate(rate)

	bookingRepo := NewMockBookingRepository()
	bookingService := newBookingService(bookingRepo, rateRepo)

	resolved, err := bookingService.CreateBooking(context.Background(), newCreateRequest(rate.ID))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dangling, err := bookingService.CreateBooking(context.Background(), newCreateRequest(uuid.New().String()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The raw listing carries both bookings.
	raw, err := bookingService.ListBookings(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(raw) != 2 {
		t.Fatalf("expected 2 raw bookings, got %d", len(raw))
	}

	// The joined view drops the one whose rate does not resolve.
	joined, err := bookingService.ListBookingsWithRates(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(joined) != 1 {
		t.Fatalf("expected 1 joined entry, got %d", len(joined))
	}
	if joined[0].Booking.ID != resolved.ID {
		t.Errorf("joined view kept the wrong booking: got %s", joined[0].Booking.ID)
	}
	if joined[0].Rate.ID != rate.ID || joined[0].Rate.TotalRate != 2870 {
		t.Error("joined entry does not carry the resolved rate")
	}

	for _, j := range joined {
		if j.Booking.ID == dangling.ID {
			t.Error("dangling booking must not appear in the joined view")
		}
	}
}

func TestBookingJoin_PreservesInsertionOrder(t *testing.T) {
	t.Parallel()

	rateRepo := NewMockRateRepository()
	rate := &domain.FreightRate{ID: uuid.New().String(), Mode: domain.FreightModeAir}
	rateRepo.AddRate(rate)

	bookingService := newBookingService(NewMockBookingRepository(), rateRepo)

	ids := make([]string, 0, 4)
	for i := 0; i < 4; i++ {
		b, err := bookingService.CreateBooking(context.Background(), newCreateRequest(rate.ID))
		if err != nil {
			t.Fatalf("create %d failed: %v", i, err)
		}
		ids = append(ids, b.ID)
	}

	joined, err := bookingService.ListBookingsWithRates(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(joined) != len(ids) {
		t.Fatalf("expected %d joined entries, got %d", len(ids), len(joined))
	}
	for i, j := range joined {
		if j.Booking.ID != ids[i] {
			t.Errorf("joined view out of order at index %d", i)
		}
	}
}

func TestBookingJoin_EmptyStoreYieldsEmptyView(t *testing.T) {
	t.Parallel()

	bookingService := newBookingService(NewMockBookingRepository(), NewMockRateRepository())

	joined, err := bookingService.ListBookingsWithRates(context.Background())
	if err != nil {
		t.Fatalf("expected no error for an empty store, got: %v", err)
	}
	if len(joined) != 0 {
		t.Errorf("expected empty view, got %d entries", len(joined))
	}
}
