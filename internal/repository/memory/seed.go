package memory

import (
	"github.com/google/uuid"

	"freight/internal/domain"
)

// amt returns a pointer to v, for charge amounts that are stated separately.
func amt(v float64) *float64 {
	return &v
}

// SeedRates returns the fixed rate catalog loaded once at process start.
// The stored totals are authoritative: some include rounding or surcharges
// not itemized in the charge list, so they are never recomputed from the
// base rate and included charge amounts.
func SeedRates() []*domain.FreightRate {
	return []*domain.FreightRate{
		{
			ID:            uuid.New().String(),
			Mode:          domain.FreightModeOcean,
			Type:          domain.RateTypeContract,
			Origin:        "Shanghai, China",
			Destination:   "Los Angeles, USA",
			Carrier:       "Maersk Line",
			ValidFrom:     "2023-01-01",
			ValidTo:       "2023-12-31",
			TransitTime:   18,
			BaseRate:      2500,
			Currency:      "USD",
			ContainerType: "40ft High Cube",
			Charges: []domain.Charge{
				{Name: domain.ChargeBasicFreight, Included: true, Currency: "USD"},
				{Name: domain.ChargeBunkerAdjustment, Included: true, Amount: amt(250), Currency: "USD"},
				{Name: domain.ChargeDocumentationFee, Included: true, Amount: amt(75), Currency: "USD"},
				{Name: domain.ChargeTerminalHandling, Included: false, Amount: amt(150), Currency: "USD"},
				{Name: domain.ChargeSecurityFee, Included: true, Amount: amt(45), Currency: "USD"},
				{Name: domain.ChargeCustomsClearance, Included: false, Amount: amt(200), Currency: "USD"},
				{Name: domain.ChargeInlandTransport, Included: false, Amount: amt(350), Currency: "USD"},
			},
			TotalRate: 2870,
		},
		{
			ID:            uuid.New().String(),
			Mode:          domain.FreightModeOcean,
			Type:          domain.RateTypeContract,
			Origin:        "Rotterdam, Netherlands",
			Destination:   "New York, USA",
			Carrier:       "MSC",
			ValidFrom:     "2023-01-01",
			ValidTo:       "2023-12-31",
			TransitTime:   12,
			BaseRate:      1800,
			Currency:      "USD",
			ContainerType: "20ft Standard",
			Charges: []domain.Charge{
				{Name: domain.ChargeBasicFreight, Included: true, Currency: "USD"},
				{Name: domain.ChargeBunkerAdjustment, Included: true, Amount: amt(180), Currency: "USD"},
				{Name: domain.ChargeDocumentationFee, Included: true, Amount: amt(65), Currency: "USD"},
				{Name: domain.ChargeTerminalHandling, Included: true, Amount: amt(120), Currency: "USD"},
				{Name: domain.ChargeSecurityFee, Included: true, Amount: amt(40), Currency: "USD"},
				{Name: domain.ChargeCustomsClearance, Included: false, Amount: amt(180), Currency: "USD"},
				{Name: domain.ChargeInlandTransport, Included: false, Amount: amt(250), Currency: "USD"},
			},
			TotalRate: 2205,
		},
		{
			ID:            uuid.New().String(),
			Mode:          domain.FreightModeOcean,
			Type:          domain.RateTypeSpot,
			Origin:        "Shanghai, China",
			Destination:   "Los Angeles, USA",
			Carrier:       "CMA CGM",
			ValidFrom:     "2023-06-01",
			ValidTo:       "2023-06-30",
			TransitTime:   19,
			BaseRate:      3200,
			Currency:      "USD",
			ContainerType: "40ft High Cube",
			Charges: []domain.Charge{
				{Name: domain.ChargeBasicFreight, Included: true, Currency: "USD"},
				{Name: domain.ChargeBunkerAdjustment, Included: true, Amount: amt(320), Currency: "USD"},
				{Name: domain.ChargeDocumentationFee, Included: true, Amount: amt(80), Currency: "USD"},
				{Name: domain.ChargeTerminalHandling, Included: false, Amount: amt(180), Currency: "USD"},
				{Name: domain.ChargePeakSeason, Included: true, Amount: amt(150), Currency: "USD"},
				{Name: domain.ChargeSecurityFee, Included: true, Amount: amt(50), Currency: "USD"},
				{Name: domain.ChargeCustomsClearance, Included: false, Amount: amt(200), Currency: "USD"},
			},
			TotalRate: 3800,
		},
		{
			ID:          uuid.New().String(),
			Mode:        domain.FreightModeAir,
			Type:        domain.RateTypeContract,
			Origin:      "Hong Kong, China",
			Destination: "Frankfurt, Germany",
			Carrier:     "Lufthansa Cargo",
			ValidFrom:   "2023-01-01",
			ValidTo:     "2023-12-31",
			TransitTime: 3,
			BaseRate:    4.5, // per kg
			Currency:    "USD",
			Charges: []domain.Charge{
				{Name: domain.ChargeBasicFreight, Included: true, Currency: "USD"},
				{Name: domain.ChargeSecurityFee, Included: true, Amount: amt(0.15), Currency: "USD"},
				{Name: domain.ChargeFuelSurcharge, Included: true, Amount: amt(0.8), Currency: "USD"},
				{Name: domain.ChargeTerminalHandling, Included: true, Amount: amt(0.25), Currency: "USD"},
				{Name: domain.ChargeDocumentationFee, Included: false, Amount: amt(45), Currency: "USD"},
				{Name: domain.ChargeCustomsClearance, Included: false, Amount: amt(120), Currency: "USD"},
			},
			TotalRate: 5.7,
		},
		{
			ID:          uuid.New().String(),
			Mode:        domain.FreightModeAir,
			Type:        domain.RateTypeSpot,
			Origin:      "Seoul, South Korea",
			Destination: "Chicago, USA",
			Carrier:     "Korean Air Cargo",
			ValidFrom:   "2023-06-01",
			ValidTo:     "2023-06-15",
			TransitTime: 2,
			BaseRate:    5.8, // per kg
			Currency:    "USD",
			Charges: []domain.Charge{
				{Name: domain.ChargeBasicFreight, Included: true, Currency: "USD"},
				{Name: domain.ChargeSecurityFee, Included: true, Amount: amt(0.2), Currency: "USD"},
				{Name: domain.ChargeFuelSurcharge, Included: true, Amount: amt(1.1), Currency: "USD"},
				{Name: domain.ChargeTerminalHandling, Included: true, Amount: amt(0.3), Currency: "USD"},
				{Name: domain.ChargeDocumentationFee, Included: true, Amount: amt(60), Currency: "USD"},
				{Name: domain.ChargeCustomsClearance, Included: false, Amount: amt(150), Currency: "USD"},
				{Name: domain.ChargePeakSeason, Included: true, Amount: amt(0.4), Currency: "USD"},
			},
			TotalRate: 7.8,
		},
	}
}

// SeedBookings returns the initial booking records, referencing the first
// two rates of the seeded catalog.
func SeedBookings(rates []*domain.FreightRate) []*domain.Booking {
	if len(rates) < 2 {
		return nil
	}
	return []*domain.Booking{
		{
			ID:            uuid.New().String(),
			RateID:        rates[0].ID,
			BookingDate:   "2023-05-15",
			DepartureDate: "2023-06-10",
			Status:        domain.BookingStatusConfirmed,
			Reference:     "BKG-1234567",
		},
		{
			ID:            uuid.New().String(),
			RateID:        rates[1].ID,
			BookingDate:   "2023-05-20",
			DepartureDate: "2023-06-15",
			Status:        domain.BookingStatusPending,
			Reference:     "BKG-7654321",
		},
	}
}
