package service

import (
	"context"
	"strings"

	"freight/internal/domain"
	"freight/internal/repository"
)

// RateService answers queries over the rate catalog.
type RateService struct {
	rateRepo repository.RateRepository
}

// NewRateService creates a new RateService.
func NewRateService(rateRepo repository.RateRepository) *RateService {
	return &RateService{rateRepo: rateRepo}
}

// FilterRatesRequest carries the raw filter criteria as received from the
// caller. Empty strings impose no constraint.
type FilterRatesRequest struct {
	Mode        string
	Type        string
	Origin      string
	Destination string
}

// FilterRates validates the criteria and returns the matching rates in
// catalog order. No criteria returns the full catalog.
func (s *RateService) FilterRates(ctx context.Context, req FilterRatesRequest) ([]*domain.FreightRate, error) {
	mode, err := ValidateMode(req.Mode)
	if err != nil {
		return nil, err
	}

	rateType, err := ValidateRateType(req.Type)
	if err != nil {
		return nil, err
	}

	return s.rateRepo.Filter(ctx, repository.RateFilter{
		Mode:        mode,
		Type:        rateType,
		Origin:      strings.TrimSpace(req.Origin),
		Destination: strings.TrimSpace(req.Destination),
	})
}

// GetRate retrieves a single rate by id.
func (s *RateService) GetRate(ctx context.Context, rateID string) (*domain.FreightRate, error) {
	if rateID == "" {
		return nil, ErrInvalidRateID
	}

	return s.rateRepo.GetByID(ctx, rateID)
}

// ValidateMode validates a freight mode string. Empty means no constraint.
func ValidateMode(mode string) (domain.FreightMode, error) {
	switch domain.FreightMode(mode) {
	case domain.FreightModeOcean, domain.FreightModeAir:
		return domain.FreightMode(mode), nil
	case "":
		return "", nil
	default:
		return "", ErrInvalidMode
	}
}

// ValidateRateType validates a rate type string. Empty means no constraint.
func ValidateRateType(rateType string) (domain.RateType, error) {
	switch domain.RateType(rateType) {
	case domain.RateTypeContract, domain.RateTypeSpot:
		return domain.RateType(rateType), nil
	case "":
		return "", nil
	default:
		return "", ErrInvalidRateType
	}
}
