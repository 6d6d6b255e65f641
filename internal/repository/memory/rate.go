package memory

import (
	"context"
	"strings"
	"sync"

	"freight/internal/domain"
	"freight/internal/repository"
)

// RateCatalog is an in-memory RateRepository over a fixed seed catalog.
// Rates are immutable after construction; the lock exists because the
// catalog is shared across concurrent HTTP handlers.
type RateCatalog struct {
	mu    sync.RWMutex
	rates []*domain.FreightRate
	byID  map[string]*domain.FreightRate
}

// Ensure RateCatalog implements RateRepository.
var _ repository.RateRepository = (*RateCatalog)(nil)

// NewRateCatalog builds a catalog from the given rates, preserving order.
func NewRateCatalog(rates []*domain.FreightRate) *RateCatalog {
	byID := make(map[string]*domain.FreightRate, len(rates))
	for _, r := range rates {
		byID[r.ID] = r
	}
	return &RateCatalog{rates: rates, byID: byID}
}

func (c *RateCatalog) Filter(ctx context.Context, filter repository.RateFilter) ([]*domain.FreightRate, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]*domain.FreightRate, 0, len(c.rates))
	for _, r := range c.rates {
		if !matchesFilter(r, filter) {
			continue
		}
		// Return a copy to avoid mutation issues.
		copy := *r
		result = append(result, &copy)
	}
	return result, nil
}

func (c *RateCatalog) GetByID(ctx context.Context, id string) (*domain.FreightRate, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	r, ok := c.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *r
	return &copy, nil
}

func (c *RateCatalog) GetAll(ctx context.Context) ([]*domain.FreightRate, error) {
	return c.Filter(ctx, repository.RateFilter{})
}

// matchesFilter applies the provided criteria as a logical AND. Absent
// criteria impose no constraint.
func matchesFilter(r *domain.FreightRate, f repository.RateFilter) bool {
	if f.Mode != "" && r.Mode != f.Mode {
		return false
	}
	if f.Type != "" && r.Type != f.Type {
		return false
	}
	if f.Origin != "" && !containsFold(r.Origin, f.Origin) {
		return false
	}
	if f.Destination != "" && !containsFold(r.Destination, f.Destination) {
		return false
	}
	return true
}

// containsFold reports whether substr occurs within s, ignoring case.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
