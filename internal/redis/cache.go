package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// CacheStore caches rendered API responses in Redis. Entries are short
// lived; the store is a read-through convenience over the in-memory
// repositories, not persistence.
type CacheStore struct {
	client *redis.Client
}

// NewCacheStore creates a new CacheStore.
func NewCacheStore(client *redis.Client) *CacheStore {
	return &CacheStore{client: client}
}

// Cache TTL constants
const (
	RateListCacheTTL    = 60 * time.Second // Catalog is static and the filter key space is small
	BookingViewCacheTTL = 10 * time.Second // Also invalidated on booking creation
)

// Key prefixes
const (
	rateListCachePrefix = "cache:rates:"
	bookingViewCacheKey = "cache:bookings:view"
)

// GetRateList retrieves a cached rate listing body for a filter key.
// Returns nil on cache miss.
func (s *CacheStore) GetRateList(ctx context.Context, filterKey string) ([]byte, error) {
	data, err := s.client.Get(ctx, rateListCachePrefix+filterKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss
		}
		return nil, err
	}
	return data, nil
}

// SetRateList stores a rendered rate listing body for a filter key.
func (s *CacheStore) SetRateList(ctx context.Context, filterKey string, body []byte) error {
	return s.client.Set(ctx, rateListCachePrefix+filterKey, body, RateListCacheTTL).Err()
}

// GetBookingView retrieves the cached booking+rate joined view body.
// Returns nil on cache miss.
func (s *CacheStore) GetBookingView(ctx context.Context) ([]byte, error) {
	data, err := s.client.Get(ctx, bookingViewCacheKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss
		}
		return nil, err
	}
	return data, nil
}

// SetBookingView stores the rendered booking+rate joined view body.
func (s *CacheStore) SetBookingView(ctx context.Context, body []byte) error {
	return s.client.Set(ctx, bookingViewCacheKey, body, BookingViewCacheTTL).Err()
}

// InvalidateBookingView removes the joined view from cache. Called after
// every booking creation so the next read reflects the new booking.
func (s *CacheStore) InvalidateBookingView(ctx context.Context) error {
	return s.client.Del(ctx, bookingViewCacheKey).Err()
}
