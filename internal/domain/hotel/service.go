package hotel

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/hotelfinder/hotelfinder-api/internal/pkg/liteapi"
)

// Inventory is the slice of the provider client the hotel service uses.
type Inventory interface {
	SearchHotels(ctx context.Context, countryCode, cityName string) (json.RawMessage, error)
	GetHotel(ctx context.Context, hotelID string) (json.RawMessage, error)
	GetRates(ctx context.Context, req liteapi.RatesRequest) (json.RawMessage, error)
}

// Service proxies hotel inventory lookups, caching list and detail
// responses in Redis. The cache is optional: with a nil client every
// call goes straight to the provider.
type Service struct {
	inventory Inventory
	cache     *redis.Client
	ttl       time.Duration
}

// NewService creates a hotel service
func NewService(inventory Inventory, cache *redis.Client, ttl time.Duration) *Service {
	return &Service{inventory: inventory, cache: cache, ttl: ttl}
}

// Search returns the provider's hotel list for a country/city pair.
func (s *Service) Search(ctx context.Context, countryCode, cityName string) (json.RawMessage, error) {
	key := fmt.Sprintf("hotels:search:%s:%s", strings.ToUpper(countryCode), strings.ToLower(cityName))
	if cached, ok := s.cacheGet(ctx, key); ok {
		return cached, nil
	}

	data, err := s.inventory.SearchHotels(ctx, countryCode, cityName)
	if err != nil {
		return nil, err
	}

	s.cacheSet(ctx, key, data)
	return data, nil
}

// Details returns hotel details with nested rooms.
func (s *Service) Details(ctx context.Context, hotelID string) (json.RawMessage, error) {
	key := "hotels:detail:" + hotelID
	if cached, ok := s.cacheGet(ctx, key); ok {
		return cached, nil
	}

	data, err := s.inventory.GetHotel(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	s.cacheSet(ctx, key, data)
	return data, nil
}

// Rates quotes room rates. Quotes depend on dates and occupancy and go
// stale quickly, so they are never cached.
func (s *Service) Rates(ctx context.Context, req liteapi.RatesRequest) (json.RawMessage, error) {
	return s.inventory.GetRates(ctx, req)
}

func (s *Service) cacheGet(ctx context.Context, key string) (json.RawMessage, bool) {
	if s.cache == nil {
		return nil, false
	}
	val, err := s.cache.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Str("key", key).Msg("Hotel cache read failed")
		}
		return nil, false
	}
	return json.RawMessage(val), true
}

func (s *Service) cacheSet(ctx context.Context, key string, data json.RawMessage) {
	if s.cache == nil {
		return
	}
	// Best effort: a failed cache write never fails the request
	if err := s.cache.Set(ctx, key, string(data), s.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Hotel cache write failed")
	}
}
