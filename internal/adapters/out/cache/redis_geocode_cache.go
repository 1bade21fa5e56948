// Package cache provides a Redis-backed memoization layer for geocoding
// results. Forward geocodes are deterministic for a given address text, so
// repeated checkout edits and the branch coordinate refresh job can reuse
// results instead of spending provider quota.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"geodispatch/internal/core/domain/model/kernel"
	"geodispatch/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "geocode:"

// defaultTTL keeps entries long enough to cover a session's worth of edits
// while letting provider-side corrections eventually propagate.
const defaultTTL = 24 * time.Hour

// cachedGeocode is the JSON payload stored per address.
type cachedGeocode struct {
	Lat              float64 `json:"lat"`
	Lng              float64 `json:"lng"`
	FormattedAddress string  `json:"formatted_address"`
}

// RedisGeocodeCache implements ports.GeocodeCache on top of Redis.
type RedisGeocodeCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisGeocodeCache creates a cache over an existing Redis client.
// A non-positive ttl falls back to the default of 24 hours.
func NewRedisGeocodeCache(client *redis.Client, ttl time.Duration) *RedisGeocodeCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &RedisGeocodeCache{client: client, ttl: ttl}
}

// Get returns the cached geocode for an address and whether it was present.
func (c *RedisGeocodeCache) Get(ctx context.Context, addressText string) (ports.GeocodedAddress, bool, error) {
	raw, err := c.client.Get(ctx, cacheKey(addressText)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ports.GeocodedAddress{}, false, nil
		}
		return ports.GeocodedAddress{}, false, err
	}

	var cached cachedGeocode
	if err = json.Unmarshal(raw, &cached); err != nil {
		return ports.GeocodedAddress{}, false, err
	}

	result, err := toGeocodedAddress(cached)
	if err != nil {
		return ports.GeocodedAddress{}, false, err
	}

	return result, true, nil
}

// Set stores a geocode result under the normalized address key.
func (c *RedisGeocodeCache) Set(ctx context.Context, addressText string, result ports.GeocodedAddress) error {
	raw, err := json.Marshal(cachedGeocode{
		Lat:              result.Coordinate.Latitude(),
		Lng:              result.Coordinate.Longitude(),
		FormattedAddress: result.FormattedAddress,
	})
	if err != nil {
		return err
	}

	return c.client.Set(ctx, cacheKey(addressText), raw, c.ttl).Err()
}

func toGeocodedAddress(cached cachedGeocode) (ports.GeocodedAddress, error) {
	coordinate, err := kernel.NewCoordinate(cached.Lat, cached.Lng)
	if err != nil {
		return ports.GeocodedAddress{}, err
	}

	return ports.GeocodedAddress{
		Coordinate:       coordinate,
		FormattedAddress: cached.FormattedAddress,
	}, nil
}

// cacheKey normalizes the address the same way the provider adapter does,
// so cache hits survive whitespace differences in user input.
func cacheKey(addressText string) string {
	return keyPrefix + strings.Join(strings.Fields(addressText), " ")
}
