package cache

import (
	"context"
	"log/slog"

	"geodispatch/internal/core/domain/model/kernel"
	"geodispatch/internal/core/ports"
)

// CachingGeocoder decorates a GeocodingClient with a GeocodeCache for the
// forward direction. Reverse geocoding is not cached: pins move continuously
// and near-identical coordinates would never hit.
//
// The cache is best-effort. Read and write failures are logged and the call
// falls through to the live provider, so a degraded Redis never blocks
// checkout.
type CachingGeocoder struct {
	inner  ports.GeocodingClient
	cache  ports.GeocodeCache
	logger *slog.Logger
}

// NewCachingGeocoder wraps a live geocoding client with a cache.
func NewCachingGeocoder(inner ports.GeocodingClient, cache ports.GeocodeCache, logger *slog.Logger) *CachingGeocoder {
	return &CachingGeocoder{
		inner:  inner,
		cache:  cache,
		logger: logger,
	}
}

// Geocode serves from the cache when possible, otherwise calls the live
// provider and stores the result. Negative outcomes (ErrAddressNotFound) are
// not cached so a corrected provider index is picked up immediately.
func (g *CachingGeocoder) Geocode(ctx context.Context, addressText string) (ports.GeocodedAddress, error) {
	cached, found, err := g.cache.Get(ctx, addressText)
	if err != nil {
		g.warn("geocode cache read failed", err)
	} else if found {
		return cached, nil
	}

	result, err := g.inner.Geocode(ctx, addressText)
	if err != nil {
		return ports.GeocodedAddress{}, err
	}

	if err = g.cache.Set(ctx, addressText, result); err != nil {
		g.warn("geocode cache write failed", err)
	}

	return result, nil
}

// ReverseGeocode passes through to the live provider.
func (g *CachingGeocoder) ReverseGeocode(ctx context.Context, point kernel.Coordinate) (string, error) {
	return g.inner.ReverseGeocode(ctx, point)
}

func (g *CachingGeocoder) warn(msg string, err error) {
	if g.logger != nil {
		g.logger.Warn(msg, "error", err)
	}
}
