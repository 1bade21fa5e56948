// Package ports defines provider and repository interfaces for the assignment
// engine. These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"
	"errors"

	"geodispatch/internal/core/domain/model/kernel"
)

var (
	// ErrAddressNotFound indicates the geocoding provider produced no result
	// for the input. The caller should ask the user to correct the address;
	// no automatic retry is performed.
	ErrAddressNotFound = errors.New("address not found")

	// ErrProviderUnavailable indicates the geocoding provider was unreachable
	// or rejected the request (quota, auth). Surfaced to the caller as a
	// retryable failure.
	ErrProviderUnavailable = errors.New("geo provider unavailable")

	// ErrRouteUnavailable indicates a single origin-destination leg could not
	// be resolved (provider error or no drivable route). Callers ranking many
	// branches recover by excluding the affected leg.
	ErrRouteUnavailable = errors.New("route unavailable")
)

// GeocodedAddress is the outcome of a successful forward geocode: the
// canonical coordinate together with the provider's formatted address text.
type GeocodedAddress struct {
	Coordinate       kernel.Coordinate
	FormattedAddress string
}

// GeocodingClient resolves free-text addresses to coordinates and back.
type GeocodingClient interface {
	// Geocode resolves a free-text address to a coordinate and a formatted
	// address. Returns ErrAddressNotFound for ambiguous or zero-result input
	// and ErrProviderUnavailable for transport-level failures.
	Geocode(ctx context.Context, addressText string) (GeocodedAddress, error)

	// ReverseGeocode resolves a coordinate to a formatted address, used after
	// manual map-pin placement to keep the displayed text consistent with the
	// point. Same error contract as Geocode.
	ReverseGeocode(ctx context.Context, point kernel.Coordinate) (string, error)
}

// RouteLeg is a single origin-to-destination distance and travel time
// computed over the road network with a driving profile.
type RouteLeg struct {
	DistanceKm      float64
	DurationMinutes float64
}

// RouteDistanceClient resolves real-road distance between two coordinates.
type RouteDistanceClient interface {
	// RouteDistance computes the driving leg from origin to destination.
	// Returns ErrRouteUnavailable for provider errors and no-route
	// conditions so that a caller ranking many branches can skip one bad
	// leg without aborting the whole ranking.
	RouteDistance(ctx context.Context, origin, destination kernel.Coordinate) (RouteLeg, error)
}

// GeocodeCache memoizes geocode results keyed by the input address text.
// Implementations are best-effort: a failing cache must not break the live
// geocoding path.
type GeocodeCache interface {
	// Get returns the cached result for an address and whether it was present.
	Get(ctx context.Context, addressText string) (GeocodedAddress, bool, error)

	// Set stores a geocode result for later reuse.
	Set(ctx context.Context, addressText string, result GeocodedAddress) error
}
