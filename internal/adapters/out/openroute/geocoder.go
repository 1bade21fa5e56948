package openroute

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"geodispatch/internal/core/domain/model/kernel"
	"geodispatch/internal/core/ports"
)

// Geocoder implements ports.GeocodingClient using the OpenRouteService
// Pelias endpoints.
type Geocoder struct {
	session *ProviderSession
}

// NewGeocoder creates a geocoder over an existing provider session.
func NewGeocoder(session *ProviderSession) *Geocoder {
	return &Geocoder{session: session}
}

// geocodeResponse is the subset of the Pelias feature collection the engine
// needs: the best candidate's point and its display label.
type geocodeResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
		Properties struct {
			Label string `json:"label"`
		} `json:"properties"`
	} `json:"features"`
}

// Geocode resolves a free-text address via /geocode/search, taking the top
// candidate. Zero features map to ports.ErrAddressNotFound; transport and
// non-200 responses map to ports.ErrProviderUnavailable.
func (g *Geocoder) Geocode(ctx context.Context, addressText string) (ports.GeocodedAddress, error) {
	query := url.Values{}
	query.Set("text", normalizeAddress(addressText))
	query.Set("size", "1")

	decoded, err := g.fetch(ctx, "/geocode/search", query)
	if err != nil {
		return ports.GeocodedAddress{}, err
	}

	if len(decoded.Features) == 0 {
		return ports.GeocodedAddress{}, ports.ErrAddressNotFound
	}

	feature := decoded.Features[0]
	if len(feature.Geometry.Coordinates) != 2 {
		return ports.GeocodedAddress{}, fmt.Errorf("%w: malformed geometry in geocode response", ports.ErrProviderUnavailable)
	}

	// Pelias geometry is GeoJSON: longitude first.
	coordinate, err := kernel.NewCoordinate(feature.Geometry.Coordinates[1], feature.Geometry.Coordinates[0])
	if err != nil {
		return ports.GeocodedAddress{}, fmt.Errorf("%w: %v", ports.ErrProviderUnavailable, err)
	}

	return ports.GeocodedAddress{
		Coordinate:       coordinate,
		FormattedAddress: feature.Properties.Label,
	}, nil
}

// ReverseGeocode resolves a coordinate via /geocode/reverse. Zero features
// map to ports.ErrAddressNotFound so callers can fall back to an empty
// display address.
func (g *Geocoder) ReverseGeocode(ctx context.Context, point kernel.Coordinate) (string, error) {
	if err := point.Validate(); err != nil {
		return "", err
	}

	query := url.Values{}
	query.Set("point.lat", strconv.FormatFloat(point.Latitude(), 'f', -1, 64))
	query.Set("point.lon", strconv.FormatFloat(point.Longitude(), 'f', -1, 64))
	query.Set("size", "1")

	decoded, err := g.fetch(ctx, "/geocode/reverse", query)
	if err != nil {
		return "", err
	}

	if len(decoded.Features) == 0 {
		return "", ports.ErrAddressNotFound
	}

	return decoded.Features[0].Properties.Label, nil
}

func (g *Geocoder) fetch(ctx context.Context, path string, query url.Values) (geocodeResponse, error) {
	query.Set("api_key", g.session.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		g.session.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return geocodeResponse{}, fmt.Errorf("%w: %v", ports.ErrProviderUnavailable, err)
	}

	resp, err := g.session.client.Do(req)
	if err != nil {
		return geocodeResponse{}, fmt.Errorf("%w: %v", ports.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return geocodeResponse{}, fmt.Errorf("%w: unexpected status %d", ports.ErrProviderUnavailable, resp.StatusCode)
	}

	var decoded geocodeResponse
	if err = json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return geocodeResponse{}, fmt.Errorf("%w: decode geocode response: %v", ports.ErrProviderUnavailable, err)
	}

	return decoded, nil
}

// normalizeAddress ensures consistent provider queries and cache keys by
// collapsing whitespace.
func normalizeAddress(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
