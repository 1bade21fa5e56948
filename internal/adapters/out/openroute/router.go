package openroute

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"geodispatch/internal/core/domain/model/kernel"
	"geodispatch/internal/core/ports"
)

const drivingProfile = "driving-car"

// Router implements ports.RouteDistanceClient using the OpenRouteService
// directions endpoint with the driving-car profile.
type Router struct {
	session *ProviderSession
}

// NewRouter creates a router over an existing provider session.
func NewRouter(session *ProviderSession) *Router {
	return &Router{session: session}
}

// directionsResponse is the subset of the directions feature collection the
// engine needs: the route summary with distance in meters and duration in
// seconds.
type directionsResponse struct {
	Features []struct {
		Properties struct {
			Summary struct {
				Distance float64 `json:"distance"`
				Duration float64 `json:"duration"`
			} `json:"summary"`
		} `json:"properties"`
	} `json:"features"`
}

// RouteDistance computes the driving leg between two points. Every provider
// failure mode maps to ports.ErrRouteUnavailable, since callers ranking many
// branches treat all of them as "this branch cannot be ranked".
func (r *Router) RouteDistance(ctx context.Context, origin, destination kernel.Coordinate) (ports.RouteLeg, error) {
	if err := origin.Validate(); err != nil {
		return ports.RouteLeg{}, err
	}
	if err := destination.Validate(); err != nil {
		return ports.RouteLeg{}, err
	}

	query := url.Values{}
	query.Set("api_key", r.session.apiKey)
	query.Set("start", formatLonLat(origin))
	query.Set("end", formatLonLat(destination))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		r.session.baseURL+"/v2/directions/"+drivingProfile+"?"+query.Encode(), nil)
	if err != nil {
		return ports.RouteLeg{}, fmt.Errorf("%w: %v", ports.ErrRouteUnavailable, err)
	}

	resp, err := r.session.client.Do(req)
	if err != nil {
		return ports.RouteLeg{}, fmt.Errorf("%w: %v", ports.ErrRouteUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ports.RouteLeg{}, fmt.Errorf("%w: unexpected status %d", ports.ErrRouteUnavailable, resp.StatusCode)
	}

	var decoded directionsResponse
	if err = json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return ports.RouteLeg{}, fmt.Errorf("%w: decode directions response: %v", ports.ErrRouteUnavailable, err)
	}

	if len(decoded.Features) == 0 {
		return ports.RouteLeg{}, fmt.Errorf("%w: no route between points", ports.ErrRouteUnavailable)
	}

	summary := decoded.Features[0].Properties.Summary
	return ports.RouteLeg{
		DistanceKm:      summary.Distance / 1000,
		DurationMinutes: summary.Duration / 60,
	}, nil
}

// formatLonLat renders a coordinate as "lon,lat", the order the directions
// endpoint expects.
func formatLonLat(c kernel.Coordinate) string {
	return strconv.FormatFloat(c.Longitude(), 'f', -1, 64) + "," +
		strconv.FormatFloat(c.Latitude(), 'f', -1, 64)
}
