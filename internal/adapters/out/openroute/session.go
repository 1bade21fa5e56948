// Package openroute implements the geocoding and routing ports against the
// OpenRouteService API. Forward and reverse geocoding use the Pelias geocoder
// endpoints; road distance uses the directions endpoint with a driving
// profile.
package openroute

import (
	"errors"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.openrouteservice.org"

// requestTimeout bounds each provider call; sessions are interactive and a
// slow provider must fail fast rather than hang checkout.
const requestTimeout = 10 * time.Second

// ProviderSession carries the HTTP client and credentials shared by the
// geocoder and router adapters. Safe for concurrent use.
type ProviderSession struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewProviderSession creates a session for the OpenRouteService API.
// An empty baseURL falls back to the public endpoint; the API key is
// mandatory.
func NewProviderSession(baseURL, apiKey string) (*ProviderSession, error) {
	if apiKey == "" {
		return nil, errors.New("openroute api key is empty")
	}

	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &ProviderSession{
		client:  &http.Client{Timeout: requestTimeout},
		baseURL: baseURL,
		apiKey:  apiKey,
	}, nil
}
