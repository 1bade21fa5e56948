package openroute_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"geodispatch/internal/adapters/out/openroute"
	"geodispatch/internal/core/domain/model/kernel"
	"geodispatch/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T, handler http.HandlerFunc) *openroute.Router {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	session, err := openroute.NewProviderSession(server.URL, "test-key")
	require.NoError(t, err)
	return openroute.NewRouter(session)
}

func routePoint(t *testing.T, lat, lng float64) kernel.Coordinate {
	t.Helper()
	c, err := kernel.NewCoordinate(lat, lng)
	require.NoError(t, err)
	return c
}

func TestRouter_RouteDistance(t *testing.T) {
	origin := routePoint(t, 41.31, 69.28)
	destination := routePoint(t, 41.36, 69.29)

	t.Run("converts summary units", func(t *testing.T) {
		router := newRouter(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v2/directions/driving-car", r.URL.Path)
			assert.Equal(t, "69.28,41.31", r.URL.Query().Get("start"))
			assert.Equal(t, "69.29,41.36", r.URL.Query().Get("end"))

			_, _ = w.Write([]byte(`{"features":[{
				"properties":{"summary":{"distance":5830,"duration":690}}
			}]}`))
		})

		leg, err := router.RouteDistance(context.Background(), origin, destination)

		require.NoError(t, err)
		assert.InDelta(t, 5.83, leg.DistanceKm, 1e-9)
		assert.InDelta(t, 11.5, leg.DurationMinutes, 1e-9)
	})

	t.Run("no route maps to route unavailable", func(t *testing.T) {
		router := newRouter(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"features":[]}`))
		})

		_, err := router.RouteDistance(context.Background(), origin, destination)

		require.ErrorIs(t, err, ports.ErrRouteUnavailable)
	})

	t.Run("non-200 maps to route unavailable", func(t *testing.T) {
		router := newRouter(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		_, err := router.RouteDistance(context.Background(), origin, destination)

		require.ErrorIs(t, err, ports.ErrRouteUnavailable)
	})

	t.Run("rejects zero-value coordinates", func(t *testing.T) {
		router := newRouter(t, func(w http.ResponseWriter, _ *http.Request) {
			t.Error("provider must not be called")
		})
		var zero kernel.Coordinate

		_, err := router.RouteDistance(context.Background(), zero, destination)
		require.Error(t, err)

		_, err = router.RouteDistance(context.Background(), origin, zero)
		require.Error(t, err)
	})
}
