package kernel_test

import (
	"testing"

	"geodispatch/internal/core/domain/model/kernel"
	"geodispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCoordinate(t *testing.T) {
	t.Run("creates coordinate with valid components", func(t *testing.T) {
		point, err := kernel.NewCoordinate(41.3111, 69.2797)

		require.NoError(t, err)
		assert.InDelta(t, 41.3111, point.Latitude(), 1e-9)
		assert.InDelta(t, 69.2797, point.Longitude(), 1e-9)
		require.NoError(t, point.Validate())
	})

	t.Run("accepts boundary values", func(t *testing.T) {
		cases := []struct {
			name     string
			lat, lng float64
		}{
			{"south pole", -90, 0},
			{"north pole", 90, 0},
			{"antimeridian west", 0, -180},
			{"antimeridian east", 0, 180},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := kernel.NewCoordinate(tc.lat, tc.lng)
				require.NoError(t, err)
			})
		}
	})

	t.Run("rejects out of range latitude", func(t *testing.T) {
		_, err := kernel.NewCoordinate(91, 0)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects out of range longitude", func(t *testing.T) {
		_, err := kernel.NewCoordinate(0, -180.5)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("joins errors for both invalid components", func(t *testing.T) {
		_, err := kernel.NewCoordinate(-100, 200)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestCoordinate_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var point kernel.Coordinate

		err := point.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("constructed coordinate passes validation", func(t *testing.T) {
		point, _ := kernel.NewCoordinate(1, 2)

		require.NoError(t, point.Validate())
	})
}

func TestCoordinate_IsEqual(t *testing.T) {
	t.Run("equal coordinates", func(t *testing.T) {
		a, _ := kernel.NewCoordinate(41.3111, 69.2797)
		b, _ := kernel.NewCoordinate(41.3111, 69.2797)

		equal, err := a.IsEqual(b)

		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("different coordinates", func(t *testing.T) {
		a, _ := kernel.NewCoordinate(41.3111, 69.2797)
		b, _ := kernel.NewCoordinate(41.3111, 69.28)

		equal, err := a.IsEqual(b)

		require.NoError(t, err)
		assert.False(t, equal)
	})

	t.Run("zero value comparison fails", func(t *testing.T) {
		a, _ := kernel.NewCoordinate(1, 2)
		var b kernel.Coordinate

		_, err := a.IsEqual(b)

		require.Error(t, err)
	})
}

func TestCoordinate_IsNear(t *testing.T) {
	t.Run("within tolerance", func(t *testing.T) {
		a, _ := kernel.NewCoordinate(41.31110, 69.27970)
		b, _ := kernel.NewCoordinate(41.31115, 69.27965)

		near, err := a.IsNear(b, 0.001)

		require.NoError(t, err)
		assert.True(t, near)
	})

	t.Run("outside tolerance", func(t *testing.T) {
		a, _ := kernel.NewCoordinate(41.3111, 69.2797)
		b, _ := kernel.NewCoordinate(41.4, 69.2797)

		near, err := a.IsNear(b, 0.001)

		require.NoError(t, err)
		assert.False(t, near)
	})
}
