package services_test

import (
	"testing"

	"geodispatch/internal/core/domain/model/assignment"
	"geodispatch/internal/core/domain/model/kernel"
	"geodispatch/internal/core/domain/model/zone"
	"geodispatch/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pricedZone(t *testing.T, flatPrice int64, minOrder, freeThreshold *int64) *zone.DeliveryZone {
	t.Helper()
	ring, err := zone.NewRing([]kernel.Coordinate{
		mustCoordinate(t, 0, 0),
		mustCoordinate(t, 0, 1),
		mustCoordinate(t, 1, 1),
		mustCoordinate(t, 1, 0),
	})
	require.NoError(t, err)

	z, err := zone.NewDeliveryZone(kernel.NewUUID(), kernel.NewUUID(), "Downtown",
		[]zone.Ring{ring}, flatPrice, minOrder, freeThreshold, 1)
	require.NoError(t, err)
	return z
}

func int64Ptr(v int64) *int64 {
	return &v
}

func TestPricingResolver_Quote(t *testing.T) {
	resolver := services.NewPricingResolver()

	t.Run("flat price applies for delivery inside a zone", func(t *testing.T) {
		z := pricedZone(t, 5000, nil, nil)

		quote, err := resolver.Quote(z, 30000, assignment.Delivery)

		require.NoError(t, err)
		require.NotNil(t, quote.DeliveryPrice)
		assert.Equal(t, int64(5000), *quote.DeliveryPrice)
		assert.False(t, quote.IsFreeDelivery)
		assert.False(t, quote.IsBelowMinimumOrder)
	})

	t.Run("free delivery threshold is inclusive", func(t *testing.T) {
		z := pricedZone(t, 5000, nil, int64Ptr(100000))

		quote, err := resolver.Quote(z, 100000, assignment.Delivery)

		require.NoError(t, err)
		require.NotNil(t, quote.DeliveryPrice)
		assert.Equal(t, int64(0), *quote.DeliveryPrice)
		assert.True(t, quote.IsFreeDelivery)
	})

	t.Run("one unit below threshold keeps the regular price", func(t *testing.T) {
		z := pricedZone(t, 5000, nil, int64Ptr(100000))

		quote, err := resolver.Quote(z, 99999, assignment.Delivery)

		require.NoError(t, err)
		require.NotNil(t, quote.DeliveryPrice)
		assert.Equal(t, int64(5000), *quote.DeliveryPrice)
		assert.False(t, quote.IsFreeDelivery)
	})

	t.Run("below minimum order is flagged with the price still quoted", func(t *testing.T) {
		z := pricedZone(t, 5000, int64Ptr(50000), nil)

		quote, err := resolver.Quote(z, 20000, assignment.Delivery)

		require.NoError(t, err)
		require.NotNil(t, quote.DeliveryPrice)
		assert.Equal(t, int64(5000), *quote.DeliveryPrice)
		assert.True(t, quote.IsBelowMinimumOrder)
	})

	t.Run("subtotal equal to minimum order passes", func(t *testing.T) {
		z := pricedZone(t, 5000, int64Ptr(50000), nil)

		quote, err := resolver.Quote(z, 50000, assignment.Delivery)

		require.NoError(t, err)
		assert.False(t, quote.IsBelowMinimumOrder)
	})

	t.Run("below minimum and above free threshold combine", func(t *testing.T) {
		z := pricedZone(t, 5000, int64Ptr(200000), int64Ptr(100000))

		quote, err := resolver.Quote(z, 150000, assignment.Delivery)

		require.NoError(t, err)
		require.NotNil(t, quote.DeliveryPrice)
		assert.Equal(t, int64(0), *quote.DeliveryPrice)
		assert.True(t, quote.IsFreeDelivery)
		assert.True(t, quote.IsBelowMinimumOrder)
	})

	t.Run("pickup ignores every zone rule", func(t *testing.T) {
		z := pricedZone(t, 5000, int64Ptr(50000), int64Ptr(100000))

		quote, err := resolver.Quote(z, 100, assignment.Pickup)

		require.NoError(t, err)
		assert.Nil(t, quote.DeliveryPrice)
		assert.False(t, quote.IsFreeDelivery)
		assert.False(t, quote.IsBelowMinimumOrder)
	})

	t.Run("no zone means no price for delivery", func(t *testing.T) {
		quote, err := resolver.Quote(nil, 30000, assignment.Delivery)

		require.NoError(t, err)
		assert.Nil(t, quote.DeliveryPrice)
		assert.False(t, quote.IsBelowMinimumOrder)
	})

	t.Run("negative subtotal is rejected", func(t *testing.T) {
		z := pricedZone(t, 5000, nil, nil)

		_, err := resolver.Quote(z, -1, assignment.Delivery)

		require.Error(t, err)
	})

	t.Run("unknown fulfillment type is rejected", func(t *testing.T) {
		_, err := resolver.Quote(nil, 100, assignment.FulfillmentUnknown)

		require.Error(t, err)
	})
}
