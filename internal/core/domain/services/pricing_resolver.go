package services

import (
	"geodispatch/internal/core/domain/model/assignment"
	"geodispatch/internal/core/domain/model/zone"
	"geodispatch/internal/pkg/errs"
)

// PriceQuote is the pricing outcome for an assignment session. DeliveryPrice
// is nil when no price applies: pickup fulfillment or a point outside every
// zone. IsBelowMinimumOrder flags the subtotal as insufficient without
// blocking the quote; enforcement happens at submission.
type PriceQuote struct {
	DeliveryPrice       *int64
	IsFreeDelivery      bool
	IsBelowMinimumOrder bool
}

// PricingResolver is a domain service that computes the delivery quote from
// the selected zone, the order subtotal and the fulfillment type.
//
// Business rules:
//   - Pickup orders carry no delivery price and ignore every zone rule
//   - Delivery without a matched zone yields no price (out of coverage)
//   - A subtotal at or above the zone's free delivery threshold zeroes the
//     price; the threshold is inclusive
//   - A subtotal below the zone's minimum order amount is flagged, with the
//     regular price still quoted so the shortfall can be displayed
type PricingResolver struct{}

// NewPricingResolver creates a new PricingResolver instance.
//
// Returns:
//   - PricingResolver: A new instance ready for quoting operations
func NewPricingResolver() PricingResolver {
	return PricingResolver{}
}

// Quote computes the price for the given zone, subtotal and fulfillment type.
//
// Parameters:
//   - selectedZone: The matched or pinned zone, nil when out of coverage
//   - subtotalAmount: Order subtotal in minor currency units, must not be negative
//   - fulfillment: Delivery or Pickup
//
// Returns:
//   - PriceQuote: The computed quote
//   - error: Validation errors for a negative subtotal or unknown fulfillment type
func (p PricingResolver) Quote(selectedZone *zone.DeliveryZone, subtotalAmount int64, fulfillment assignment.FulfillmentType) (PriceQuote, error) {
	if err := fulfillment.Validate(); err != nil {
		return PriceQuote{}, err
	}

	if subtotalAmount < 0 {
		return PriceQuote{}, errs.NewValueIsInvalidError("subtotalAmount")
	}

	if fulfillment == assignment.Pickup || selectedZone == nil {
		return PriceQuote{}, nil
	}

	quote := PriceQuote{}

	if minOrder := selectedZone.MinOrderAmount(); minOrder != nil && subtotalAmount < *minOrder {
		quote.IsBelowMinimumOrder = true
	}

	price := selectedZone.FlatPrice()
	if threshold := selectedZone.FreeDeliveryThreshold(); threshold != nil && subtotalAmount >= *threshold {
		price = 0
		quote.IsFreeDelivery = true
	}
	quote.DeliveryPrice = &price

	return quote, nil
}
