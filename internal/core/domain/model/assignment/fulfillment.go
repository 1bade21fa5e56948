package assignment

import (
	"fmt"

	"geodispatch/internal/pkg/errs"
)

// FulfillmentType distinguishes delivery orders from pickup orders.
// Delivery-pricing rules (flat fee, minimum order, free-delivery threshold)
// only apply to delivery fulfillment; pickup orders never carry them.
type FulfillmentType int

const (
	// FulfillmentUnknown represents an invalid or undefined fulfillment type.
	FulfillmentUnknown FulfillmentType = iota

	// Delivery means the order is delivered by courier and zone pricing applies.
	Delivery

	// Pickup means the customer collects the order at the branch.
	Pickup
)

// getFulfillmentStrings returns a map of FulfillmentType values to their string representations.
func getFulfillmentStrings() map[FulfillmentType]string {
	return map[FulfillmentType]string{
		FulfillmentUnknown: "Unknown",
		Delivery:           "Delivery",
		Pickup:             "Pickup",
	}
}

// Validate checks if the FulfillmentType value is valid.
func (f FulfillmentType) Validate() error {
	if f != Delivery && f != Pickup {
		return errs.NewValueIsInvalidErrorWithCause("fulfillmentType",
			fmt.Errorf("%d is not a valid fulfillment type", f))
	}
	return nil
}

// String returns the human-readable name of the fulfillment type.
// Implements the fmt.Stringer interface.
func (f FulfillmentType) String() string {
	if str, ok := getFulfillmentStrings()[f]; ok {
		return str
	}
	return "Unknown"
}

// ParseFulfillmentType converts an external string ("delivery"/"pickup")
// to a FulfillmentType. The comparison is exact and lowercase.
func ParseFulfillmentType(s string) (FulfillmentType, error) {
	switch s {
	case "delivery":
		return Delivery, nil
	case "pickup":
		return Pickup, nil
	default:
		return FulfillmentUnknown, errs.NewValueIsInvalidErrorWithCause("fulfillmentType",
			fmt.Errorf("%q is not a valid fulfillment type", s))
	}
}
