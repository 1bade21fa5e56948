package zone

import (
	"errors"

	"geodispatch/internal/core/domain/model/kernel"
	"geodispatch/internal/pkg/errs"
)

// ErrDeliveryZoneIsNotConstructed is returned when a DeliveryZone instance was
// not created through the NewDeliveryZone or RestoreDeliveryZone factory methods.
var ErrDeliveryZoneIsNotConstructed = errors.New(
	"DeliveryZone must be created via NewDeliveryZone or RestoreDeliveryZone constructor")

// DeliveryZone is the aggregate root for a courier delivery zone.
//
// DeliveryZone follows these invariants:
//   - Must have a valid unique identifier and partner identifier
//   - Must have a non-empty name and at least one ring
//   - Flat price is a non-negative amount in minor currency units
//   - Minimum order amount and free-delivery threshold are optional rules;
//     when absent, the corresponding check never applies
//   - Creation order is a monotonically growing sequence number assigned at
//     creation time; automatic zone detection evaluates zones in ascending
//     creation order
//
// A zone may own multiple disjoint rings, e.g. two separate neighborhoods
// sharing one delivery price.
type DeliveryZone struct {
	// id is the unique identifier for the zone
	id kernel.UUID

	// partnerID scopes the zone to its owning partner
	partnerID kernel.UUID

	// name is the display name of the zone
	name string

	// rings bound the zone's area (evaluated in stored order)
	rings []Ring

	// flatPrice is the delivery fee in minor currency units
	flatPrice int64

	// minOrderAmount is the optional minimum order subtotal for delivery
	minOrderAmount *int64

	// freeDeliveryThreshold is the optional subtotal at which delivery is free
	freeDeliveryThreshold *int64

	// creationOrder fixes the zone's position in automatic detection
	creationOrder int64

	// isConstructed ensures the zone was created via a constructor
	isConstructed bool
}

// NewDeliveryZone creates a DeliveryZone with validation.
//
// All rings must be properly constructed, the flat price must be non-negative,
// and the optional amount rules, when present, must be non-negative as well.
func NewDeliveryZone(
	id kernel.UUID,
	partnerID kernel.UUID,
	name string,
	rings []Ring,
	flatPrice int64,
	minOrderAmount *int64,
	freeDeliveryThreshold *int64,
	creationOrder int64,
) (*DeliveryZone, error) {
	z := &DeliveryZone{
		isConstructed: true,
	}

	if err := errors.Join(
		z.setID(id),
		z.setPartnerID(partnerID),
		z.setName(name),
		z.setRings(rings),
		z.setFlatPrice(flatPrice),
		z.setMinOrderAmount(minOrderAmount),
		z.setFreeDeliveryThreshold(freeDeliveryThreshold),
		z.setCreationOrder(creationOrder),
	); err != nil {
		return nil, err
	}

	return z, nil
}

// RestoreDeliveryZone reconstructs a DeliveryZone from persisted state.
// Used by repositories when loading reference data.
func RestoreDeliveryZone(
	id kernel.UUID,
	partnerID kernel.UUID,
	name string,
	rings []Ring,
	flatPrice int64,
	minOrderAmount *int64,
	freeDeliveryThreshold *int64,
	creationOrder int64,
) (*DeliveryZone, error) {
	return NewDeliveryZone(id, partnerID, name, rings, flatPrice, minOrderAmount, freeDeliveryThreshold, creationOrder)
}

// Validate ensures the DeliveryZone was properly constructed through a factory method.
func (z *DeliveryZone) Validate() error {
	if z == nil || !z.isConstructed {
		return ErrDeliveryZoneIsNotConstructed
	}

	return nil
}

// ID returns the zone's unique identifier.
func (z *DeliveryZone) ID() kernel.UUID {
	return z.id
}

// PartnerID returns the identifier of the partner the zone belongs to.
func (z *DeliveryZone) PartnerID() kernel.UUID {
	return z.partnerID
}

// Name returns the display name of the zone.
func (z *DeliveryZone) Name() string {
	return z.name
}

// Rings returns a copy of the zone's ring collection.
func (z *DeliveryZone) Rings() []Ring {
	copied := make([]Ring, len(z.rings))
	copy(copied, z.rings)
	return copied
}

// FlatPrice returns the delivery fee in minor currency units.
func (z *DeliveryZone) FlatPrice() int64 {
	return z.flatPrice
}

// MinOrderAmount returns the optional minimum order subtotal for delivery.
// Returns nil when the zone carries no minimum-order rule.
func (z *DeliveryZone) MinOrderAmount() *int64 {
	return z.minOrderAmount
}

// FreeDeliveryThreshold returns the optional subtotal at which delivery
// becomes free. Returns nil when the zone carries no free-delivery rule.
func (z *DeliveryZone) FreeDeliveryThreshold() *int64 {
	return z.freeDeliveryThreshold
}

// CreationOrder returns the zone's position in the automatic detection sequence.
func (z *DeliveryZone) CreationOrder() int64 {
	return z.creationOrder
}

// Contains reports whether the given point lies inside any of the zone's rings.
// Rings are evaluated in stored order and the first containing ring wins.
func (z *DeliveryZone) Contains(point kernel.Coordinate) bool {
	for _, ring := range z.rings {
		if ring.Contains(point) {
			return true
		}
	}

	return false
}

// IsEqual compares two zones by their unique identifiers.
func (z *DeliveryZone) IsEqual(other *DeliveryZone) bool {
	return other != nil && z.id.IsEqual(other.id)
}

func (z *DeliveryZone) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	z.id = id
	return nil
}

func (z *DeliveryZone) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	z.partnerID = partnerID
	return nil
}

func (z *DeliveryZone) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	z.name = name
	return nil
}

func (z *DeliveryZone) setRings(rings []Ring) error {
	if len(rings) == 0 {
		return errs.NewValueIsRequiredError("rings")
	}

	for _, ring := range rings {
		if err := ring.Validate(); err != nil {
			return err
		}
	}

	z.rings = make([]Ring, len(rings))
	copy(z.rings, rings)
	return nil
}

func (z *DeliveryZone) setFlatPrice(flatPrice int64) error {
	if flatPrice < 0 {
		return errs.NewValueIsInvalidError("flatPrice")
	}

	z.flatPrice = flatPrice
	return nil
}

func (z *DeliveryZone) setMinOrderAmount(minOrderAmount *int64) error {
	if minOrderAmount != nil && *minOrderAmount < 0 {
		return errs.NewValueIsInvalidError("minOrderAmount")
	}

	z.minOrderAmount = minOrderAmount
	return nil
}

func (z *DeliveryZone) setFreeDeliveryThreshold(freeDeliveryThreshold *int64) error {
	if freeDeliveryThreshold != nil && *freeDeliveryThreshold < 0 {
		return errs.NewValueIsInvalidError("freeDeliveryThreshold")
	}

	z.freeDeliveryThreshold = freeDeliveryThreshold
	return nil
}

func (z *DeliveryZone) setCreationOrder(creationOrder int64) error {
	if creationOrder < 0 {
		return errs.NewValueIsInvalidError("creationOrder")
	}

	z.creationOrder = creationOrder
	return nil
}
