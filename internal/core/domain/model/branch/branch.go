package branch

import (
	"errors"

	"geodispatch/internal/core/domain/model/kernel"
	"geodispatch/internal/pkg/errs"
)

// ErrBranchIsNotConstructed is returned when a Branch instance was not created
// through the NewBranch or RestoreBranch factory methods.
var ErrBranchIsNotConstructed = errors.New("Branch must be created via NewBranch or RestoreBranch constructor")

// Branch represents a fulfillment location that can prepare and hand off
// delivery orders.
//
// Branch follows these invariants:
//   - Must have a valid unique identifier and partner identifier
//   - Must have a non-empty name
//   - Coordinate is optional: a branch whose address has not been geocoded yet
//     carries no coordinate and is skipped by distance ranking
//   - A coordinate, once present, is always a complete WGS84 pair
type Branch struct {
	// id is the unique identifier for the branch
	id kernel.UUID

	// partnerID scopes the branch to its owning partner
	partnerID kernel.UUID

	// name is the display name of the branch
	name string

	// address is the free-text street address used for geocoding
	address string

	// coordinate is the resolved position (nil until geocoded)
	coordinate *kernel.Coordinate

	// isAcceptingOrders indicates whether the branch takes new orders
	isAcceptingOrders bool

	// isConstructed ensures the branch was created via a constructor
	isConstructed bool
}

// NewBranch creates a Branch without a resolved coordinate.
// The coordinate is assigned later, once the branch address has been geocoded.
//
// Returns a validation error if the identifier, partner identifier, or name
// is missing.
func NewBranch(
	id kernel.UUID,
	partnerID kernel.UUID,
	name string,
	address string,
	isAcceptingOrders bool,
) (*Branch, error) {
	b := &Branch{
		isAcceptingOrders: isAcceptingOrders,
		isConstructed:     true,
	}

	if err := errors.Join(
		b.setID(id),
		b.setPartnerID(partnerID),
		b.setName(name),
	); err != nil {
		return nil, err
	}

	b.address = address
	return b, nil
}

// RestoreBranch reconstructs a Branch from persisted state, including an
// optional already-resolved coordinate. Used by repositories when loading
// reference data.
func RestoreBranch(
	id kernel.UUID,
	partnerID kernel.UUID,
	name string,
	address string,
	coordinate *kernel.Coordinate,
	isAcceptingOrders bool,
) (*Branch, error) {
	b, err := NewBranch(id, partnerID, name, address, isAcceptingOrders)
	if err != nil {
		return nil, err
	}

	if coordinate != nil {
		if err := b.AssignCoordinate(*coordinate); err != nil {
			return nil, err
		}
	}

	return b, nil
}

// Validate ensures the Branch was properly constructed through a factory method.
func (b *Branch) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBranchIsNotConstructed
	}

	return nil
}

// ID returns the branch's unique identifier.
func (b *Branch) ID() kernel.UUID {
	return b.id
}

// PartnerID returns the identifier of the partner the branch belongs to.
func (b *Branch) PartnerID() kernel.UUID {
	return b.partnerID
}

// Name returns the display name of the branch.
func (b *Branch) Name() string {
	return b.name
}

// Address returns the free-text street address of the branch.
func (b *Branch) Address() string {
	return b.address
}

// Coordinate returns the resolved position of the branch.
// Returns nil when the branch address has not been geocoded yet.
func (b *Branch) Coordinate() *kernel.Coordinate {
	return b.coordinate
}

// HasCoordinate reports whether the branch carries a resolved coordinate
// and can therefore participate in distance ranking.
func (b *Branch) HasCoordinate() bool {
	return b.coordinate != nil
}

// IsAcceptingOrders reports whether the branch currently takes new orders.
func (b *Branch) IsAcceptingOrders() bool {
	return b.isAcceptingOrders
}

// AssignCoordinate records the geocoded position of the branch.
// The coordinate must be a properly constructed WGS84 pair.
func (b *Branch) AssignCoordinate(c kernel.Coordinate) error {
	if err := c.Validate(); err != nil {
		return err
	}

	b.coordinate = &c
	return nil
}

// IsEqual compares two branches by their unique identifiers.
func (b *Branch) IsEqual(other *Branch) bool {
	return other != nil && b.id.IsEqual(other.id)
}

func (b *Branch) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	b.id = id
	return nil
}

func (b *Branch) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	b.partnerID = partnerID
	return nil
}

func (b *Branch) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	b.name = name
	return nil
}
