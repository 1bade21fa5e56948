package assignment

import (
	"errors"

	"geodispatch/internal/core/domain/model/branch"
	"geodispatch/internal/core/domain/model/kernel"
	"geodispatch/internal/core/domain/model/zone"
)

var (
	// ErrAssignmentIsNotConstructed is returned when an Assignment instance was
	// not created through the NewAssignment factory method.
	ErrAssignmentIsNotConstructed = errors.New("Assignment must be created via NewAssignment constructor")

	// ErrCoordinateNotResolved is returned when an operation requires a
	// resolved delivery coordinate but the session is still Unresolved.
	ErrCoordinateNotResolved = errors.New("delivery coordinate is not resolved yet")

	// ErrZoneIsPinned is returned when automatic zone detection tries to
	// overwrite a manually pinned zone.
	ErrZoneIsPinned = errors.New("zone selection is pinned by manual override")
)

// Assignment is the aggregate root for one order-edit session of the
// assignment engine. It accumulates the outcome of geocoding, branch ranking,
// zone detection, and price resolution, and enforces the session state
// machine around manual zone overrides.
//
// The aggregate is not safe for concurrent use; a session belongs to a single
// order-edit flow.
type Assignment struct {
	// status is the current state in the session lifecycle
	status Status

	// coordinate is the last resolved delivery point (nil while Unresolved)
	coordinate *kernel.Coordinate

	// formattedAddress is the display text matching the coordinate
	formattedAddress string

	// nearestBranch is the branch selected by distance ranking (nil if none)
	nearestBranch *branch.Branch

	// distanceKm and durationMinutes describe the leg to the nearest branch
	distanceKm      float64
	durationMinutes float64

	// selectedZone is the zone containing the point, or the pinned zone
	selectedZone *zone.DeliveryZone

	// deliveryPrice is the resolved fee (nil when no zone is selected)
	deliveryPrice *int64

	// isFreeDelivery and isBelowMinimumOrder are the pricing flags
	isFreeDelivery      bool
	isBelowMinimumOrder bool

	// isConstructed ensures the assignment was created via NewAssignment
	isConstructed bool
}

// Result is an immutable snapshot of an assignment's resolved fields,
// returned to callers after each recalculation. Branch and Zone are nil when
// the corresponding selection could not be made automatically; the caller
// must then fall back to manual selection before submitting the order.
type Result struct {
	Coordinate          *kernel.Coordinate
	FormattedAddress    string
	Branch              *branch.Branch
	Zone                *zone.DeliveryZone
	DistanceKm          float64
	DurationMinutes     float64
	DeliveryPrice       *int64
	IsManualZone        bool
	IsBelowMinimumOrder bool
	IsFreeDelivery      bool
}

// NewAssignment creates an empty assignment session in Unresolved status.
func NewAssignment() *Assignment {
	return &Assignment{
		status:        Unresolved,
		isConstructed: true,
	}
}

// Validate ensures the Assignment was properly constructed through NewAssignment.
func (a *Assignment) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAssignmentIsNotConstructed
	}

	return nil
}

// Status returns the current session status.
func (a *Assignment) Status() Status {
	return a.status
}

// Coordinate returns the last resolved delivery point.
// Returns nil while the session is Unresolved.
func (a *Assignment) Coordinate() *kernel.Coordinate {
	return a.coordinate
}

// FormattedAddress returns the display text matching the resolved coordinate.
func (a *Assignment) FormattedAddress() string {
	return a.formattedAddress
}

// Zone returns the currently selected delivery zone, automatic or pinned.
// Returns nil when no zone is selected.
func (a *Assignment) Zone() *zone.DeliveryZone {
	return a.selectedZone
}

// IsManualZone reports whether the selected zone comes from a manual override.
func (a *Assignment) IsManualZone() bool {
	return a.status == ManualOverride
}

// ResolveCoordinate records a newly resolved delivery point and its display
// address. Moves the session to Resolved, or keeps ManualOverride when an
// override is active (the pinned zone survives coordinate changes).
func (a *Assignment) ResolveCoordinate(c kernel.Coordinate, formattedAddress string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	newStatus, err := a.status.Resolve()
	if err != nil {
		return err
	}

	a.status = newStatus
	a.coordinate = &c
	a.formattedAddress = formattedAddress
	return nil
}

// ApplyBranch records the outcome of distance ranking: the nearest accepting
// branch and its road leg. Requires a resolved coordinate.
func (a *Assignment) ApplyBranch(nearest *branch.Branch, distanceKm, durationMinutes float64) error {
	if a.coordinate == nil {
		return ErrCoordinateNotResolved
	}
	if err := nearest.Validate(); err != nil {
		return err
	}

	a.nearestBranch = nearest
	a.distanceKm = distanceKm
	a.durationMinutes = durationMinutes
	return nil
}

// ClearBranch drops the ranked branch selection, e.g. when no branch had a
// resolvable road leg and the caller must fall back to manual selection.
func (a *Assignment) ClearBranch() {
	a.nearestBranch = nil
	a.distanceKm = 0
	a.durationMinutes = 0
}

// ApplyZone records the outcome of automatic zone detection. A nil zone is a
// valid outcome (the point lies outside every courier zone). Rejected while a
// manual override is active.
func (a *Assignment) ApplyZone(z *zone.DeliveryZone) error {
	if a.coordinate == nil {
		return ErrCoordinateNotResolved
	}
	if a.status == ManualOverride {
		return ErrZoneIsPinned
	}

	a.selectedZone = z
	return nil
}

// PinZone freezes zone selection on the given zone, suppressing automatic
// detection until ClearPinnedZone is called.
func (a *Assignment) PinZone(z *zone.DeliveryZone) error {
	if err := z.Validate(); err != nil {
		return err
	}

	newStatus, err := a.status.PinZone()
	if err != nil {
		return err
	}

	a.status = newStatus
	a.selectedZone = z
	return nil
}

// ClearPinnedZone removes the manual override and drops the pinned zone.
// Automatic detection is expected to re-run immediately afterwards using the
// last known coordinate.
func (a *Assignment) ClearPinnedZone() error {
	newStatus, err := a.status.ClearZone()
	if err != nil {
		return err
	}

	a.status = newStatus
	a.selectedZone = nil
	return nil
}

// ApplyQuote records the resolved delivery price and its business flags.
func (a *Assignment) ApplyQuote(deliveryPrice *int64, isFreeDelivery, isBelowMinimumOrder bool) {
	a.deliveryPrice = deliveryPrice
	a.isFreeDelivery = isFreeDelivery
	a.isBelowMinimumOrder = isBelowMinimumOrder
}

// Result returns a snapshot of the assignment's resolved fields.
func (a *Assignment) Result() Result {
	return Result{
		Coordinate:          a.coordinate,
		FormattedAddress:    a.formattedAddress,
		Branch:              a.nearestBranch,
		Zone:                a.selectedZone,
		DistanceKm:          a.distanceKm,
		DurationMinutes:     a.durationMinutes,
		DeliveryPrice:       a.deliveryPrice,
		IsManualZone:        a.IsManualZone(),
		IsBelowMinimumOrder: a.isBelowMinimumOrder,
		IsFreeDelivery:      a.isFreeDelivery,
	}
}
