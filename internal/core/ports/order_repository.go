package ports

import (
	"context"

	"geodispatch/internal/core/domain/model/kernel"
)

// OrderAssignmentRecord is the durable outcome of a completed assignment
// session, attached to a draft order. Nullable fields mirror the optional
// parts of the session result: a pickup order has no zone and no delivery
// price, an out-of-coverage delivery has no zone.
type OrderAssignmentRecord struct {
	OrderID             kernel.UUID
	BranchID            kernel.UUID
	ZoneID              *kernel.UUID
	Coordinate          kernel.Coordinate
	FormattedAddress    string
	DistanceKm          float64
	DurationMinutes     float64
	DeliveryPrice       *int64
	IsManualZone        bool
	IsFreeDelivery      bool
	IsBelowMinimumOrder bool
}

// OrderRepository persists assignment outcomes against draft orders.
type OrderRepository interface {
	// SaveAssignment attaches the assignment outcome to an existing draft
	// order. Returns errs.ObjectNotFoundError when no draft order with the
	// record's OrderID exists.
	SaveAssignment(ctx context.Context, record OrderAssignmentRecord) error
}
