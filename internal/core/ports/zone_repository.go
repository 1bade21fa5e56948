package ports

import (
	"context"

	"geodispatch/internal/core/domain/model/kernel"
	"geodispatch/internal/core/domain/model/zone"
)

// ZoneRepository defines the persistence contract for delivery zones.
// Zones are reference data maintained by administrative tooling and consumed
// read-mostly by the assignment engine.
type ZoneRepository interface {
	// Add persists a new delivery zone.
	Add(ctx context.Context, aggregate *zone.DeliveryZone) error

	// Get retrieves a zone by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*zone.DeliveryZone, error)

	// GetAllActive retrieves the partner's zones ordered by ascending
	// creation order, which is also the order automatic zone detection
	// evaluates them in.
	GetAllActive(ctx context.Context, partnerID kernel.UUID) ([]*zone.DeliveryZone, error)
}
