package ports

import (
	"context"

	"geodispatch/internal/core/domain/model/branch"
	"geodispatch/internal/core/domain/model/kernel"
)

// BranchRepository defines the persistence contract for fulfillment branches.
// Branches are reference data: created and edited through administrative
// tooling, read as snapshots by the assignment engine.
type BranchRepository interface {
	// Add persists a new branch.
	Add(ctx context.Context, aggregate *branch.Branch) error

	// Update persists changes to an existing branch, e.g. a freshly
	// geocoded coordinate.
	Update(ctx context.Context, aggregate *branch.Branch) error

	// Get retrieves a branch by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*branch.Branch, error)

	// GetAllAccepting retrieves the partner's branches that currently take
	// new orders, in stable name order. Branches without a resolved
	// coordinate are included; distance ranking filters them out itself so
	// they remain manually selectable.
	GetAllAccepting(ctx context.Context, partnerID kernel.UUID) ([]*branch.Branch, error)

	// GetAllMissingCoordinate retrieves branches whose address has not been
	// geocoded yet, across all partners. Used by the background coordinate
	// refresh job.
	GetAllMissingCoordinate(ctx context.Context) ([]*branch.Branch, error)
}
