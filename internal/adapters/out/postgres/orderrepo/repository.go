package orderrepo

import (
	"context"

	"geodispatch/internal/core/domain/model/kernel"
	"geodispatch/internal/core/ports"
	"geodispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// SaveAssignment attaches the assignment outcome to an existing draft order.
// Returns errs.ObjectNotFoundError when no row with the record's OrderID
// exists; the engine must never insert order rows itself.
func (r *GormOrderRepository) SaveAssignment(ctx context.Context, record ports.OrderAssignmentRecord) error {
	if err := record.OrderID.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", record.OrderID.Bytes()).
		Updates(assignmentColumns(record))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", record.OrderID.String())
	}

	r.tracker.TrackAggregate(record.OrderID, record)
	return nil
}
