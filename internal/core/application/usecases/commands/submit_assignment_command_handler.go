package commands

import (
	"context"
	"log/slog"

	"geodispatch/internal/core/domain/model/assignment"
	"geodispatch/internal/core/domain/model/kernel"
	"geodispatch/internal/core/ports"
)

// SubmitAssignmentCommandHandler persists the final assignment outcome on the
// draft order and publishes an integration event for downstream consumers.
//
// The event is published only after the transaction commits. A publish
// failure is logged and swallowed; the committed assignment is the source of
// truth and consumers reconcile from the database.
type SubmitAssignmentCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewSubmitAssignmentCommandHandler creates a handler for assignment submission.
// The publisher may be nil when no message broker is configured.
func NewSubmitAssignmentCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) SubmitAssignmentCommandHandler {
	return SubmitAssignmentCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle attaches the assignment outcome to the draft order inside a
// transaction and emits an AssignmentSubmittedEvent on success.
func (h *SubmitAssignmentCommandHandler) Handle(ctx context.Context, cmd SubmitAssignmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	record := recordFromResult(cmd.OrderID(), cmd.Result())

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().SaveAssignment(ctx, record); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	h.publish(ctx, record)
	return nil
}

func (h *SubmitAssignmentCommandHandler) publish(ctx context.Context, record ports.OrderAssignmentRecord) {
	if h.publisher == nil {
		return
	}

	event := ports.AssignmentSubmittedEvent{
		OrderID:             record.OrderID.String(),
		BranchID:            record.BranchID.String(),
		Latitude:            record.Coordinate.Latitude(),
		Longitude:           record.Coordinate.Longitude(),
		DistanceKm:          record.DistanceKm,
		DeliveryPrice:       record.DeliveryPrice,
		IsManualZone:        record.IsManualZone,
		IsFreeDelivery:      record.IsFreeDelivery,
		IsBelowMinimumOrder: record.IsBelowMinimumOrder,
	}
	if record.ZoneID != nil {
		zoneID := record.ZoneID.String()
		event.ZoneID = &zoneID
	}

	if err := h.publisher.PublishAssignmentSubmitted(ctx, event); err != nil && h.logger != nil {
		h.logger.Error("failed to publish assignment submitted event",
			"order_id", event.OrderID, "error", err)
	}
}

func recordFromResult(orderID kernel.UUID, result assignment.Result) ports.OrderAssignmentRecord {
	record := ports.OrderAssignmentRecord{
		OrderID:             orderID,
		BranchID:            result.Branch.ID(),
		Coordinate:          *result.Coordinate,
		FormattedAddress:    result.FormattedAddress,
		DistanceKm:          result.DistanceKm,
		DurationMinutes:     result.DurationMinutes,
		DeliveryPrice:       result.DeliveryPrice,
		IsManualZone:        result.IsManualZone,
		IsFreeDelivery:      result.IsFreeDelivery,
		IsBelowMinimumOrder: result.IsBelowMinimumOrder,
	}

	if result.Zone != nil {
		zoneID := result.Zone.ID()
		record.ZoneID = &zoneID
	}

	return record
}
