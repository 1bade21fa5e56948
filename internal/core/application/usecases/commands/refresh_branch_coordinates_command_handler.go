package commands

import (
	"context"
	"errors"
	"log/slog"

	"geodispatch/internal/core/ports"
)

// RefreshBranchCoordinatesCommandHandler geocodes branches that were created
// without a resolved coordinate, making them eligible for distance ranking.
//
// Per-branch behavior:
//   - An address the provider cannot find is logged and skipped; the branch
//     stays pending until its address is corrected
//   - A provider outage aborts the whole run, since every remaining branch
//     would fail the same way
type RefreshBranchCoordinatesCommandHandler struct {
	uowFactory BranchUoWFactory
	geocoder   ports.GeocodingClient
	logger     *slog.Logger
}

// NewRefreshBranchCoordinatesCommandHandler creates a handler for the
// coordinate refresh operation.
func NewRefreshBranchCoordinatesCommandHandler(
	uowFactory BranchUoWFactory,
	geocoder ports.GeocodingClient,
	logger *slog.Logger,
) RefreshBranchCoordinatesCommandHandler {
	return RefreshBranchCoordinatesCommandHandler{
		uowFactory: uowFactory,
		geocoder:   geocoder,
		logger:     logger,
	}
}

// Handle geocodes all pending branches and persists resolved coordinates in
// a single transaction.
func (h *RefreshBranchCoordinatesCommandHandler) Handle(ctx context.Context, cmd RefreshBranchCoordinatesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	branchRepo := uow.BranchRepository()
	pending, err := branchRepo.GetAllMissingCoordinate(ctx)
	if err != nil {
		return err
	}

	for _, b := range pending {
		geocoded, geoErr := h.geocoder.Geocode(ctx, b.Address())
		if geoErr != nil {
			if errors.Is(geoErr, ports.ErrAddressNotFound) {
				if h.logger != nil {
					h.logger.Warn("branch address could not be geocoded",
						"branch_id", b.ID().String(), "address", b.Address())
				}
				continue
			}
			return geoErr
		}

		if err = b.AssignCoordinate(geocoded.Coordinate); err != nil {
			return err
		}

		if err = branchRepo.Update(ctx, b); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
