package commands

import (
	"errors"

	"geodispatch/internal/pkg/guard"
)

var ErrRefreshBranchCoordinatesCommandIsNotConstructed = errors.New(
	"RefreshBranchCoordinatesCommand must be created via NewRefreshBranchCoordinatesCommand constructor",
)

// RefreshBranchCoordinatesCommand requests geocoding for every branch whose
// address has not been resolved to a coordinate yet. Parameterless; the
// handler discovers the pending branches itself.
type RefreshBranchCoordinatesCommand struct {
	guard guard.ConstructorGuard
}

// NewRefreshBranchCoordinatesCommand creates the refresh command.
func NewRefreshBranchCoordinatesCommand() RefreshBranchCoordinatesCommand {
	return RefreshBranchCoordinatesCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
// Returns ErrRefreshBranchCoordinatesCommandIsNotConstructed if validation fails.
func (c RefreshBranchCoordinatesCommand) Validate() error {
	return c.guard.Validate(ErrRefreshBranchCoordinatesCommandIsNotConstructed)
}
