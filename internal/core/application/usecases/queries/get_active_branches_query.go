// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"geodispatch/internal/core/domain/model/kernel"
	"geodispatch/internal/pkg/guard"
)

var ErrGetActiveBranchesQueryIsNotConstructed = errors.New(
	"GetActiveBranchesQuery must be created via NewGetActiveBranchesQuery constructor",
)

// GetActiveBranchesQuery retrieves the branches of one partner that are
// currently accepting orders, for display in branch pickers and admin views.
//
// Example:
//
//	query, err := NewGetActiveBranchesQuery(partnerID)
//	if err != nil {
//	    return fmt.Errorf("invalid partner: %w", err)
//	}
//
//	handler := NewGetActiveBranchesQueryHandler(db)
//	branches, err := handler.Handle(ctx, query)
type GetActiveBranchesQuery struct { //nolint:recvcheck //using for validation
	partnerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetActiveBranchesQuery creates a query scoped to one partner.
// Validates that the partner identifier is a constructed UUID.
func NewGetActiveBranchesQuery(partnerID kernel.UUID) (GetActiveBranchesQuery, error) {
	query := GetActiveBranchesQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setPartnerID(partnerID); err != nil {
		return GetActiveBranchesQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetActiveBranchesQueryIsNotConstructed if validation fails.
func (q GetActiveBranchesQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveBranchesQueryIsNotConstructed)
}

// PartnerID returns the partner whose branches are requested.
func (q GetActiveBranchesQuery) PartnerID() kernel.UUID {
	return q.partnerID
}

func (q *GetActiveBranchesQuery) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	q.partnerID = partnerID
	return nil
}

// GetActiveBranchesQueryResponse represents branch information in the read
// model. Latitude and Longitude are nil while the branch address has not
// been geocoded yet.
type GetActiveBranchesQueryResponse struct {
	ID        kernel.UUID
	Name      string
	Address   string
	Latitude  *float64
	Longitude *float64
}
