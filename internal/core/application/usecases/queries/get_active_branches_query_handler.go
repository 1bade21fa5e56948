package queries

import (
	"context"

	"geodispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveBranchesQueryHandler retrieves active branch information from the
// database. Uses direct SQL queries for optimal read performance in the CQRS
// pattern.
type GetActiveBranchesQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveBranchesQueryHandler creates a handler for branch retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetActiveBranchesQueryHandler(db *gorm.DB) GetActiveBranchesQueryHandler {
	return GetActiveBranchesQueryHandler{db: db}
}

// Handle executes the query to retrieve the partner's accepting branches.
// Returns a slice of branch read models sorted by name.
func (h GetActiveBranchesQueryHandler) Handle(
	ctx context.Context,
	query GetActiveBranchesQuery,
) ([]GetActiveBranchesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	branches := make([]GetActiveBranchesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			address,
			coordinate_lat,
			coordinate_lng
		FROM branches
		WHERE partner_id = ? AND is_accepting_orders
		ORDER BY name
	`, query.PartnerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetActiveBranchesQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&response.Name,
			&response.Address,
			&response.Latitude,
			&response.Longitude,
		)
		if err != nil {
			return nil, err
		}

		branchID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = branchID
		branches = append(branches, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return branches, nil
}
