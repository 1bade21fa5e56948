package queries

import (
	"context"

	"geodispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeliveryZonesQueryHandler retrieves delivery zone information from the
// database. Reads the pricing columns directly and summarizes the geometry
// as a ring count instead of materializing full polygons.
type GetDeliveryZonesQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryZonesQueryHandler creates a handler for zone retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetDeliveryZonesQueryHandler(db *gorm.DB) GetDeliveryZonesQueryHandler {
	return GetDeliveryZonesQueryHandler{db: db}
}

// Handle executes the query to retrieve the partner's zones.
// Returns a slice of zone read models sorted by creation order.
func (h GetDeliveryZonesQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryZonesQuery,
) ([]GetDeliveryZonesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	zones := make([]GetDeliveryZonesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			flat_price,
			min_order_amount,
			free_delivery_threshold,
			creation_order,
			jsonb_array_length(rings) AS ring_count
		FROM delivery_zones
		WHERE partner_id = ?
		ORDER BY creation_order
	`, query.PartnerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetDeliveryZonesQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&response.Name,
			&response.FlatPrice,
			&response.MinOrderAmount,
			&response.FreeDeliveryThreshold,
			&response.CreationOrder,
			&response.RingCount,
		)
		if err != nil {
			return nil, err
		}

		zoneID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = zoneID
		zones = append(zones, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return zones, nil
}
