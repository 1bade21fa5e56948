// Package orderrepo persists assignment outcomes against draft orders.
// The engine never creates orders itself; the ordering system inserts draft
// rows and this repository fills in the assignment columns at submission.
package orderrepo

import (
	"geodispatch/internal/core/ports"

	"github.com/google/uuid"
)

// OrderDTO represents the assignment-facing columns of the orders table.
// The ordering system owns the rest of the row; only the columns below are
// written by this repository.
type OrderDTO struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	BranchID            *uuid.UUID `gorm:"type:uuid;index"`
	ZoneID              *uuid.UUID `gorm:"type:uuid;index"`
	CoordinateLat       *float64   `gorm:"type:double precision"`
	CoordinateLng       *float64   `gorm:"type:double precision"`
	FormattedAddress    *string    `gorm:"type:text"`
	DistanceKm          *float64   `gorm:"type:double precision"`
	DurationMinutes     *float64   `gorm:"type:double precision"`
	DeliveryPrice       *int64     `gorm:"type:bigint"`
	IsManualZone        bool       `gorm:"type:boolean;not null;default:false"`
	IsFreeDelivery      bool       `gorm:"type:boolean;not null;default:false"`
	IsBelowMinimumOrder bool       `gorm:"type:boolean;not null;default:false"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders" instead of "order_dtos".
func (OrderDTO) TableName() string {
	return "orders"
}

// assignmentColumns builds the update map for attaching an assignment record
// to a draft order. Uses a map so that nil optional values clear columns left
// over from a previous submission of the same order.
func assignmentColumns(record ports.OrderAssignmentRecord) map[string]interface{} {
	branchID := record.BranchID.Bytes()
	lat := record.Coordinate.Latitude()
	lng := record.Coordinate.Longitude()

	columns := map[string]interface{}{
		"branch_id":              branchID,
		"zone_id":                nil,
		"coordinate_lat":         lat,
		"coordinate_lng":         lng,
		"formatted_address":      record.FormattedAddress,
		"distance_km":            record.DistanceKm,
		"duration_minutes":       record.DurationMinutes,
		"delivery_price":         nil,
		"is_manual_zone":         record.IsManualZone,
		"is_free_delivery":       record.IsFreeDelivery,
		"is_below_minimum_order": record.IsBelowMinimumOrder,
	}

	if record.ZoneID != nil {
		columns["zone_id"] = record.ZoneID.Bytes()
	}
	if record.DeliveryPrice != nil {
		columns["delivery_price"] = *record.DeliveryPrice
	}

	return columns
}
