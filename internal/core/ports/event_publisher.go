package ports

import "context"

// AssignmentSubmittedEvent notifies downstream consumers (notifications,
// analytics) that an assignment outcome was attached to a draft order.
// Published after the database transaction commits.
type AssignmentSubmittedEvent struct {
	OrderID             string  `json:"order_id"`
	BranchID            string  `json:"branch_id"`
	ZoneID              *string `json:"zone_id,omitempty"`
	Latitude            float64 `json:"latitude"`
	Longitude           float64 `json:"longitude"`
	DistanceKm          float64 `json:"distance_km"`
	DeliveryPrice       *int64  `json:"delivery_price,omitempty"`
	IsManualZone        bool    `json:"is_manual_zone"`
	IsFreeDelivery      bool    `json:"is_free_delivery"`
	IsBelowMinimumOrder bool    `json:"is_below_minimum_order"`
}

// EventPublisher delivers integration events to the message broker.
// Publishing is best-effort: a failure is logged by the caller and does not
// roll back the committed assignment.
type EventPublisher interface {
	PublishAssignmentSubmitted(ctx context.Context, event AssignmentSubmittedEvent) error
}
