package services

import (
	"sort"

	"geodispatch/internal/core/domain/model/kernel"
	"geodispatch/internal/core/domain/model/zone"
)

// ZoneGeofence is a domain service that detects which delivery zone contains
// a customer point.
//
// Business rules:
//   - Zones are evaluated in ascending creation order
//   - The first zone containing the point wins; later overlapping zones are ignored
//   - A point outside every zone yields nil, which is a valid outcome
//     (out of coverage), not an error
type ZoneGeofence struct{}

// NewZoneGeofence creates a new ZoneGeofence instance.
//
// Returns:
//   - ZoneGeofence: A new instance ready for detection operations
func NewZoneGeofence() ZoneGeofence {
	return ZoneGeofence{}
}

// Detect finds the first zone, in creation order, whose geometry contains
// the given point.
//
// Parameters:
//   - point: The resolved customer coordinate
//   - zones: Candidate zones, in any order
//
// Returns:
//   - *zone.DeliveryZone: The matching zone, or nil when the point is outside
//     every zone
//   - error: Coordinate validation errors only
func (g ZoneGeofence) Detect(point kernel.Coordinate, zones []*zone.DeliveryZone) (*zone.DeliveryZone, error) {
	if err := point.Validate(); err != nil {
		return nil, err
	}

	ordered := make([]*zone.DeliveryZone, len(zones))
	copy(ordered, zones)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CreationOrder() < ordered[j].CreationOrder()
	})

	for _, z := range ordered {
		if z.Contains(point) {
			return z, nil
		}
	}

	return nil, nil
}
