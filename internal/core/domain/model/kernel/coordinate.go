package kernel

import (
	"errors"
	"fmt"
	"math"

	"geodispatch/internal/pkg/errs"
	"geodispatch/internal/pkg/guard"
)

const (
	// MinLatitude is the southernmost latitude a Coordinate may carry.
	MinLatitude = -90.0
	// MaxLatitude is the northernmost latitude a Coordinate may carry.
	MaxLatitude = 90.0
	// MinLongitude is the westernmost longitude a Coordinate may carry.
	MinLongitude = -180.0
	// MaxLongitude is the easternmost longitude a Coordinate may carry.
	MaxLongitude = 180.0
)

// ErrCoordinateIsNotConstructed is returned when attempting to use an improperly
// initialized Coordinate. Coordinates must be created via NewCoordinate.
var ErrCoordinateIsNotConstructed = errs.NewValueIsRequiredError(
	"coordinate must be created via NewCoordinate constructor")

// Coordinate represents a geographic point as a validated WGS84 pair.
// Coordinate is an immutable value object: once constructed, both the latitude
// and the longitude are set and within valid bounds. A Coordinate is never
// partially populated; optionality is expressed as *Coordinate by the callers
// that need it.
//
// The zero value of Coordinate is invalid and will fail validation - use the
// constructor to create instances.
//
// Example:
//
//	point, err := kernel.NewCoordinate(41.3111, 69.2797)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("Point: %s", point) // Output: Coordinate(41.311100,69.279700)
type Coordinate struct { //nolint:recvcheck //using for validation
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

// NewCoordinate creates a Coordinate from a latitude/longitude pair.
// Latitude must be within [MinLatitude..MaxLatitude] and longitude within
// [MinLongitude..MaxLongitude]; NaN is rejected. Returns a validation error
// if either component is outside its bounds.
func NewCoordinate(lat float64, lng float64) (Coordinate, error) {
	c := Coordinate{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(c.setLatitude(lat), c.setLongitude(lng)); err != nil {
		return Coordinate{}, err
	}

	return c, nil
}

// Validate checks that the Coordinate was created through its constructor.
// The zero value fails this validation.
func (c Coordinate) Validate() error {
	return c.guard.Validate(ErrCoordinateIsNotConstructed)
}

// Latitude returns the latitude component in decimal degrees.
func (c Coordinate) Latitude() float64 {
	return c.lat
}

// Longitude returns the longitude component in decimal degrees.
func (c Coordinate) Longitude() float64 {
	return c.lng
}

// String returns a human-readable representation of the Coordinate.
// Implements the fmt.Stringer interface.
func (c Coordinate) String() string {
	return fmt.Sprintf("Coordinate(%f,%f)", c.lat, c.lng)
}

// IsEqual compares two coordinates for exact equality of both components.
// Both coordinates must be properly constructed for the comparison to succeed.
func (c Coordinate) IsEqual(other Coordinate) (bool, error) {
	if err := errors.Join(c.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return c.lat == other.lat && c.lng == other.lng, nil
}

// IsNear reports whether two coordinates lie within the given tolerance of
// each other on both axes. Useful for round-trip comparisons where exact
// equality is not guaranteed by external providers.
func (c Coordinate) IsNear(other Coordinate, tolerance float64) (bool, error) {
	if err := errors.Join(c.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return math.Abs(c.lat-other.lat) <= tolerance && math.Abs(c.lng-other.lng) <= tolerance, nil
}

// setLatitude sets the latitude with validation.
// Note: We intentionally use a pointer receiver here while other methods use
// value receivers. The private setters enable self-encapsulated validation of
// business requirements during object construction.
func (c *Coordinate) setLatitude(lat float64) error {
	if math.IsNaN(lat) || lat < MinLatitude || lat > MaxLatitude {
		return errs.NewValueIsOutOfRangeError("latitude", lat, MinLatitude, MaxLatitude)
	}

	c.lat = lat
	return nil
}

// setLongitude sets the longitude with validation.
func (c *Coordinate) setLongitude(lng float64) error {
	if math.IsNaN(lng) || lng < MinLongitude || lng > MaxLongitude {
		return errs.NewValueIsOutOfRangeError("longitude", lng, MinLongitude, MaxLongitude)
	}

	c.lng = lng
	return nil
}
