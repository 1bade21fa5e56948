package zone

import (
	"fmt"

	"geodispatch/internal/core/domain/model/kernel"
	"geodispatch/internal/pkg/errs"
	"geodispatch/internal/pkg/guard"
)

// MinRingVertices is the smallest number of vertices a ring may carry.
// Fewer than three points cannot bound an area.
const MinRingVertices = 3

// ErrRingIsNotConstructed is returned when attempting to use an improperly
// initialized Ring. Rings must be created via NewRing.
var ErrRingIsNotConstructed = errs.NewValueIsRequiredError(
	"ring must be created via NewRing constructor")

// Ring is an immutable value object describing a closed polygonal outline.
// The vertex sequence is implicitly closed: the last vertex connects back to
// the first. Rings bound solid regions only - there is no hole support.
//
// Geometry is treated as planar in latitude/longitude space. At city scale the
// error introduced by skipping geodesic correction is negligible for zone
// containment purposes.
type Ring struct { //nolint:recvcheck //using for validation
	vertices []kernel.Coordinate
	guard    guard.ConstructorGuard
}

// NewRing creates a Ring from an ordered vertex sequence.
// At least MinRingVertices properly constructed coordinates are required.
// The input slice is copied, so later mutation of the argument does not
// affect the ring.
func NewRing(vertices []kernel.Coordinate) (Ring, error) {
	if len(vertices) < MinRingVertices {
		return Ring{}, errs.NewValueIsInvalidErrorWithCause("ring",
			fmt.Errorf("at least %d vertices required, got %d", MinRingVertices, len(vertices)))
	}

	for i, v := range vertices {
		if err := v.Validate(); err != nil {
			return Ring{}, errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("ring vertex %d", i), err)
		}
	}

	copied := make([]kernel.Coordinate, len(vertices))
	copy(copied, vertices)

	return Ring{
		vertices: copied,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Ring was created through its constructor.
func (r Ring) Validate() error {
	return r.guard.Validate(ErrRingIsNotConstructed)
}

// Vertices returns a copy of the ring's vertex sequence.
func (r Ring) Vertices() []kernel.Coordinate {
	copied := make([]kernel.Coordinate, len(r.vertices))
	copy(copied, r.vertices)
	return copied
}

// Contains reports whether the given point lies inside the ring.
//
// The test is the standard ray-casting (even-odd) rule over the vertex
// sequence, performed in planar latitude/longitude space with longitude as the
// horizontal axis. A horizontal ray is cast from the point towards positive
// longitude and boundary crossings are counted; an odd count means inside.
//
// Points lying exactly on a ring edge are a boundary case whose outcome may
// vary with floating-point rounding. Callers must not rely on an inclusive or
// exclusive edge convention.
func (r Ring) Contains(point kernel.Coordinate) bool {
	px := point.Longitude()
	py := point.Latitude()

	inside := false
	j := len(r.vertices) - 1
	for i := 0; i < len(r.vertices); i++ {
		xi, yi := r.vertices[i].Longitude(), r.vertices[i].Latitude()
		xj, yj := r.vertices[j].Longitude(), r.vertices[j].Latitude()

		if (yi > py) != (yj > py) &&
			px < (xj-xi)*(py-yi)/(yj-yi)+xi {
			inside = !inside
		}
		j = i
	}

	return inside
}
