// Package zone contains the courier delivery zone aggregate and its polygon
// geometry.
//
// A delivery zone is a named geographic region with its own flat delivery fee
// and order-amount rules. Its area is described by one or more rings: closed
// polygonal outlines without holes. Zones are reference data maintained
// through administrative tooling; the assignment engine only reads them and
// tests points against their geometry.
package zone
