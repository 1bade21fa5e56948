// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the assignment engine. It implements
// workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - BranchRanker: Ranks fulfillment branches by real-road distance to a customer point
//   - ZoneGeofence: Detects which delivery zone contains a customer point
//   - PricingResolver: Computes the delivery quote from the selected zone and order subtotal
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
