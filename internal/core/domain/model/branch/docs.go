// Package branch contains the fulfillment branch entity.
//
// Branches are long-lived reference data maintained through administrative
// tooling and consumed read-only by the assignment engine. A branch may exist
// without a resolved coordinate; such branches are excluded from distance
// ranking but remain manually selectable by operators.
package branch
