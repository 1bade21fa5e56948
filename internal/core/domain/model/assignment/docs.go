// Package assignment contains the per-session assignment aggregate.
//
// An Assignment tracks the outcome of routing one delivery order to a
// fulfillment branch and a pricing tier: the resolved delivery coordinate, the
// nearest branch with its road distance, the delivery zone containing the
// point, and the computed price with its business flags. The aggregate also
// implements the session state machine that governs manual zone overrides.
//
// Assignments are computed fresh per order-edit session and never persisted
// as their own entity; only the resolved scalar fields are written onto the
// order record at submission time.
package assignment
