package assignment

import (
	"fmt"

	"geodispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of an assignment session.
// It implements a state machine with defined transitions so that manual zone
// overrides and automatic detection cannot interleave in surprising ways.
//
// State transitions:
//
//	Unresolved ──> Resolved <──> ManualOverride
//
// A session starts Unresolved (no delivery coordinate yet). Resolving a
// coordinate moves it to Resolved. Pinning a zone moves it to ManualOverride;
// clearing the pin returns it to Resolved. Resolving a new coordinate while
// an override is active keeps the override.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Unresolved is the initial status: no delivery coordinate is known yet.
	Unresolved

	// Resolved indicates a coordinate is known and branch, zone and price
	// have been computed by automatic detection.
	Resolved

	// ManualOverride indicates an operator pinned a zone; automatic zone
	// detection is suppressed until the pin is cleared.
	ManualOverride
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:  "Unknown",
		Unresolved:     "Unresolved",
		Resolved:       "Resolved",
		ManualOverride: "ManualOverride",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Unresolved:     "Unresolved",
		Resolved:       "Resolved",
		ManualOverride: "ManualOverride",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are: Unresolved, Resolved, ManualOverride.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements the fmt.Stringer interface and is safe to call on any Status
// value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Resolve returns the status after a delivery coordinate has been resolved.
// From Unresolved or Resolved the session becomes Resolved; an active manual
// override survives coordinate changes and the status stays ManualOverride.
func (s Status) Resolve() (Status, error) {
	switch s {
	case Unresolved, Resolved:
		return Resolved, nil
	case ManualOverride:
		return ManualOverride, nil
	default:
		return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("cannot resolve coordinate from status %s", s))
	}
}

// PinZone returns the status after an operator pinned a zone manually.
// Pinning requires a resolved session; re-pinning while an override is active
// replaces the pinned zone.
func (s Status) PinZone() (Status, error) {
	switch s {
	case Resolved, ManualOverride:
		return ManualOverride, nil
	default:
		return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("cannot pin zone from status %s", s))
	}
}

// ClearZone returns the status after a manual override has been cleared.
// Only valid while an override is active.
func (s Status) ClearZone() (Status, error) {
	if s != ManualOverride {
		return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("cannot clear zone override from status %s", s))
	}
	return Resolved, nil
}
