// Package sessions contains the interactive assignment workflow that runs
// while a customer is completing checkout. A session resolves the delivery
// point, ranks fulfillment branches by road distance, detects the delivery
// zone and quotes the delivery price, keeping all outcomes consistent as the
// customer edits the address or overrides the zone.
package sessions

import (
	"context"
	"errors"

	"geodispatch/internal/core/domain/model/assignment"
	"geodispatch/internal/core/domain/model/branch"
	"geodispatch/internal/core/domain/model/kernel"
	"geodispatch/internal/core/domain/model/zone"
	"geodispatch/internal/core/domain/services"
	"geodispatch/internal/core/ports"
	"geodispatch/internal/pkg/errs"
)

// ErrZoneNotFound is returned when a manual zone override references a zone
// identifier that does not belong to the session's partner.
var ErrZoneNotFound = errors.New("zone not found")

// Session drives one assignment workflow for a single partner. It holds a
// snapshot of the partner's branches and zones taken at session start and an
// Assignment aggregate tracking the resolution state machine.
//
// Recalculation rules:
//   - Every coordinate change re-runs branch ranking and repricing
//   - Automatic zone detection runs only while no manual override is active
//   - A pinned zone survives coordinate changes until explicitly cleared
type Session struct {
	geocoder ports.GeocodingClient
	ranker   services.BranchRanker
	geofence services.ZoneGeofence
	pricing  services.PricingResolver

	partnerID  kernel.UUID
	branches   []*branch.Branch
	zones      []*zone.DeliveryZone
	assignment *assignment.Assignment
}

// Factory creates assignment sessions preloaded with the partner's
// reference data.
type Factory struct {
	geocoder   ports.GeocodingClient
	routes     ports.RouteDistanceClient
	uowFactory ports.UnitOfWorkFactory
}

// NewFactory creates a session factory.
//
// Parameters:
//   - geocoder: Client for forward and reverse geocoding
//   - routes: Client for real-road distance legs
//   - uowFactory: Source of transactional repository access
func NewFactory(
	geocoder ports.GeocodingClient,
	routes ports.RouteDistanceClient,
	uowFactory ports.UnitOfWorkFactory,
) Factory {
	return Factory{
		geocoder:   geocoder,
		routes:     routes,
		uowFactory: uowFactory,
	}
}

// NewSession loads the partner's accepting branches and active zones and
// returns a session in the Unresolved state.
func (f Factory) NewSession(ctx context.Context, partnerID kernel.UUID) (*Session, error) {
	if err := partnerID.Validate(); err != nil {
		return nil, err
	}

	uow := f.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	branches, err := uow.BranchRepository().GetAllAccepting(ctx, partnerID)
	if err != nil {
		return nil, err
	}

	zones, err := uow.ZoneRepository().GetAllActive(ctx, partnerID)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return &Session{
		geocoder:   f.geocoder,
		ranker:     services.NewBranchRanker(f.routes),
		geofence:   services.NewZoneGeofence(),
		pricing:    services.NewPricingResolver(),
		partnerID:  partnerID,
		branches:   branches,
		zones:      zones,
		assignment: assignment.NewAssignment(),
	}, nil
}

// NewSessionWithSnapshot builds a session over an already loaded snapshot of
// branches and zones, bypassing repository access. Intended for callers that
// batch-load reference data themselves and for tests.
func NewSessionWithSnapshot(
	geocoder ports.GeocodingClient,
	routes ports.RouteDistanceClient,
	partnerID kernel.UUID,
	branches []*branch.Branch,
	zones []*zone.DeliveryZone,
) (*Session, error) {
	if err := partnerID.Validate(); err != nil {
		return nil, err
	}

	return &Session{
		geocoder:   geocoder,
		ranker:     services.NewBranchRanker(routes),
		geofence:   services.NewZoneGeofence(),
		pricing:    services.NewPricingResolver(),
		partnerID:  partnerID,
		branches:   branches,
		zones:      zones,
		assignment: assignment.NewAssignment(),
	}, nil
}

// AssignFromAddress resolves a free-text address and recalculates the full
// assignment outcome.
//
// Returns ports.ErrAddressNotFound when the provider produced no result, in
// which case the session state is left untouched so the customer can correct
// the input. Provider outages surface as ports.ErrProviderUnavailable.
func (s *Session) AssignFromAddress(ctx context.Context, addressText string, subtotalAmount int64, fulfillment assignment.FulfillmentType) error {
	if addressText == "" {
		return errs.NewValueIsRequiredError("addressText")
	}

	geocoded, err := s.geocoder.Geocode(ctx, addressText)
	if err != nil {
		return err
	}

	if err = s.assignment.ResolveCoordinate(geocoded.Coordinate, geocoded.FormattedAddress); err != nil {
		return err
	}

	return s.recalculate(ctx, subtotalAmount, fulfillment)
}

// AssignFromCoordinate resolves a map-pin coordinate and recalculates the
// full assignment outcome. The coordinate is reverse geocoded for display;
// a missing reverse result is tolerated with an empty formatted address, but
// a provider outage aborts the operation.
func (s *Session) AssignFromCoordinate(ctx context.Context, point kernel.Coordinate, subtotalAmount int64, fulfillment assignment.FulfillmentType) error {
	if err := point.Validate(); err != nil {
		return err
	}

	formattedAddress, err := s.geocoder.ReverseGeocode(ctx, point)
	if err != nil {
		if !errors.Is(err, ports.ErrAddressNotFound) {
			return err
		}
		formattedAddress = ""
	}

	if err = s.assignment.ResolveCoordinate(point, formattedAddress); err != nil {
		return err
	}

	return s.recalculate(ctx, subtotalAmount, fulfillment)
}

// SetManualZone pins the given zone, suspending automatic detection, and
// reprices against it. The zone must belong to the session's partner.
// Requires a resolved coordinate.
func (s *Session) SetManualZone(ctx context.Context, zoneID kernel.UUID, subtotalAmount int64, fulfillment assignment.FulfillmentType) error {
	if err := zoneID.Validate(); err != nil {
		return err
	}

	pinned := s.findZone(zoneID)
	if pinned == nil {
		return ErrZoneNotFound
	}

	if err := s.assignment.PinZone(pinned); err != nil {
		return err
	}

	return s.reprice(subtotalAmount, fulfillment)
}

// ClearManualZone removes the manual override, re-runs automatic zone
// detection against the current coordinate and reprices.
func (s *Session) ClearManualZone(ctx context.Context, subtotalAmount int64, fulfillment assignment.FulfillmentType) error {
	if err := s.assignment.ClearPinnedZone(); err != nil {
		return err
	}

	detected, err := s.geofence.Detect(*s.assignment.Coordinate(), s.zones)
	if err != nil {
		return err
	}

	if err = s.assignment.ApplyZone(detected); err != nil {
		return err
	}

	return s.reprice(subtotalAmount, fulfillment)
}

// Reprice recomputes only the price against the current zone, for subtotal
// or fulfillment changes that do not move the delivery point.
func (s *Session) Reprice(subtotalAmount int64, fulfillment assignment.FulfillmentType) error {
	return s.reprice(subtotalAmount, fulfillment)
}

// Result returns the current assignment snapshot.
func (s *Session) Result() assignment.Result {
	return s.assignment.Result()
}

// Status returns the current state of the assignment state machine.
func (s *Session) Status() assignment.Status {
	return s.assignment.Status()
}

// PartnerID returns the partner this session belongs to.
func (s *Session) PartnerID() kernel.UUID {
	return s.partnerID
}

// recalculate re-runs ranking, zone detection and pricing after a coordinate
// change. A ranking with zero reachable branches clears the branch outcome
// instead of failing; submission enforces branch presence later.
func (s *Session) recalculate(ctx context.Context, subtotalAmount int64, fulfillment assignment.FulfillmentType) error {
	point := *s.assignment.Coordinate()

	ranking, err := s.ranker.Rank(ctx, point, s.branches)
	switch {
	case errors.Is(err, services.ErrNoBranchReachable):
		s.assignment.ClearBranch()
	case err != nil:
		return err
	default:
		if err = s.assignment.ApplyBranch(ranking.Nearest.Branch, ranking.Nearest.DistanceKm, ranking.Nearest.DurationMinutes); err != nil {
			return err
		}
	}

	if !s.assignment.IsManualZone() {
		detected, detectErr := s.geofence.Detect(point, s.zones)
		if detectErr != nil {
			return detectErr
		}

		if err = s.assignment.ApplyZone(detected); err != nil {
			return err
		}
	}

	return s.reprice(subtotalAmount, fulfillment)
}

func (s *Session) reprice(subtotalAmount int64, fulfillment assignment.FulfillmentType) error {
	quote, err := s.pricing.Quote(s.assignment.Zone(), subtotalAmount, fulfillment)
	if err != nil {
		return err
	}

	s.assignment.ApplyQuote(quote.DeliveryPrice, quote.IsFreeDelivery, quote.IsBelowMinimumOrder)
	return nil
}

func (s *Session) findZone(zoneID kernel.UUID) *zone.DeliveryZone {
	for _, z := range s.zones {
		if z.ID().IsEqual(zoneID) {
			return z
		}
	}
	return nil
}
