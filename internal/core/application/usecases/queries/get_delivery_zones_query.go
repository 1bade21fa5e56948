package queries

import (
	"errors"

	"geodispatch/internal/core/domain/model/kernel"
	"geodispatch/internal/pkg/guard"
)

var ErrGetDeliveryZonesQueryIsNotConstructed = errors.New(
	"GetDeliveryZonesQuery must be created via NewGetDeliveryZonesQuery constructor",
)

// GetDeliveryZonesQuery retrieves the delivery zones of one partner in
// creation order, for zone pickers and coverage overviews.
type GetDeliveryZonesQuery struct { //nolint:recvcheck //using for validation
	partnerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveryZonesQuery creates a query scoped to one partner.
// Validates that the partner identifier is a constructed UUID.
func NewGetDeliveryZonesQuery(partnerID kernel.UUID) (GetDeliveryZonesQuery, error) {
	query := GetDeliveryZonesQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setPartnerID(partnerID); err != nil {
		return GetDeliveryZonesQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDeliveryZonesQueryIsNotConstructed if validation fails.
func (q GetDeliveryZonesQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryZonesQueryIsNotConstructed)
}

// PartnerID returns the partner whose zones are requested.
func (q GetDeliveryZonesQuery) PartnerID() kernel.UUID {
	return q.partnerID
}

func (q *GetDeliveryZonesQuery) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	q.partnerID = partnerID
	return nil
}

// GetDeliveryZonesQueryResponse represents delivery zone information in the
// read model. Monetary amounts are minor currency units; MinOrderAmount and
// FreeDeliveryThreshold are nil when the zone does not use the rule.
type GetDeliveryZonesQueryResponse struct {
	ID                    kernel.UUID
	Name                  string
	FlatPrice             int64
	MinOrderAmount        *int64
	FreeDeliveryThreshold *int64
	CreationOrder         int64
	RingCount             int64
}
