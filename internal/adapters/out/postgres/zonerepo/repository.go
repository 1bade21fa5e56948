package zonerepo

import (
	"context"
	"errors"

	"geodispatch/internal/core/domain/model/kernel"
	"geodispatch/internal/core/domain/model/zone"
	"geodispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormZoneRepository implements ZoneRepository using GORM.
type GormZoneRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormZoneRepository creates a new GORM zone repository.
func NewGormZoneRepository(db *gorm.DB, tracker aggregateTracker) *GormZoneRepository {
	return &GormZoneRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new zone to the database.
func (r *GormZoneRepository) Add(ctx context.Context, aggregate *zone.DeliveryZone) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a zone by ID.
func (r *GormZoneRepository) Get(ctx context.Context, id kernel.UUID) (*zone.DeliveryZone, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryZoneDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery zone", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActive retrieves the partner's zones sorted by ascending creation
// order. This ordering is load-bearing: automatic zone detection evaluates
// zones in exactly this sequence.
func (r *GormZoneRepository) GetAllActive(ctx context.Context, partnerID kernel.UUID) ([]*zone.DeliveryZone, error) {
	if err := partnerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []DeliveryZoneDTO
	if err := r.db.WithContext(ctx).
		Where("partner_id = ?", partnerID.Bytes()).
		Order("creation_order").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	zones := make([]*zone.DeliveryZone, 0, len(dtos))
	for _, dto := range dtos {
		z, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		zones = append(zones, z)
	}

	return zones, nil
}
