// Package zonerepo provides data transfer objects and mapping functions for zone persistence.
// This package implements the repository pattern for the delivery zone domain aggregate,
// handling the conversion between domain entities and database representations.
package zonerepo

import (
	"encoding/json"

	"geodispatch/internal/core/domain/model/kernel"
	"geodispatch/internal/core/domain/model/zone"

	"github.com/google/uuid"
)

// DeliveryZoneDTO represents the database structure for persisting zone aggregates.
// The polygon geometry is stored as a JSONB array of rings, each ring an array
// of {lat,lng} vertices, matching the shape the admin tooling draws.
type DeliveryZoneDTO struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey"`
	PartnerID             uuid.UUID `gorm:"type:uuid;not null;index"`
	Name                  string    `gorm:"type:varchar(255);not null"`
	Rings                 []byte    `gorm:"type:jsonb;not null"`
	FlatPrice             int64     `gorm:"type:bigint;not null"`
	MinOrderAmount        *int64    `gorm:"type:bigint"`
	FreeDeliveryThreshold *int64    `gorm:"type:bigint"`
	CreationOrder         int64     `gorm:"type:bigint;not null;index"`
}

// TableName specifies the database table name for zone entities.
// Overrides GORM's default naming convention to use "delivery_zones" instead of "delivery_zone_dtos".
func (DeliveryZoneDTO) TableName() string {
	return "delivery_zones"
}

// ringPointDTO is one polygon vertex in the JSONB geometry column.
type ringPointDTO struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// fromDomain converts a zone domain aggregate to its database representation.
func fromDomain(aggregate *zone.DeliveryZone) (DeliveryZoneDTO, error) {
	rings := make([][]ringPointDTO, 0, len(aggregate.Rings()))
	for _, ring := range aggregate.Rings() {
		vertices := make([]ringPointDTO, 0, len(ring.Vertices()))
		for _, vertex := range ring.Vertices() {
			vertices = append(vertices, ringPointDTO{
				Lat: vertex.Latitude(),
				Lng: vertex.Longitude(),
			})
		}
		rings = append(rings, vertices)
	}

	raw, err := json.Marshal(rings)
	if err != nil {
		return DeliveryZoneDTO{}, err
	}

	return DeliveryZoneDTO{
		ID:                    aggregate.ID().Bytes(),
		PartnerID:             aggregate.PartnerID().Bytes(),
		Name:                  aggregate.Name(),
		Rings:                 raw,
		FlatPrice:             aggregate.FlatPrice(),
		MinOrderAmount:        aggregate.MinOrderAmount(),
		FreeDeliveryThreshold: aggregate.FreeDeliveryThreshold(),
		CreationOrder:         aggregate.CreationOrder(),
	}, nil
}

// toDomain converts a database DTO to a zone domain aggregate.
// Reconstructs the polygon geometry from the JSONB column using RestoreDeliveryZone.
func toDomain(dto DeliveryZoneDTO) (*zone.DeliveryZone, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	partnerID, err := kernel.UUIDFromBytes(dto.PartnerID[:])
	if err != nil {
		return nil, err
	}

	var rawRings [][]ringPointDTO
	if err = json.Unmarshal(dto.Rings, &rawRings); err != nil {
		return nil, err
	}

	rings := make([]zone.Ring, 0, len(rawRings))
	for _, rawRing := range rawRings {
		vertices := make([]kernel.Coordinate, 0, len(rawRing))
		for _, point := range rawRing {
			vertex, coordErr := kernel.NewCoordinate(point.Lat, point.Lng)
			if coordErr != nil {
				return nil, coordErr
			}
			vertices = append(vertices, vertex)
		}

		ring, ringErr := zone.NewRing(vertices)
		if ringErr != nil {
			return nil, ringErr
		}
		rings = append(rings, ring)
	}

	return zone.RestoreDeliveryZone(id, partnerID, dto.Name, rings,
		dto.FlatPrice, dto.MinOrderAmount, dto.FreeDeliveryThreshold, dto.CreationOrder)
}
