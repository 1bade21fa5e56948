// Package branchrepo provides data transfer objects and mapping functions for branch persistence.
// This package implements the repository pattern for the branch domain aggregate, handling
// the conversion between domain entities and database representations.
package branchrepo

import (
	"geodispatch/internal/core/domain/model/branch"
	"geodispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BranchDTO represents the database structure for persisting branch aggregates.
// CoordinateLat and CoordinateLng are nullable together: both are nil until
// the branch address has been geocoded.
type BranchDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	PartnerID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Name              string    `gorm:"type:varchar(255);not null"`
	Address           string    `gorm:"type:text;not null"`
	CoordinateLat     *float64  `gorm:"type:double precision"`
	CoordinateLng     *float64  `gorm:"type:double precision"`
	IsAcceptingOrders bool      `gorm:"type:boolean;not null"`
}

// TableName specifies the database table name for branch entities.
// Overrides GORM's default naming convention to use "branches" instead of "branch_dtos".
func (BranchDTO) TableName() string {
	return "branches"
}

// fromDomain converts a branch domain aggregate to its database representation.
func fromDomain(aggregate *branch.Branch) BranchDTO {
	dto := BranchDTO{
		ID:                aggregate.ID().Bytes(),
		PartnerID:         aggregate.PartnerID().Bytes(),
		Name:              aggregate.Name(),
		Address:           aggregate.Address(),
		IsAcceptingOrders: aggregate.IsAcceptingOrders(),
	}

	if aggregate.HasCoordinate() {
		lat := aggregate.Coordinate().Latitude()
		lng := aggregate.Coordinate().Longitude()
		dto.CoordinateLat = &lat
		dto.CoordinateLng = &lng
	}

	return dto
}

// toDomain converts a database DTO to a branch domain aggregate.
// Reconstructs the aggregate using RestoreBranch with the optional coordinate.
func toDomain(dto BranchDTO) (*branch.Branch, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	partnerID, err := kernel.UUIDFromBytes(dto.PartnerID[:])
	if err != nil {
		return nil, err
	}

	var coordinate *kernel.Coordinate
	if dto.CoordinateLat != nil && dto.CoordinateLng != nil {
		point, coordErr := kernel.NewCoordinate(*dto.CoordinateLat, *dto.CoordinateLng)
		if coordErr != nil {
			return nil, coordErr
		}
		coordinate = &point
	}

	return branch.RestoreBranch(id, partnerID, dto.Name, dto.Address, coordinate, dto.IsAcceptingOrders)
}
