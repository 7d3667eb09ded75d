package riderrepo

import (
	"context"
	"errors"

	"effdel/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRiderDirectory implements RiderDirectory using GORM.
// Rider profiles are reference data managed elsewhere; this adapter only
// reads them, plus a seeding helper for tests and fixtures.
type GormRiderDirectory struct {
	db *gorm.DB
}

// NewGormRiderDirectory creates a new GORM rider directory.
func NewGormRiderDirectory(db *gorm.DB) *GormRiderDirectory {
	return &GormRiderDirectory{db: db}
}

// GetName resolves a rider identifier to the rider's display name.
func (d *GormRiderDirectory) GetName(ctx context.Context, riderID string) (string, error) {
	if riderID == "" {
		return "", errs.NewValueIsRequiredError("rider ID")
	}

	var dto RiderDTO
	if err := d.db.WithContext(ctx).First(&dto, "id = ?", riderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", errs.NewObjectNotFoundError("rider id", riderID)
		}
		return "", err
	}

	return dto.Name, nil
}

// Seed inserts a rider profile, used by tests and local fixtures.
func (d *GormRiderDirectory) Seed(ctx context.Context, riderID, name string) error {
	if riderID == "" {
		return errs.NewValueIsRequiredError("rider ID")
	}

	dto := RiderDTO{ID: riderID, Name: name}
	return d.db.WithContext(ctx).Create(&dto).Error
}
