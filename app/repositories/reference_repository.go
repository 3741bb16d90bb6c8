package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/freshbasket/app/models"
)

// ReferenceRepository implements services.ReferenceStore.
type ReferenceRepository struct {
	db *gorm.DB
}

func NewReferenceRepository(db *gorm.DB) *ReferenceRepository {
	return &ReferenceRepository{db: db}
}

func (r *ReferenceRepository) ListStores(ctx context.Context) ([]models.Store, error) {
	var stores []models.Store
	err := r.db.WithContext(ctx).
		Preload("Location").
		Order("store_id ASC").
		Find(&stores).Error
	return stores, err
}

func (r *ReferenceRepository) ListLocations(ctx context.Context) ([]models.Location, error) {
	var locations []models.Location
	err := r.db.WithContext(ctx).Order("location_id ASC").Find(&locations).Error
	return locations, err
}
