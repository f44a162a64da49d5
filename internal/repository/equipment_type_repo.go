package repository

import (
	"context"

	"invtrack/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EquipmentTypeRepository struct {
	db *gorm.DB
}

func NewEquipmentTypeRepository(db *gorm.DB) *EquipmentTypeRepository {
	return &EquipmentTypeRepository{db: db}
}

// SeedDefaults inserts the fixed type enumeration, skipping names that are
// already present. Safe to run on every startup.
func (r *EquipmentTypeRepository) SeedDefaults(ctx context.Context) error {
	for _, name := range domain.EquipmentTypeNames {
		t := domain.EquipmentType{Name: name}
		err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&t).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *EquipmentTypeRepository) GetAll(ctx context.Context) ([]domain.EquipmentType, error) {
	var types []domain.EquipmentType

	err := r.db.WithContext(ctx).
		Order("name").
		Find(&types).Error

	return types, err
}
