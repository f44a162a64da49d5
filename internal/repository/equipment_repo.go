package repository

import (
	"context"
	"time"

	"invtrack/internal/domain"

	"gorm.io/gorm"
)

type EquipmentRepository struct {
	db *gorm.DB
}

func NewEquipmentRepository(db *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

func (r *EquipmentRepository) Create(ctx context.Context, e *domain.Equipment) error {
	return r.db.WithContext(ctx).Create(e).Error
}

// GetByID fetches one piece of equipment with its room populated.
func (r *EquipmentRepository) GetByID(ctx context.Context, id string) (*domain.Equipment, error) {
	var e domain.Equipment

	err := r.db.WithContext(ctx).
		Preload("Room").
		Where("id = ?", id).
		First(&e).Error

	if err != nil {
		return nil, err
	}

	return &e, nil
}

// GetAll returns every piece of equipment sorted by name, rooms populated.
func (r *EquipmentRepository) GetAll(ctx context.Context) ([]domain.Equipment, error) {
	var equipment []domain.Equipment

	err := r.db.WithContext(ctx).
		Preload("Room").
		Order("name").
		Find(&equipment).Error

	return equipment, err
}

// Update overwrites the editable fields of a record and refreshes
// DateUpdated. Returns the updated record with its room populated.
func (r *EquipmentRepository) Update(ctx context.Context, id string, upd domain.Equipment) (*domain.Equipment, error) {
	tx := r.db.WithContext(ctx).
		Model(&domain.Equipment{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"name":          upd.Name,
			"type":          upd.Type,
			"cost":          upd.Cost,
			"room_id":       upd.RoomID,
			"registered_by": upd.RegisteredBy,
			"date_updated":  time.Now(),
		})
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return r.GetByID(ctx, id)
}

// Delete removes a record by id. Deleting an id that no longer exists is
// not an error.
func (r *EquipmentRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&domain.Equipment{}).Error
}

// FindByRoom lists equipment registered in the given room.
func (r *EquipmentRepository) FindByRoom(ctx context.Context, roomID string) ([]domain.Equipment, error) {
	var equipment []domain.Equipment

	err := r.db.WithContext(ctx).
		Preload("Room").
		Where("room_id = ?", roomID).
		Order("name").
		Find(&equipment).Error

	return equipment, err
}

// FindByName does a case-insensitive exact match on the equipment name.
func (r *EquipmentRepository) FindByName(ctx context.Context, name string) ([]domain.Equipment, error) {
	var equipment []domain.Equipment

	err := r.db.WithContext(ctx).
		Preload("Room").
		Where("LOWER(name) = LOWER(?)", name).
		Order("name").
		Find(&equipment).Error

	return equipment, err
}

// FindByType lists equipment whose stored type string matches exactly.
func (r *EquipmentRepository) FindByType(ctx context.Context, equipmentType string) ([]domain.Equipment, error) {
	var equipment []domain.Equipment

	err := r.db.WithContext(ctx).
		Preload("Room").
		Where("type = ?", equipmentType).
		Order("name").
		Find(&equipment).Error

	return equipment, err
}
