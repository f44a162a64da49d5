package repository

import (
	"context"

	"invtrack/internal/domain"

	"gorm.io/gorm"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

// GetAll returns all rooms sorted by name for form population.
func (r *RoomRepository) GetAll(ctx context.Context) ([]domain.Room, error) {
	var rooms []domain.Room

	err := r.db.WithContext(ctx).
		Order("name").
		Find(&rooms).Error

	return rooms, err
}

func (r *RoomRepository) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	var room domain.Room

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&room).Error

	if err != nil {
		return nil, err
	}

	return &room, nil
}
