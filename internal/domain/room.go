package domain

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Room is a location equipment is registered in. Deleting a room leaves any
// referencing equipment with a dangling room id, same as the stored data:
// nothing guards or cascades.
type Room struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	Name     string `gorm:"uniqueIndex" json:"name" validate:"required"`
	Location string `json:"location,omitempty"`
}

func (r *Room) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
