package domain

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EquipmentTypeNames is the closed set of category labels offered in the
// selection UI. Equipment.Type is not checked against it.
var EquipmentTypeNames = []string{"Monitor", "Printer", "Router", "Desktop PC"}

type EquipmentType struct {
	ID   string `gorm:"primaryKey;size:36" json:"id"`
	Name string `gorm:"uniqueIndex" json:"name" validate:"required,min=3,max=100"`
}

func (t *EquipmentType) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
