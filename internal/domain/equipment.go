package domain

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Equipment is a single tracked item. Type is stored as free text: the
// equipment_types table only feeds the form selects, membership is not
// enforced at write time.
type Equipment struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Name         string    `json:"name" validate:"required,min=2,max=100"`
	Type         string    `json:"type" validate:"required"`
	Cost         float64   `json:"cost" validate:"gte=0"`
	RoomID       string    `gorm:"size:36;index" json:"room_id" validate:"required"`
	RegisteredBy string    `json:"registered_by" validate:"required"`
	Date         time.Time `json:"date"`
	DateUpdated  time.Time `json:"date_updated"`

	// Relations
	Room *Room `json:"room,omitempty"`
}

func (e *Equipment) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	now := time.Now()
	if e.Date.IsZero() {
		e.Date = now
	}
	if e.DateUpdated.IsZero() {
		e.DateUpdated = now
	}
	return nil
}

// URL is the canonical path of this equipment instance.
func (e *Equipment) URL() string {
	return "/equipment/" + e.ID
}

func (e *Equipment) DateFormatted() string {
	return e.Date.Format("Jan 2, 2006")
}

func (e *Equipment) DateUpdatedFormatted() string {
	return e.DateUpdated.Format("Jan 2, 2006")
}

// DateFormValue formats the creation date for an HTML date input.
func (e *Equipment) DateFormValue() string {
	return e.Date.Format("2006-01-02")
}

func (e *Equipment) CostFormatted() string {
	return strconv.FormatFloat(e.Cost, 'f', 2, 64)
}
