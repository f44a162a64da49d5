package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invtrack/internal/pkg/validator"
)

func TestEquipmentDisplayHelpers(t *testing.T) {
	date := time.Date(2026, time.September, 1, 10, 30, 0, 0, time.UTC)
	e := Equipment{
		ID:          "abc-123",
		Name:        "Dell U2412",
		Cost:        199.99,
		Date:        date,
		DateUpdated: date,
	}

	assert.Equal(t, "/equipment/abc-123", e.URL())
	assert.Equal(t, "199.99", e.CostFormatted())
	assert.Equal(t, "Sep 1, 2026", e.DateFormatted())
	assert.Equal(t, "Sep 1, 2026", e.DateUpdatedFormatted())
	assert.Equal(t, "2026-09-01", e.DateFormValue())
}

func TestEquipmentCostFormattedZero(t *testing.T) {
	e := Equipment{Cost: 0}
	assert.Equal(t, "0.00", e.CostFormatted())
}

func TestEquipmentBeforeCreateDefaults(t *testing.T) {
	e := Equipment{Name: "HP LaserJet", Type: "Printer", RoomID: "r1", RegisteredBy: "J. Doe"}

	require.NoError(t, e.BeforeCreate(nil))

	assert.NotEmpty(t, e.ID)
	assert.False(t, e.Date.IsZero())
	assert.False(t, e.DateUpdated.IsZero())
}

func TestEquipmentBeforeCreateKeepsExistingID(t *testing.T) {
	e := Equipment{ID: "keep-me"}

	require.NoError(t, e.BeforeCreate(nil))

	assert.Equal(t, "keep-me", e.ID)
}

func TestEquipmentValidation(t *testing.T) {
	valid := Equipment{Name: "Dell U2412", Type: "Monitor", Cost: 199.99, RoomID: "r1", RegisteredBy: "J. Doe"}
	assert.Nil(t, validator.Validate(&valid))

	tooShort := valid
	tooShort.Name = "X"
	errs := validator.Validate(&tooShort)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "Name")

	negative := valid
	negative.Cost = -1
	errs = validator.Validate(&negative)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "Cost")

	noRoom := valid
	noRoom.RoomID = ""
	errs = validator.Validate(&noRoom)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "RoomID")

	free := valid
	free.Type = "Espresso Machine" // type is free text, not checked against the enumeration
	assert.Nil(t, validator.Validate(&free))
}
