package inventory

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"invtrack/internal/domain"
	"invtrack/internal/pkg/render"
	"invtrack/internal/pkg/validator"
	"invtrack/internal/repository"
)

type Handler struct {
	equipment *repository.EquipmentRepository
	rooms     *repository.RoomRepository
}

func NewHandler(equipment *repository.EquipmentRepository, rooms *repository.RoomRepository) *Handler {
	return &Handler{
		equipment: equipment,
		rooms:     rooms,
	}
}

/* ---------- CREATE ---------- */

// CreateForm handles GET /equipment/create.
func (h *Handler) CreateForm(c *gin.Context) {
	rooms, err := h.rooms.GetAll(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.HTML(http.StatusOK, "equipment_form.tmpl", gin.H{
		"Title":          "Register Equipment",
		"RoomList":       rooms,
		"EquipmentTypes": domain.EquipmentTypeNames,
	})
}

// Create handles POST /equipment/create.
func (h *Handler) Create(c *gin.Context) {
	var form EquipmentForm
	if err := c.ShouldBind(&form); err != nil {
		c.Error(err)
		return
	}

	e, err := equipmentFromForm(form)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.equipment.Create(c.Request.Context(), e); err != nil {
		c.Error(err)
		return
	}

	// Re-fetch so the confirmation renders with the room populated.
	created, err := h.equipment.GetByID(c.Request.Context(), e.ID)
	if err != nil {
		c.Error(err)
		return
	}

	c.HTML(http.StatusOK, "equipment_instance_info.tmpl", gin.H{
		"Title":             "Equipment Registered Successfully!",
		"SuccessMessage":    "New piece of equipment registered successfully!",
		"EquipmentInstance": created,
		"IsDelete":          false,
		"IsUpdateReport":    false,
	})
}

/* ---------- DELETE (selection flow) ---------- */

// DeleteSelect handles GET /equipment/delete.
func (h *Handler) DeleteSelect(c *gin.Context) {
	h.renderDeleteList(c, "")
}

// Delete handles DELETE /equipment/delete (via method override).
func (h *Handler) Delete(c *gin.Context) {
	var form SelectionForm
	if err := c.ShouldBind(&form); err != nil {
		c.Error(err)
		return
	}

	if form.Action == "cancel" {
		c.Redirect(http.StatusFound, "/equipment")
		return
	}

	if form.EquipmentID == "" {
		h.renderDeleteList(c, "Please select a piece of equipment to delete.")
		return
	}

	if err := h.equipment.Delete(c.Request.Context(), form.EquipmentID); err != nil {
		c.Error(err)
		return
	}

	renderDeleted(c)
}

func (h *Handler) renderDeleteList(c *gin.Context, errorMessage string) {
	equipment, err := h.equipment.GetAll(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.HTML(http.StatusOK, "equipment_delete.tmpl", gin.H{
		"Title":         "Delete equipment",
		"ErrorMessage":  errorMessage,
		"EquipmentList": equipment,
		"EquipmentByID": nil,
	})
}

func renderDeleted(c *gin.Context) {
	c.HTML(http.StatusOK, "equipment_instance_info.tmpl", gin.H{
		"Title":             "Equipment deleted",
		"SuccessMessage":    "Equipment deleted successfully!",
		"EquipmentInstance": nil,
		"IsDelete":          true,
		"IsUpdateReport":    false,
	})
}

/* ---------- UPDATE (selection flow) ---------- */

// UpdateSelect handles GET /equipment/update.
func (h *Handler) UpdateSelect(c *gin.Context) {
	h.renderUpdateList(c, "")
}

// UpdateSelected handles POST /equipment/update: resolve the selected record
// and show the edit form for it.
func (h *Handler) UpdateSelected(c *gin.Context) {
	var form SelectionForm
	if err := c.ShouldBind(&form); err != nil {
		c.Error(err)
		return
	}

	if form.EquipmentID == "" {
		h.renderUpdateList(c, "Please select a piece of equipment to edit.")
		return
	}

	h.renderUpdateForm(c, form.EquipmentID, "Edit equipment")
}

func (h *Handler) renderUpdateList(c *gin.Context, errorMessage string) {
	equipment, err := h.equipment.GetAll(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.HTML(http.StatusOK, "equipment_update_select.tmpl", gin.H{
		"Title":         "Edit equipment",
		"EquipmentList": equipment,
		"ErrorMessage":  errorMessage,
	})
}

func (h *Handler) renderUpdateForm(c *gin.Context, id, title string) {
	piece, err := h.equipment.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.Error(render.NotFound("Equipment with id: %s not found. Please try again.", id))
			return
		}
		c.Error(err)
		return
	}

	rooms, err := h.rooms.GetAll(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.HTML(http.StatusOK, "equipment_update.tmpl", gin.H{
		"Title":            title,
		"PieceOfEquipment": piece,
		"RoomList":         rooms,
		"EquipmentTypes":   domain.EquipmentTypeNames,
	})
}

/* ---------- SEARCH ---------- */

// SearchRoomForm handles GET /equipment/search/room.
func (h *Handler) SearchRoomForm(c *gin.Context) {
	h.renderRoomSearch(c, "")
}

// SearchRoom handles POST /equipment/search/room.
func (h *Handler) SearchRoom(c *gin.Context) {
	roomID := c.PostForm("room")

	if roomID == "" {
		h.renderRoomSearch(c, "Please select a room.")
		return
	}

	equipment, err := h.equipment.FindByRoom(c.Request.Context(), roomID)
	if err != nil {
		c.Error(err)
		return
	}

	room, err := h.rooms.GetByID(c.Request.Context(), roomID)
	if err != nil {
		c.Error(err)
		return
	}

	c.HTML(http.StatusOK, "search_form_room.tmpl", gin.H{
		"Title":         "Search Equipment By Room",
		"RoomList":      []domain.Room{},
		"TitleSearch":   fmt.Sprintf("Equipment registered in %s", room.Name),
		"ErrorMessage":  "",
		"Search":        false,
		"EquipmentList": equipment,
	})
}

func (h *Handler) renderRoomSearch(c *gin.Context, errorMessage string) {
	rooms, err := h.rooms.GetAll(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.HTML(http.StatusOK, "search_form_room.tmpl", gin.H{
		"Title":         "Select Room",
		"RoomList":      rooms,
		"TitleSearch":   "Search Equipment By Room",
		"ErrorMessage":  errorMessage,
		"Search":        true,
		"EquipmentList": []domain.Equipment{},
	})
}

// SearchNameForm handles GET /equipment/search/name.
func (h *Handler) SearchNameForm(c *gin.Context) {
	c.HTML(http.StatusOK, "search_form_name.tmpl", gin.H{
		"Title":         "Search Equipment By Name",
		"TitleSearch":   "Search Equipment By Name",
		"ErrorMessage":  "",
		"EquipmentList": nil,
		"Search":        true,
		"Name":          "",
	})
}

// SearchName handles POST /equipment/search/name. The match is
// case-insensitive but otherwise exact.
func (h *Handler) SearchName(c *gin.Context) {
	name := c.PostForm("name")

	equipment, err := h.equipment.FindByName(c.Request.Context(), name)
	if err != nil {
		c.Error(err)
		return
	}

	c.HTML(http.StatusOK, "search_form_name.tmpl", gin.H{
		"Title":         "Search Equipment By Name",
		"TitleSearch":   "Search Equipment By Name",
		"ErrorMessage":  "",
		"EquipmentList": equipment,
		"Search":        false,
		"Name":          name,
	})
}

// SearchTypeForm handles GET /equipment/search/type.
func (h *Handler) SearchTypeForm(c *gin.Context) {
	h.renderTypeSearch(c, "")
}

// SearchType handles POST /equipment/search/type.
func (h *Handler) SearchType(c *gin.Context) {
	equipmentType := c.PostForm("type")

	if equipmentType == "" {
		h.renderTypeSearch(c, "Please select type")
		return
	}

	equipment, err := h.equipment.FindByType(c.Request.Context(), equipmentType)
	if err != nil {
		c.Error(err)
		return
	}

	c.HTML(http.StatusOK, "search_form_type.tmpl", gin.H{
		"Title":          "Search Equipment By Type",
		"TitleSearch":    fmt.Sprintf("Equipment found By Type: %s", equipmentType),
		"ErrorMessage":   "",
		"Search":         false,
		"EquipmentList":  equipment,
		"Type":           equipmentType,
		"EquipmentTypes": nil,
	})
}

func (h *Handler) renderTypeSearch(c *gin.Context, errorMessage string) {
	c.HTML(http.StatusOK, "search_form_type.tmpl", gin.H{
		"Title":          "Search Equipment By Type",
		"TitleSearch":    "Search Equipment By Type",
		"ErrorMessage":   errorMessage,
		"Search":         true,
		"EquipmentList":  []domain.Equipment{},
		"Type":           "",
		"EquipmentTypes": domain.EquipmentTypeNames,
	})
}

/* ---------- LISTING ---------- */

// All handles GET /equipment/all.
func (h *Handler) All(c *gin.Context) {
	equipment, err := h.equipment.GetAll(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.HTML(http.StatusOK, "equipment_list.tmpl", gin.H{
		"Title":         "Equipment List",
		"EquipmentList": equipment,
	})
}

/* ---------- SINGLE-RECORD FLOWS ---------- */

// DeleteByIDForm handles GET /equipment/:id/delete.
func (h *Handler) DeleteByIDForm(c *gin.Context) {
	id := c.Param("id")

	equipment, err := h.equipment.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.HTML(http.StatusOK, "success_page.tmpl", gin.H{
				"SuccessMessage": fmt.Sprintf("Equipment with id %s not found. Please try again.", id),
			})
			return
		}
		c.Error(err)
		return
	}

	c.HTML(http.StatusOK, "equipment_delete.tmpl", gin.H{
		"Title":         "Delete equipment",
		"ErrorMessage":  "",
		"EquipmentList": []domain.Equipment{},
		"EquipmentByID": equipment,
	})
}

// DeleteByID handles DELETE /equipment/:id/delete.
func (h *Handler) DeleteByID(c *gin.Context) {
	if c.PostForm("action") == "cancel" {
		c.Redirect(http.StatusFound, "/equipment")
		return
	}

	if err := h.equipment.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	renderDeleted(c)
}

// UpdateByIDForm handles GET /equipment/:id/update.
func (h *Handler) UpdateByIDForm(c *gin.Context) {
	h.renderUpdateForm(c, c.Param("id"), "Update equipment")
}

// UpdateByID handles PUT /equipment/:id/update: re-validates the payload and
// refreshes DateUpdated.
func (h *Handler) UpdateByID(c *gin.Context) {
	var form EquipmentForm
	if err := c.ShouldBind(&form); err != nil {
		c.Error(err)
		return
	}

	upd, err := equipmentFromForm(form)
	if err != nil {
		c.Error(err)
		return
	}

	updated, err := h.equipment.Update(c.Request.Context(), c.Param("id"), *upd)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.Error(render.NotFound("Equipment with id: %s not found. Please try again.", c.Param("id")))
			return
		}
		c.Error(err)
		return
	}

	c.HTML(http.StatusOK, "equipment_instance_info.tmpl", gin.H{
		"Title":             "Equipment Modified",
		"SuccessMessage":    "Equipment modified successfully!",
		"EquipmentInstance": updated,
		"IsDelete":          false,
		"IsUpdateReport":    true,
	})
}

// Detail handles GET /equipment/:id.
func (h *Handler) Detail(c *gin.Context) {
	id := c.Param("id")

	equipment, err := h.equipment.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.Error(render.NotFound("Equipment with id: %s not found.", id))
			return
		}
		c.Error(err)
		return
	}

	c.HTML(http.StatusOK, "equipment_instance_info.tmpl", gin.H{
		"Title":             "Equipment info",
		"SuccessMessage":    "Equipment Info",
		"EquipmentInstance": equipment,
		"IsDelete":          false,
		"IsUpdateReport":    false,
	})
}

/* ---------- HELPERS ---------- */

// equipmentFromForm trims the text fields, coerces cost, and runs the schema
// validators. Failures surface on the generic error page, not inline.
func equipmentFromForm(form EquipmentForm) (*domain.Equipment, error) {
	cost, err := strconv.ParseFloat(strings.TrimSpace(form.Cost), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid cost %q: %w", form.Cost, err)
	}

	e := &domain.Equipment{
		Name:         strings.TrimSpace(form.Name),
		Type:         strings.TrimSpace(form.Type),
		Cost:         cost,
		RoomID:       form.Room,
		RegisteredBy: strings.TrimSpace(form.RegName),
	}

	if errs := validator.Validate(e); errs != nil {
		return nil, fmt.Errorf("equipment validation failed: %v", errs)
	}

	return e, nil
}
