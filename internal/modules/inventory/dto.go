package inventory

// EquipmentForm carries the registration/edit form fields.
type EquipmentForm struct {
	Name    string `form:"name"`
	Type    string `form:"type"`
	Cost    string `form:"cost"`
	Room    string `form:"room"`
	RegName string `form:"reg_name"`
}

// SelectionForm carries the delete/update selection fields. Action "cancel"
// short-circuits to a redirect.
type SelectionForm struct {
	EquipmentID string `form:"equipmentid"`
	Action      string `form:"action"`
}
