package change_equipment

// ChangeEquipmentRequest HTTP request model
type ChangeEquipmentRequest struct {
	Delta int `json:"delta"` // Обычно +1 или -1
}
