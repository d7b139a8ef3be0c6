package change_hours

// ChangeHoursRequest HTTP request model
type ChangeHoursRequest struct {
	Delta int `json:"delta"` // Обычно +1 или -1
}
