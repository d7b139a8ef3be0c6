package pricingservice

// QuoteRequest тело запроса POST /price
type QuoteRequest struct {
	CourtType string   `json:"court_type"`
	Date      string   `json:"date"`       // "2024-06-01"
	StartTime string   `json:"start_time"` // "18:00"
	Hours     int      `json:"hours"`
	Equipment []string `json:"equipment"` // Имя предмета повторяется по количеству единиц
	Coach     bool     `json:"coach"`
}

// Quote модель расчёта стоимости из PricingService
type Quote struct {
	BaseHourPrice float64 `json:"base_hour_price"`
	EquipmentCost float64 `json:"equipment_cost"`
	CoachCost     float64 `json:"coach_cost"`
	TotalPrice    float64 `json:"total_price"`
	Hours         *int    `json:"hours,omitempty"`
	CourtType     *string `json:"court_type,omitempty"`
}

// ErrorResponse модель ошибки от PricingService
type ErrorResponse struct {
	Error string `json:"error"`
}
