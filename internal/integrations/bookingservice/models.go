package bookingservice

// BookRequest тело запроса POST /book, совпадает по форме с запросом расчёта стоимости
type BookRequest struct {
	CourtType string   `json:"court_type"`
	Date      string   `json:"date"`
	StartTime string   `json:"start_time"`
	Hours     int      `json:"hours"`
	Equipment []string `json:"equipment"`
	Coach     bool     `json:"coach"`
}

// BookResponse ответ BookingService
// При успехе заполнено message, при отказе - error
type BookResponse struct {
	Message       string   `json:"message,omitempty"`
	Error         string   `json:"error,omitempty"`
	CoachAssigned *string  `json:"coach_assigned,omitempty"`
	TotalPrice    *float64 `json:"total_price,omitempty"`
}
