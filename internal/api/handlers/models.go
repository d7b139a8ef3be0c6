package handlers

import (
	"github.com/m04kA/SMC-CourtBookingForm/internal/domain"
	"github.com/m04kA/SMC-CourtBookingForm/internal/service/form/models"
)

// SessionStateResponse HTTP модель состояния формы бронирования
type SessionStateResponse struct {
	SessionID     string                 `json:"sessionId"`
	Draft         DraftResponse          `json:"draft"`
	Quote         *QuoteResponse         `json:"quote,omitempty"`
	QuoteError    string                 `json:"quoteError,omitempty"`
	QuotePending  bool                   `json:"quotePending"`
	BookingResult *BookingResultResponse `json:"bookingResult,omitempty"`
	CanCommit     bool                   `json:"canCommit"`
	Generation    uint64                 `json:"generation"`
	Display       DisplayResponse        `json:"display"`
}

// DraftResponse HTTP модель черновика
type DraftResponse struct {
	Date      string         `json:"date"`
	StartTime string         `json:"startTime"`
	Hours     int            `json:"hours"`
	CourtType string         `json:"courtType"`
	Equipment map[string]int `json:"equipment"`
	Manifest  []string       `json:"manifest"`
	Coach     bool           `json:"coach"`
}

// QuoteResponse HTTP модель расчёта стоимости
type QuoteResponse struct {
	BaseHourPrice float64 `json:"baseHourPrice"`
	EquipmentCost float64 `json:"equipmentCost"`
	CoachCost     float64 `json:"coachCost"`
	TotalPrice    float64 `json:"totalPrice"`
}

// BookingResultResponse HTTP модель результата бронирования
type BookingResultResponse struct {
	Text          string   `json:"text"`
	Confirmed     bool     `json:"confirmed"`
	CoachAssigned *string  `json:"coachAssigned,omitempty"`
	TotalPrice    *float64 `json:"totalPrice,omitempty"`
}

// DisplayResponse готовые строки для отображения формы
type DisplayResponse struct {
	Duration   string   `json:"duration"`
	PriceLines []string `json:"priceLines,omitempty"`
	Status     string   `json:"status,omitempty"`
}

// FromSessionState конвертирует состояние сервиса в HTTP ответ
func FromSessionState(state *models.SessionState) *SessionStateResponse {
	equipment := make(map[string]int, len(domain.EquipmentItems))
	for _, item := range domain.EquipmentItems {
		equipment[string(item)] = state.Draft.EquipmentCount(item)
	}

	resp := &SessionStateResponse{
		SessionID: state.SessionID,
		Draft: DraftResponse{
			Date:      state.Draft.Date,
			StartTime: state.Draft.StartTime,
			Hours:     state.Draft.Hours,
			CourtType: string(state.Draft.CourtType),
			Equipment: equipment,
			Manifest:  state.Manifest,
			Coach:     state.Draft.Coach,
		},
		QuoteError:   state.QuoteError,
		QuotePending: state.QuotePending,
		CanCommit:    state.CanCommit,
		Generation:   state.Generation,
		Display: DisplayResponse{
			Duration: domain.FormatHours(state.Draft.Hours),
		},
	}

	if state.Quote != nil {
		resp.Quote = &QuoteResponse{
			BaseHourPrice: state.Quote.BaseHourPrice,
			EquipmentCost: state.Quote.EquipmentCost,
			CoachCost:     state.Quote.CoachCost,
			TotalPrice:    state.Quote.TotalPrice,
		}
		resp.Display.PriceLines = state.Quote.Lines()
	}

	if state.BookingResult != nil {
		resp.BookingResult = &BookingResultResponse{
			Text:          state.BookingResult.Text(),
			Confirmed:     state.BookingResult.IsConfirmed(),
			CoachAssigned: state.BookingResult.CoachAssigned,
			TotalPrice:    state.BookingResult.TotalPrice,
		}
		resp.Display.Status = state.BookingResult.Text()
	}

	return resp
}
