package models

import (
	"github.com/m04kA/SMC-CourtBookingForm/internal/domain"
)

// SessionState снимок состояния формы бронирования
type SessionState struct {
	SessionID     string
	Draft         domain.Draft
	Manifest      []string
	Quote         *domain.Quote
	QuoteError    string // Последняя ошибка расчёта, пустая строка если ошибки нет
	QuotePending  bool   // Запрос расчёта запланирован или выполняется
	BookingResult *domain.BookingResult
	CanCommit     bool // Кнопка бронирования активна только при наличии расчёта
	Generation    uint64
}
