package commit_booking

import "errors"

var (
	// ErrQuoteRequired возвращается, если у формы нет актуального расчёта стоимости
	// Запрос на бронирование в этом случае не отправляется
	ErrQuoteRequired = errors.New("commit_booking: price quote is required")

	// ErrDraftIncomplete возвращается, если не заполнены тип корта, дата или время начала
	ErrDraftIncomplete = errors.New("commit_booking: draft is incomplete")

	// ErrBookingUnavailable возвращается при сетевых ошибках и неразборчивых ответах BookingService
	ErrBookingUnavailable = errors.New("commit_booking: booking service unavailable")
)
