package refresh_quote

import "errors"

var (
	// ErrDraftIncomplete возвращается, если не заполнены тип корта, дата или время начала
	// Это не ошибка пользователя: запрос просто не отправляется
	ErrDraftIncomplete = errors.New("refresh_quote: draft is incomplete")

	// ErrInvalidInput возвращается при нарушении инвариантов черновика
	ErrInvalidInput = errors.New("refresh_quote: invalid input data")

	// ErrQuoteRejected возвращается, когда PricingService отклонил черновик
	ErrQuoteRejected = errors.New("refresh_quote: quote rejected by pricing service")

	// ErrPricingUnavailable возвращается при сетевых ошибках и некорректных ответах PricingService
	ErrPricingUnavailable = errors.New("refresh_quote: pricing service unavailable")
)
