package pricingservice

import "errors"

var (
	// ErrQuoteRejected возвращается, когда PricingService отклонил запрос (4xx с полем error)
	ErrQuoteRejected = errors.New("pricingservice client: quote rejected")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("pricingservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("pricingservice client: invalid response")
)
