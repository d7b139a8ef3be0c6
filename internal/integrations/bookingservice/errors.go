package bookingservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("bookingservice client: internal error")

	// ErrInvalidResponse возвращается, если тело ответа не удалось разобрать
	ErrInvalidResponse = errors.New("bookingservice client: invalid response")
)
