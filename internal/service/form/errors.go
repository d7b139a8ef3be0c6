package form

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("form: session not found")

	// ErrSessionClosed возвращается при обращении к закрытой сессии
	ErrSessionClosed = errors.New("form: session is closed")
)
