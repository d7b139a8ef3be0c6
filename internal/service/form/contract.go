package form

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CourtBookingForm/internal/usecase/commit_booking"
	"github.com/m04kA/SMC-CourtBookingForm/internal/usecase/refresh_quote"
)

// RefreshQuoteUseCase интерфейс use case расчёта стоимости
type RefreshQuoteUseCase interface {
	Execute(ctx context.Context, req *refresh_quote.Request) (*refresh_quote.Response, error)
}

// CommitBookingUseCase интерфейс use case бронирования
type CommitBookingUseCase interface {
	Execute(ctx context.Context, req *commit_booking.Request) (*commit_booking.Response, error)
}

// MetricsRecorder интерфейс для метрик сессий
type MetricsRecorder interface {
	IncQuoteDiscarded()
	SetActiveSessions(n int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
