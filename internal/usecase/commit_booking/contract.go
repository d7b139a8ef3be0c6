package commit_booking

import (
	"context"

	"github.com/m04kA/SMC-CourtBookingForm/internal/integrations/bookingservice"
)

// BookingServiceClient интерфейс клиента для BookingService
type BookingServiceClient interface {
	Book(ctx context.Context, req *bookingservice.BookRequest) (*bookingservice.BookResponse, error)
}

// MetricsRecorder интерфейс для учета исходов бронирования
type MetricsRecorder interface {
	ObserveBooking(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
