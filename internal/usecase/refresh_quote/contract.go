package refresh_quote

import (
	"context"

	"github.com/m04kA/SMC-CourtBookingForm/internal/integrations/pricingservice"
)

// PricingServiceClient интерфейс клиента для PricingService
type PricingServiceClient interface {
	GetQuote(ctx context.Context, req *pricingservice.QuoteRequest) (*pricingservice.Quote, error)
}

// MetricsRecorder интерфейс для учета исходов запросов расчёта
type MetricsRecorder interface {
	ObserveQuote(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
