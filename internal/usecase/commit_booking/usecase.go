package commit_booking

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CourtBookingForm/pkg/metrics"
)

// UseCase use case для отправки бронирования
type UseCase struct {
	bookingClient BookingServiceClient
	metrics       MetricsRecorder
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingClient BookingServiceClient, metrics MetricsRecorder, logger Logger) *UseCase {
	return &UseCase{
		bookingClient: bookingClient,
		metrics:       metrics,
		logger:        logger,
	}
}

// Execute отправляет текущий черновик в BookingService
// Без расчёта стоимости или с незаполненным черновиком ничего не отправляет
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Кнопка бронирования неактивна, пока нет расчёта
	if !req.HasQuote {
		uc.logger.Info("CommitBooking: skipped, no quote")
		uc.metrics.ObserveBooking(metrics.OutcomeSkipped)
		return nil, ErrQuoteRequired
	}

	// 2. Повторная проверка обязательных полей
	if !req.Draft.IsQuotable() {
		uc.logger.Info("CommitBooking: skipped, draft is incomplete")
		uc.metrics.ObserveBooking(metrics.OutcomeSkipped)
		return nil, ErrDraftIncomplete
	}

	bookReq := toBookRequest(&req.Draft)

	uc.logger.Info("CommitBooking: court=%s date=%s start=%s hours=%d equipment=%v coach=%t",
		bookReq.CourtType, bookReq.Date, bookReq.StartTime, bookReq.Hours, bookReq.Equipment, bookReq.Coach)

	// 3. Отправляем бронирование
	resp, err := uc.bookingClient.Book(ctx, bookReq)
	if err != nil {
		uc.logger.Error("CommitBooking: booking service failed: %v", err)
		uc.metrics.ObserveBooking(metrics.OutcomeError)
		return nil, fmt.Errorf("%w: %v", ErrBookingUnavailable, err)
	}

	result := fromBookResponse(resp)
	if result.IsConfirmed() {
		uc.metrics.ObserveBooking(metrics.OutcomeConfirmed)
	} else {
		uc.metrics.ObserveBooking(metrics.OutcomeRejected)
	}

	uc.logger.Info("CommitBooking: result=%q", result.Text())

	return &Response{Result: result}, nil
}
