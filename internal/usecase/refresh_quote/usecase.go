package refresh_quote

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtBookingForm/internal/integrations/pricingservice"
	"github.com/m04kA/SMC-CourtBookingForm/pkg/metrics"
)

// UseCase use case для получения расчёта стоимости черновика
type UseCase struct {
	pricingClient PricingServiceClient
	metrics       MetricsRecorder
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(pricingClient PricingServiceClient, metrics MetricsRecorder, logger Logger) *UseCase {
	return &UseCase{
		pricingClient: pricingClient,
		metrics:       metrics,
		logger:        logger,
	}
}

// Execute запрашивает расчёт стоимости у PricingService
// Незаполненный черновик не является ошибкой сервиса: возвращается ErrDraftIncomplete без запроса
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateDraft(&req.Draft); err != nil {
		uc.metrics.ObserveQuote(metrics.OutcomeSkipped)
		return nil, err
	}

	quoteReq := toQuoteRequest(&req.Draft)

	uc.logger.Info("RefreshQuote: generation=%d court=%s date=%s start=%s hours=%d equipment=%v coach=%t",
		req.Generation, quoteReq.CourtType, quoteReq.Date, quoteReq.StartTime, quoteReq.Hours, quoteReq.Equipment, quoteReq.Coach)

	quote, err := uc.pricingClient.GetQuote(ctx, quoteReq)
	if err != nil {
		uc.metrics.ObserveQuote(metrics.OutcomeError)

		// Отмена устаревшего запроса - штатная ситуация
		if ctx.Err() != nil {
			uc.logger.Info("RefreshQuote: generation=%d canceled: %v", req.Generation, ctx.Err())
			return nil, fmt.Errorf("%w: %v", ErrPricingUnavailable, ctx.Err())
		}

		if errors.Is(err, pricingservice.ErrQuoteRejected) {
			uc.logger.Warn("RefreshQuote: generation=%d rejected: %v", req.Generation, err)
			return nil, fmt.Errorf("%w: %v", ErrQuoteRejected, err)
		}

		uc.logger.Warn("RefreshQuote: generation=%d failed: %v", req.Generation, err)
		return nil, fmt.Errorf("%w: %v", ErrPricingUnavailable, err)
	}

	uc.metrics.ObserveQuote(metrics.OutcomeSuccess)

	return &Response{Quote: fromPricingQuote(quote)}, nil
}
