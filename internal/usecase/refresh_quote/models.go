package refresh_quote

import (
	"github.com/m04kA/SMC-CourtBookingForm/internal/domain"
	"github.com/m04kA/SMC-CourtBookingForm/internal/integrations/pricingservice"
)

// Request модель запроса на расчёт стоимости
type Request struct {
	Draft      domain.Draft // Снимок черновика на момент запроса
	Generation uint64       // Поколение черновика, используется только для логов
}

// Response модель ответа с расчётом стоимости
type Response struct {
	Quote *domain.Quote
}

func toQuoteRequest(d *domain.Draft) *pricingservice.QuoteRequest {
	return &pricingservice.QuoteRequest{
		CourtType: string(d.CourtType),
		Date:      d.Date,
		StartTime: d.StartTime,
		Hours:     d.Hours,
		Equipment: d.Manifest(),
		Coach:     d.Coach,
	}
}

func fromPricingQuote(q *pricingservice.Quote) *domain.Quote {
	return &domain.Quote{
		BaseHourPrice: q.BaseHourPrice,
		EquipmentCost: q.EquipmentCost,
		CoachCost:     q.CoachCost,
		TotalPrice:    q.TotalPrice,
		Hours:         q.Hours,
		CourtType:     q.CourtType,
	}
}
