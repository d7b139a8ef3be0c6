package commit_booking

import (
	"github.com/m04kA/SMC-CourtBookingForm/internal/domain"
	"github.com/m04kA/SMC-CourtBookingForm/internal/integrations/bookingservice"
)

// Request модель запроса на бронирование
type Request struct {
	Draft    domain.Draft // Текущий черновик, не тот, для которого был получен расчёт
	HasQuote bool         // Есть ли у формы расчёт стоимости
}

// Response модель ответа с результатом бронирования
type Response struct {
	Result domain.BookingResult
}

func toBookRequest(d *domain.Draft) *bookingservice.BookRequest {
	return &bookingservice.BookRequest{
		CourtType: string(d.CourtType),
		Date:      d.Date,
		StartTime: d.StartTime,
		Hours:     d.Hours,
		Equipment: d.Manifest(),
		Coach:     d.Coach,
	}
}

func fromBookResponse(resp *bookingservice.BookResponse) domain.BookingResult {
	return domain.BookingResult{
		Message:       resp.Message,
		Error:         resp.Error,
		CoachAssigned: resp.CoachAssigned,
		TotalPrice:    resp.TotalPrice,
	}
}
