package commit_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtBookingForm/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBookingForm/internal/service/form"
	commitBooking "github.com/m04kA/SMC-CourtBookingForm/internal/usecase/commit_booking"
)

const (
	msgQuoteRequired      = "сначала необходимо получить расчёт стоимости"
	msgDraftIncomplete    = "не заполнены тип корта, дата или время начала"
	msgBookingUnavailable = "сервис бронирования недоступен"
	msgSessionNotFound    = "сессия не найдена"
	msgSessionClosed      = "сессия закрыта"
)

type Handler struct {
	service FormService
	logger  Logger
}

func NewHandler(service FormService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/commit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	state, err := h.service.Commit(r.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, commitBooking.ErrQuoteRequired):
			h.logger.Warn("POST /sessions/{id}/commit - No quote: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgQuoteRequired)

		case errors.Is(err, commitBooking.ErrDraftIncomplete):
			h.logger.Warn("POST /sessions/{id}/commit - Draft incomplete: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgDraftIncomplete)

		case errors.Is(err, commitBooking.ErrBookingUnavailable):
			h.logger.Error("POST /sessions/{id}/commit - Booking service unavailable: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgBookingUnavailable)

		case errors.Is(err, form.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/commit - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, form.ErrSessionClosed):
			h.logger.Warn("POST /sessions/{id}/commit - Session closed: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionClosed)

		default:
			h.logger.Error("POST /sessions/{id}/commit - Failed to commit: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/commit - Booking attempt finished: session_id=%s, result=%q",
		sessionID, state.BookingResult.Text())
	handlers.RespondJSON(w, http.StatusOK, handlers.FromSessionState(state))
}
