package change_hours

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtBookingForm/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBookingForm/internal/domain"
	"github.com/m04kA/SMC-CourtBookingForm/internal/service/form"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDelta       = "шаг изменения по модулю не больше 24"
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

// Handle POST /api/v1/sessions/{sessionId}/hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req ChangeHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	state, err := h.service.ChangeHours(sessionID, req.Delta)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDeltaOutOfRange):
			h.logger.Warn("POST /sessions/{id}/hours - Delta out of range: session_id=%s, delta=%d", sessionID, req.Delta)
			handlers.RespondBadRequest(w, msgInvalidDelta)

		case errors.Is(err, form.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/hours - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, form.ErrSessionClosed):
			h.logger.Warn("POST /sessions/{id}/hours - Session closed: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionClosed)

		default:
			h.logger.Error("POST /sessions/{id}/hours - Failed to change hours: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/hours - Hours changed: session_id=%s, hours=%d", sessionID, state.Draft.Hours)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromSessionState(state))
}
