package change_equipment

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
	msgUnknownEquipment   = "неизвестный инвентарь, ожидается racket или shoes"
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

// Handle POST /api/v1/sessions/{sessionId}/equipment/{item}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["sessionId"]
	item := domain.EquipmentItem(vars["item"])

	var req ChangeEquipmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/equipment/{item} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	state, err := h.service.ChangeEquipment(sessionID, item, req.Delta)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownEquipment):
			h.logger.Warn("POST /sessions/{id}/equipment/{item} - Unknown item: session_id=%s, item=%s", sessionID, item)
			handlers.RespondBadRequest(w, msgUnknownEquipment)

		case errors.Is(err, domain.ErrDeltaOutOfRange):
			h.logger.Warn("POST /sessions/{id}/equipment/{item} - Delta out of range: session_id=%s, delta=%d", sessionID, req.Delta)
			handlers.RespondBadRequest(w, msgInvalidDelta)

		case errors.Is(err, form.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/equipment/{item} - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, form.ErrSessionClosed):
			h.logger.Warn("POST /sessions/{id}/equipment/{item} - Session closed: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionClosed)

		default:
			h.logger.Error("POST /sessions/{id}/equipment/{item} - Failed to change equipment: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/equipment/{item} - Equipment changed: session_id=%s, item=%s, count=%d",
		sessionID, item, state.Draft.EquipmentCount(item))
	handlers.RespondJSON(w, http.StatusOK, handlers.FromSessionState(state))
}
