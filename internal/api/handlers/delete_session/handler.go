package delete_session

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtBookingForm/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBookingForm/internal/service/form"
)

const msgSessionNotFound = "сессия не найдена"

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

// Handle DELETE /api/v1/sessions/{sessionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	if err := h.service.DeleteSession(sessionID); err != nil {
		if errors.Is(err, form.ErrSessionNotFound) {
			h.logger.Warn("DELETE /sessions/{id} - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
			return
		}
		h.logger.Error("DELETE /sessions/{id} - Failed to delete session: session_id=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /sessions/{id} - Session deleted: session_id=%s", sessionID)
	handlers.RespondNoContent(w)
}
