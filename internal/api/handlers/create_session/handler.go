package create_session

import (
	"net/http"

	"github.com/m04kA/SMC-CourtBookingForm/internal/api/handlers"
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

// Handle POST /api/v1/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	state := h.service.CreateSession()

	h.logger.Info("POST /sessions - Session created: session_id=%s", state.SessionID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromSessionState(state))
}
