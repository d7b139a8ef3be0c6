package get_session

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtBookingForm/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBookingForm/internal/service/form"
)

const (
	msgSessionNotFound = "сессия не найдена"
	msgInvalidWait     = "некорректный параметр wait"
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

// Handle GET /api/v1/sessions/{sessionId}
// Query params: wait (опционально) - дождаться завершения запроса расчёта
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	wait := false
	if waitStr := r.URL.Query().Get("wait"); waitStr != "" {
		parsed, err := strconv.ParseBool(waitStr)
		if err != nil {
			h.logger.Warn("GET /sessions/{id} - Invalid wait parameter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidWait)
			return
		}
		wait = parsed
	}

	state, err := h.service.GetState(r.Context(), sessionID, wait)
	if err != nil {
		if errors.Is(err, form.ErrSessionNotFound) {
			h.logger.Warn("GET /sessions/{id} - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
			return
		}
		h.logger.Error("GET /sessions/{id} - Failed to get state: session_id=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromSessionState(state))
}
