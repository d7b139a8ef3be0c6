package update_draft

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
	msgInvalidCourtType   = "некорректный тип корта, ожидается indoor или outdoor"
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

// Handle PATCH /api/v1/sessions/{sessionId}/draft
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req UpdateDraftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /sessions/{id}/draft - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	state, err := h.service.UpdateDraft(sessionID, req.ToDraftPatch())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCourtType):
			h.logger.Warn("PATCH /sessions/{id}/draft - Invalid court type: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgInvalidCourtType)

		case errors.Is(err, form.ErrSessionNotFound):
			h.logger.Warn("PATCH /sessions/{id}/draft - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, form.ErrSessionClosed):
			h.logger.Warn("PATCH /sessions/{id}/draft - Session closed: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionClosed)

		default:
			h.logger.Error("PATCH /sessions/{id}/draft - Failed to update draft: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /sessions/{id}/draft - Draft updated: session_id=%s, generation=%d", sessionID, state.Generation)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromSessionState(state))
}
