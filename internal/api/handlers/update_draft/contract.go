package update_draft

import (
	"github.com/m04kA/SMC-CourtBookingForm/internal/domain"
	"github.com/m04kA/SMC-CourtBookingForm/internal/service/form/models"
)

type FormService interface {
	UpdateDraft(id string, patch domain.DraftPatch) (*models.SessionState, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
