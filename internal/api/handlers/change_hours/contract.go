package change_hours

import (
	"github.com/m04kA/SMC-CourtBookingForm/internal/service/form/models"
)

type FormService interface {
	ChangeHours(id string, delta int) (*models.SessionState, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
