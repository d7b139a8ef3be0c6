package create_session

import (
	"github.com/m04kA/SMC-CourtBookingForm/internal/service/form/models"
)

type FormService interface {
	CreateSession() *models.SessionState
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
