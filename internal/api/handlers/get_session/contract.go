package get_session

import (
	"context"

	"github.com/m04kA/SMC-CourtBookingForm/internal/service/form/models"
)

type FormService interface {
	GetState(ctx context.Context, id string, wait bool) (*models.SessionState, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
