package change_equipment

import (
	"github.com/m04kA/SMC-CourtBookingForm/internal/domain"
	"github.com/m04kA/SMC-CourtBookingForm/internal/service/form/models"
)

type FormService interface {
	ChangeEquipment(id string, item domain.EquipmentItem, delta int) (*models.SessionState, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
