package update_draft

import (
	"github.com/m04kA/SMC-CourtBookingForm/internal/domain"
)

// UpdateDraftRequest HTTP request model
// Отсутствующие поля не меняются
type UpdateDraftRequest struct {
	Date      *string `json:"date,omitempty"`      // "2024-06-01"
	StartTime *string `json:"startTime,omitempty"` // "18:00"
	CourtType *string `json:"courtType,omitempty"` // "", "indoor", "outdoor"
	Coach     *bool   `json:"coach,omitempty"`
}

// ToDraftPatch конвертирует HTTP запрос в изменение черновика
func (r *UpdateDraftRequest) ToDraftPatch() domain.DraftPatch {
	patch := domain.DraftPatch{
		Date:      r.Date,
		StartTime: r.StartTime,
		Coach:     r.Coach,
	}

	if r.CourtType != nil {
		courtType := domain.CourtType(*r.CourtType)
		patch.CourtType = &courtType
	}

	return patch
}
