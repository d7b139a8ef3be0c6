package refresh_quote

import (
	"fmt"

	"github.com/m04kA/SMC-CourtBookingForm/internal/domain"
)

// validateDraft проверяет наличие обязательных полей и инварианты черновика
func validateDraft(d *domain.Draft) error {
	if !d.IsQuotable() {
		return ErrDraftIncomplete
	}

	if !d.CourtType.IsValid() {
		return fmt.Errorf("%w: unknown court type %q", ErrInvalidInput, d.CourtType)
	}

	if d.Hours < domain.MinHours {
		return fmt.Errorf("%w: hours must be at least %d", ErrInvalidInput, domain.MinHours)
	}

	return nil
}
