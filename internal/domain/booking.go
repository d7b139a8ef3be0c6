package domain

import "fmt"

// Quote represents a price breakdown returned for a given draft
type Quote struct {
	BaseHourPrice float64
	EquipmentCost float64
	CoachCost     float64
	TotalPrice    float64

	// Echoed back by some pricing service versions
	Hours     *int
	CourtType *string
}

// Lines returns the quote rendered the way the booking form shows it
func (q *Quote) Lines() []string {
	return []string{
		fmt.Sprintf("Base: %s%s", CurrencySymbol, FormatAmount(q.BaseHourPrice)),
		fmt.Sprintf("Equipment: %s%s", CurrencySymbol, FormatAmount(q.EquipmentCost)),
		fmt.Sprintf("Coach: %s%s", CurrencySymbol, FormatAmount(q.CoachCost)),
		fmt.Sprintf("Total: %s%s", CurrencySymbol, FormatAmount(q.TotalPrice)),
	}
}

// BookingResult represents the outcome of one booking attempt
type BookingResult struct {
	Message string
	Error   string

	CoachAssigned *string
	TotalPrice    *float64
}

// Text returns Message if present, else Error, else BookingFallbackMessage
func (r *BookingResult) Text() string {
	switch {
	case r.Message != "":
		return r.Message
	case r.Error != "":
		return r.Error
	default:
		return BookingFallbackMessage
	}
}

// IsConfirmed returns true if the booking service answered with a message
func (r *BookingResult) IsConfirmed() bool {
	return r.Message != ""
}

// FormatAmount prints whole amounts without decimals and the rest with two
func FormatAmount(amount float64) string {
	if amount == float64(int64(amount)) {
		return fmt.Sprintf("%d", int64(amount))
	}
	return fmt.Sprintf("%.2f", amount)
}

// FormatHours returns the duration label shown next to the counter
func FormatHours(hours int) string {
	return fmt.Sprintf("%d Hr", hours)
}
