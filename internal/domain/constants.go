package domain

// Court types
const (
	CourtTypeUnset   CourtType = ""
	CourtTypeIndoor  CourtType = "indoor"
	CourtTypeOutdoor CourtType = "outdoor"
)

// Equipment items
const (
	EquipmentRacket EquipmentItem = "racket"
	EquipmentShoes  EquipmentItem = "shoes"
)

// Draft counter bounds
const (
	MinHours          = 1
	MaxHours          = 24
	MinEquipmentCount = 0
	MaxEquipmentCount = 20 // на каждый вид инвентаря
	DefaultHours      = MinHours

	// MaxCounterDelta максимальный шаг одного изменения счётчика
	MaxCounterDelta = MaxHours
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// BookingFallbackMessage показывается, если сервис бронирования не вернул ни message, ни error
const BookingFallbackMessage = "Booking failed"

// CurrencySymbol символ валюты в отображаемых ценах
const CurrencySymbol = "₹"

// EquipmentItems список доступного инвентаря
// Порядок определяет порядок элементов в манифесте
var EquipmentItems = []EquipmentItem{
	EquipmentRacket,
	EquipmentShoes,
}

// CourtTypes список допустимых типов кортов (без CourtTypeUnset)
var CourtTypes = []CourtType{
	CourtTypeIndoor,
	CourtTypeOutdoor,
}
