package domain

import "errors"

var (
	// ErrUnknownEquipment возвращается для инвентаря, которого нет в EquipmentItems
	ErrUnknownEquipment = errors.New("domain: unknown equipment item")

	// ErrInvalidCourtType возвращается для типа корта вне перечисления
	ErrInvalidCourtType = errors.New("domain: invalid court type")

	// ErrDeltaOutOfRange возвращается, если шаг счётчика по модулю больше MaxCounterDelta
	ErrDeltaOutOfRange = errors.New("domain: counter delta out of range")
)
