package domain

// CourtType represents the kind of court requested
type CourtType string

// IsValid returns true for an enumerated court type or an unset one
func (c CourtType) IsValid() bool {
	if c == CourtTypeUnset {
		return true
	}
	for _, t := range CourtTypes {
		if c == t {
			return true
		}
	}
	return false
}

// EquipmentItem represents a rentable equipment item
type EquipmentItem string

// IsKnown returns true if the item is listed in EquipmentItems
func (i EquipmentItem) IsKnown() bool {
	for _, item := range EquipmentItems {
		if i == item {
			return true
		}
	}
	return false
}

// Draft represents the in-progress booking form state before submission
type Draft struct {
	Date      string // "2024-06-01"
	StartTime string // "18:00"
	Hours     int
	CourtType CourtType
	Equipment map[EquipmentItem]int
	Coach     bool
}

// NewDraft returns an empty draft with one hour and zero equipment
func NewDraft() Draft {
	equipment := make(map[EquipmentItem]int, len(EquipmentItems))
	for _, item := range EquipmentItems {
		equipment[item] = MinEquipmentCount
	}

	return Draft{
		Hours:     DefaultHours,
		CourtType: CourtTypeUnset,
		Equipment: equipment,
	}
}

// ValidateCounterDelta checks that a single counter step is within MaxCounterDelta
func ValidateCounterDelta(delta int) error {
	if delta < -MaxCounterDelta || delta > MaxCounterDelta {
		return ErrDeltaOutOfRange
	}
	return nil
}

// ChangeHours adjusts the duration, saturating at MinHours and MaxHours
func (d *Draft) ChangeHours(delta int) {
	d.Hours = saturatingAdd(d.Hours, delta, MinHours, MaxHours)
}

// ChangeEquipment adjusts the count of one item, saturating at MinEquipmentCount and MaxEquipmentCount
func (d *Draft) ChangeEquipment(item EquipmentItem, delta int) error {
	if !item.IsKnown() {
		return ErrUnknownEquipment
	}
	if d.Equipment == nil {
		d.Equipment = make(map[EquipmentItem]int, len(EquipmentItems))
	}
	d.Equipment[item] = saturatingAdd(d.Equipment[item], delta, MinEquipmentCount, MaxEquipmentCount)
	return nil
}

// saturatingAdd returns value+delta bounded to [lo, hi] without overflowing
func saturatingAdd(value, delta, lo, hi int) int {
	value = min(max(value, lo), hi)
	if delta > 0 && delta > hi-value {
		return hi
	}
	return min(max(value+delta, lo), hi)
}

// EquipmentCount returns the current count of an item
func (d *Draft) EquipmentCount(item EquipmentItem) int {
	return d.Equipment[item]
}

// Manifest flattens equipment counts into a per-unit list of item names
func (d *Draft) Manifest() []string {
	manifest := make([]string, 0, d.totalEquipment())
	for _, item := range EquipmentItems {
		for i := 0; i < d.boundedCount(item); i++ {
			manifest = append(manifest, string(item))
		}
	}
	return manifest
}

func (d *Draft) totalEquipment() int {
	total := 0
	for _, item := range EquipmentItems {
		total += d.boundedCount(item)
	}
	return total
}

func (d *Draft) boundedCount(item EquipmentItem) int {
	return min(max(d.Equipment[item], MinEquipmentCount), MaxEquipmentCount)
}

// IsQuotable returns true if court type, date and start time are all set
func (d *Draft) IsQuotable() bool {
	return d.CourtType != CourtTypeUnset && d.Date != "" && d.StartTime != ""
}

// Clone returns a deep copy of the draft
func (d *Draft) Clone() Draft {
	clone := *d
	clone.Equipment = make(map[EquipmentItem]int, len(d.Equipment))
	for item, count := range d.Equipment {
		clone.Equipment[item] = count
	}
	return clone
}

// DraftPatch частичное обновление полей черновика
// nil означает, что поле не меняется
type DraftPatch struct {
	Date      *string
	StartTime *string
	CourtType *CourtType
	Coach     *bool
}

// Apply применяет изменения к черновику
// Возвращает true, если хотя бы одно поле действительно изменилось
func (p DraftPatch) Apply(d *Draft) (bool, error) {
	if p.CourtType != nil && !p.CourtType.IsValid() {
		return false, ErrInvalidCourtType
	}

	changed := false

	if p.Date != nil && *p.Date != d.Date {
		d.Date = *p.Date
		changed = true
	}
	if p.StartTime != nil && *p.StartTime != d.StartTime {
		d.StartTime = *p.StartTime
		changed = true
	}
	if p.CourtType != nil && *p.CourtType != d.CourtType {
		d.CourtType = *p.CourtType
		changed = true
	}
	if p.Coach != nil && *p.Coach != d.Coach {
		d.Coach = *p.Coach
		changed = true
	}

	return changed, nil
}
