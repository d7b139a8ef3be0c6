package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestNewDraft(t *testing.T) {
	d := NewDraft()

	assert.Equal(t, 1, d.Hours)
	assert.Equal(t, CourtTypeUnset, d.CourtType)
	assert.Equal(t, 0, d.EquipmentCount(EquipmentRacket))
	assert.Equal(t, 0, d.EquipmentCount(EquipmentShoes))
	assert.False(t, d.Coach)
	assert.False(t, d.IsQuotable())
	assert.Empty(t, d.Manifest())
}

func TestChangeHours_NeverBelowOne(t *testing.T) {
	d := NewDraft()

	for i := 0; i < 10; i++ {
		d.ChangeHours(-1)
		assert.GreaterOrEqual(t, d.Hours, 1)
	}
	assert.Equal(t, 1, d.Hours)

	d.ChangeHours(1)
	d.ChangeHours(1)
	assert.Equal(t, 3, d.Hours)

	d.ChangeHours(-100)
	assert.Equal(t, 1, d.Hours)
}

func TestChangeEquipment_ClampedPerItem(t *testing.T) {
	d := NewDraft()

	require.NoError(t, d.ChangeEquipment(EquipmentRacket, 1))
	require.NoError(t, d.ChangeEquipment(EquipmentRacket, 1))
	require.NoError(t, d.ChangeEquipment(EquipmentShoes, -1))
	require.NoError(t, d.ChangeEquipment(EquipmentShoes, -1))

	assert.Equal(t, 2, d.EquipmentCount(EquipmentRacket))
	assert.Equal(t, 0, d.EquipmentCount(EquipmentShoes))

	require.NoError(t, d.ChangeEquipment(EquipmentRacket, -5))
	assert.Equal(t, 0, d.EquipmentCount(EquipmentRacket))
}

func TestChangeHours_SaturatesAtMax(t *testing.T) {
	d := NewDraft()
	d.ChangeHours(5)
	require.Equal(t, 6, d.Hours)

	d.ChangeHours(math.MaxInt)
	assert.Equal(t, MaxHours, d.Hours)

	d.ChangeHours(1)
	assert.Equal(t, MaxHours, d.Hours)

	d.ChangeHours(math.MinInt)
	assert.Equal(t, MinHours, d.Hours)
}

func TestChangeEquipment_SaturatesAtMax(t *testing.T) {
	d := NewDraft()

	require.NoError(t, d.ChangeEquipment(EquipmentRacket, math.MaxInt))
	assert.Equal(t, MaxEquipmentCount, d.EquipmentCount(EquipmentRacket))

	// Значение вне диапазона, выставленное напрямую, тоже приводится к границе
	d.Equipment[EquipmentShoes] = math.MaxInt
	require.NoError(t, d.ChangeEquipment(EquipmentShoes, 1))
	assert.Equal(t, MaxEquipmentCount, d.EquipmentCount(EquipmentShoes))

	require.NoError(t, d.ChangeEquipment(EquipmentShoes, math.MinInt))
	assert.Equal(t, 0, d.EquipmentCount(EquipmentShoes))
	assert.Len(t, d.Manifest(), MaxEquipmentCount)
}

func TestManifest_BoundedForOutOfRangeCounts(t *testing.T) {
	d := NewDraft()
	d.Equipment[EquipmentRacket] = math.MaxInt
	d.Equipment[EquipmentShoes] = -3

	assert.Len(t, d.Manifest(), MaxEquipmentCount)
}

func TestValidateCounterDelta(t *testing.T) {
	assert.NoError(t, ValidateCounterDelta(0))
	assert.NoError(t, ValidateCounterDelta(MaxCounterDelta))
	assert.NoError(t, ValidateCounterDelta(-MaxCounterDelta))
	assert.ErrorIs(t, ValidateCounterDelta(MaxCounterDelta+1), ErrDeltaOutOfRange)
	assert.ErrorIs(t, ValidateCounterDelta(math.MinInt), ErrDeltaOutOfRange)
	assert.ErrorIs(t, ValidateCounterDelta(1<<62), ErrDeltaOutOfRange)
}

func TestChangeEquipment_UnknownItem(t *testing.T) {
	d := NewDraft()

	err := d.ChangeEquipment(EquipmentItem("net"), 1)

	assert.ErrorIs(t, err, ErrUnknownEquipment)
	assert.Empty(t, d.Manifest())
}

func TestManifest(t *testing.T) {
	tests := []struct {
		name   string
		racket int
		shoes  int
		want   []string
	}{
		{name: "empty", want: []string{}},
		{name: "one racket", racket: 1, want: []string{"racket"}},
		{name: "mixed", racket: 2, shoes: 3, want: []string{"racket", "racket", "shoes", "shoes", "shoes"}},
		{name: "shoes only", shoes: 2, want: []string{"shoes", "shoes"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDraft()
			require.NoError(t, d.ChangeEquipment(EquipmentRacket, tt.racket))
			require.NoError(t, d.ChangeEquipment(EquipmentShoes, tt.shoes))

			manifest := d.Manifest()

			assert.Equal(t, tt.want, manifest)
			assert.Len(t, manifest, tt.racket+tt.shoes)
		})
	}
}

func TestIsQuotable(t *testing.T) {
	d := NewDraft()
	d.CourtType = CourtTypeIndoor
	d.Date = "2024-06-01"
	assert.False(t, d.IsQuotable())

	d.StartTime = "18:00"
	assert.True(t, d.IsQuotable())

	d.Date = ""
	assert.False(t, d.IsQuotable())
}

func TestClone_IsDeep(t *testing.T) {
	d := NewDraft()
	require.NoError(t, d.ChangeEquipment(EquipmentShoes, 1))

	clone := d.Clone()
	require.NoError(t, clone.ChangeEquipment(EquipmentShoes, 1))

	assert.Equal(t, 1, d.EquipmentCount(EquipmentShoes))
	assert.Equal(t, 2, clone.EquipmentCount(EquipmentShoes))
}

func TestDraftPatch_Apply(t *testing.T) {
	d := NewDraft()

	changed, err := DraftPatch{
		Date:      ptr("2024-06-01"),
		CourtType: ptr(CourtTypeOutdoor),
	}.Apply(&d)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "2024-06-01", d.Date)
	assert.Equal(t, CourtTypeOutdoor, d.CourtType)

	changed, err = DraftPatch{Date: ptr("2024-06-01")}.Apply(&d)
	require.NoError(t, err)
	assert.False(t, changed)

	changed, err = DraftPatch{CourtType: ptr(CourtType("clay")), Coach: ptr(true)}.Apply(&d)
	assert.ErrorIs(t, err, ErrInvalidCourtType)
	assert.False(t, changed)
	assert.False(t, d.Coach)
}

func TestBookingResult_Text(t *testing.T) {
	assert.Equal(t, "Confirmed", (&BookingResult{Message: "Confirmed"}).Text())
	assert.Equal(t, "Slot taken", (&BookingResult{Error: "Slot taken"}).Text())
	assert.Equal(t, BookingFallbackMessage, (&BookingResult{}).Text())
	assert.Equal(t, "ok", (&BookingResult{Message: "ok", Error: "ignored"}).Text())
}

func TestQuote_Lines(t *testing.T) {
	q := &Quote{BaseHourPrice: 200, EquipmentCost: 50, CoachCost: 100, TotalPrice: 350}

	assert.Equal(t, []string{
		"Base: ₹200",
		"Equipment: ₹50",
		"Coach: ₹100",
		"Total: ₹350",
	}, q.Lines())

	q.TotalPrice = 1080.5
	assert.Equal(t, "Total: ₹1080.50", q.Lines()[3])
}
