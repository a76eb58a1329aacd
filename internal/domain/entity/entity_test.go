package entity

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hoy = time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)

func fecha(days int) *time.Time {
	t := hoy.AddDate(0, 0, days)
	return &t
}

func TestBreedingRecord_KiddingDueWithin(t *testing.T) {
	pendiente := &BreedingRecord{ExpectedKidDate: *fecha(15)}
	assert.True(t, pendiente.KiddingDueWithin(hoy, 30))

	parida := &BreedingRecord{ExpectedKidDate: *fecha(15), ActualKidDate: fecha(-1)}
	assert.False(t, parida.KiddingDueWithin(hoy, 30), "con parto registrado no está pendiente")

	// Extremos inclusivos a nivel de día, sin importar la hora
	assert.True(t, (&BreedingRecord{ExpectedKidDate: StartOfDay(hoy)}).KiddingDueWithin(hoy, 30))
	assert.True(t, (&BreedingRecord{ExpectedKidDate: StartOfDay(hoy).AddDate(0, 0, 30)}).KiddingDueWithin(hoy, 30))
	assert.False(t, (&BreedingRecord{ExpectedKidDate: *fecha(31)}).KiddingDueWithin(hoy, 30))
	assert.False(t, (&BreedingRecord{ExpectedKidDate: *fecha(-1)}).KiddingDueWithin(hoy, 30))
}

func TestHealthRecord_DueWithin(t *testing.T) {
	assert.True(t, (&HealthRecord{NextDueDate: fecha(3)}).DueWithin(hoy, 7))
	assert.False(t, (&HealthRecord{NextDueDate: fecha(10)}).DueWithin(hoy, 7))
	assert.True(t, (&HealthRecord{NextDueDate: fecha(7)}).DueWithin(hoy, 7))
	assert.False(t, (&HealthRecord{}).DueWithin(hoy, 7))
}

// Fechas guardadas como medianoche UTC frente a un "hoy" en hora local, a ambos lados de UTC.
func TestWithinDays_ZonaLocal(t *testing.T) {
	for _, zona := range []string{"America/Bogota", "Europe/Madrid"} {
		t.Run(zona, func(t *testing.T) {
			loc, err := time.LoadLocation(zona)
			require.NoError(t, err)
			ahora := time.Date(2026, 3, 1, 10, 0, 0, 0, loc)
			dia := func(d int) time.Time { return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC) }

			assert.True(t, WithinDays(dia(1), ahora, 7), "hoy entra")
			assert.True(t, WithinDays(dia(8), ahora, 7), "hoy+7 entra")
			assert.False(t, WithinDays(dia(9), ahora, 7))
			assert.False(t, WithinDays(time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC), ahora, 7))

			h := &HealthRecord{NextDueDate: ptr(dia(8))}
			assert.True(t, h.DueWithin(ahora, 7))
			b := &BreedingRecord{ExpectedKidDate: dia(1)}
			assert.True(t, b.KiddingDueWithin(ahora, 30))
		})
	}
}

func ptr(t time.Time) *time.Time { return &t }

func TestInventoryItem_IsLowStock(t *testing.T) {
	bajo := &InventoryItem{Quantity: decimal.NewFromInt(5), MinStock: decimal.NewFromInt(10)}
	ok := &InventoryItem{Quantity: decimal.NewFromInt(20), MinStock: decimal.NewFromInt(10)}
	limite := &InventoryItem{Quantity: decimal.NewFromInt(10), MinStock: decimal.NewFromInt(10)}

	assert.True(t, bajo.IsLowStock())
	assert.False(t, ok.IsLowStock())
	assert.True(t, limite.IsLowStock(), "igual al mínimo cuenta como bajo")
}

func TestExpectedKidDateFrom(t *testing.T) {
	monta := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 5, 31, 0, 0, 0, 0, time.UTC), ExpectedKidDateFrom(monta))
}

func TestGoat_AgeInMonths(t *testing.T) {
	g := &Goat{DateOfBirth: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, 13, g.AgeInMonths(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 14, g.AgeInMonths(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 0, g.AgeInMonths(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestNormalizeLabel(t *testing.T) {
	assert.Equal(t, "Boer", NormalizeLabel("  boer "))
	assert.Equal(t, "Feed Supplement", NormalizeLabel("feed   SUPPLEMENT"))
	assert.Equal(t, "", NormalizeLabel("   "))
}
