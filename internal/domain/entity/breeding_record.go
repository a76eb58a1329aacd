package entity

import "time"

const (
	BreedingMethodNatural = "Natural"
	BreedingMethodAI      = "AI"
)

// GestationDays gestación caprina usada para la fecha probable de parto.
const GestationDays = 150

// BreedingRecord monta o inseminación entre un macho y una hembra.
type BreedingRecord struct {
	ID              string
	ReferenceNo     string
	MaleGoatID      string
	FemaleGoatID    string
	BreedingDate    time.Time
	BreedingMethod  string
	ExpectedKidDate time.Time
	ActualKidDate   *time.Time
	KidsBorn        *int
	Notes           string
	CreatedBy       string
	CreatedAt       time.Time

	MaleGoat   *GoatRef // solo en lecturas
	FemaleGoat *GoatRef
}

// ExpectedKidDateFrom fecha probable de parto a partir de la fecha de monta.
func ExpectedKidDateFrom(breedingDate time.Time) time.Time {
	return breedingDate.AddDate(0, 0, GestationDays)
}

// KiddingDueWithin indica si el parto sigue pendiente y su fecha probable cae en [hoy, hoy+days].
func (b *BreedingRecord) KiddingDueWithin(now time.Time, days int) bool {
	from := CalendarDay(now)
	return b.KiddingDueBetween(from, from.AddDate(0, 0, days))
}

// KiddingDueBetween indica si el parto sigue pendiente y su fecha probable cae en [from, to].
func (b *BreedingRecord) KiddingDueBetween(from, to time.Time) bool {
	return b.ActualKidDate == nil && DayBetween(b.ExpectedKidDate, from, to)
}

func ValidBreedingMethod(s string) bool {
	return s == BreedingMethodNatural || s == BreedingMethodAI
}

// BreedingFilter GoatID coincide con el macho o con la hembra.
type BreedingFilter struct {
	GoatID string
}
