package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	HealthVaccination = "Vaccination"
	HealthDeworming   = "Deworming"
	HealthTreatment   = "Treatment"
	HealthCheckup     = "Checkup"
)

// HealthRecord tratamiento, vacuna, desparasitación o revisión de un animal.
type HealthRecord struct {
	ID          string
	ReferenceNo string
	GoatID      string
	Date        time.Time
	RecordType  string
	Description string
	Medicine    string
	Dosage      string
	VetName     string
	Cost        *decimal.Decimal
	NextDueDate *time.Time
	Notes       string
	CreatedBy   string
	CreatedAt   time.Time

	Goat *GoatRef // solo en lecturas
}

// DueWithin indica si la próxima aplicación cae en [hoy, hoy+days].
func (h *HealthRecord) DueWithin(now time.Time, days int) bool {
	from := CalendarDay(now)
	return h.DueBetween(from, from.AddDate(0, 0, days))
}

// DueBetween indica si la próxima aplicación cae en [from, to].
func (h *HealthRecord) DueBetween(from, to time.Time) bool {
	return h.NextDueDate != nil && DayBetween(*h.NextDueDate, from, to)
}

func ValidHealthRecordType(s string) bool {
	switch s {
	case HealthVaccination, HealthDeworming, HealthTreatment, HealthCheckup:
		return true
	}
	return false
}

type HealthFilter struct {
	GoatID     string
	RecordType string
}
