package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de un animal.
const (
	GoatStatusActive = "Active"
	GoatStatusSold   = "Sold"
	GoatStatusDead   = "Dead"
	GoatStatusCulled = "Culled"
)

const (
	GenderMale   = "Male"
	GenderFemale = "Female"
)

// Propósito productivo.
const (
	PurposeBreeding = "Breeding"
	PurposeMeat     = "Meat"
	PurposeSale     = "Sale"
)

// Origen del animal.
const (
	SourceBorn      = "Born"
	SourcePurchased = "Purchased"
)

// Goat representa un animal del hato, identificado por su arete (TagNo, único).
// Status solo cambia a Sold desde el registro de ventas o por edición administrativa.
type Goat struct {
	ID            string
	TagNo         string
	Name          string
	Breed         string
	Gender        string
	DateOfBirth   time.Time
	Weight        *decimal.Decimal // peso actual en kg (último pesaje)
	Purpose       string
	Source        string
	PurchasePrice *decimal.Decimal
	PurchaseDate  *time.Time
	SireID        *string
	DamID         *string
	Status        string
	Notes         string
	CreatedBy     string
	UpdatedBy     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsActive indica si el animal sigue en el hato.
func (g *Goat) IsActive() bool {
	return g.Status == GoatStatusActive
}

// AgeInMonths edad en meses completos a la fecha now.
func (g *Goat) AgeInMonths(now time.Time) int {
	if g.DateOfBirth.IsZero() || now.Before(g.DateOfBirth) {
		return 0
	}
	months := (now.Year()-g.DateOfBirth.Year())*12 + int(now.Month()-g.DateOfBirth.Month())
	if now.Day() < g.DateOfBirth.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

func ValidGoatStatus(s string) bool {
	switch s {
	case GoatStatusActive, GoatStatusSold, GoatStatusDead, GoatStatusCulled:
		return true
	}
	return false
}

func ValidGender(s string) bool {
	return s == GenderMale || s == GenderFemale
}

func ValidPurpose(s string) bool {
	switch s {
	case PurposeBreeding, PurposeMeat, PurposeSale:
		return true
	}
	return false
}

func ValidSource(s string) bool {
	return s == SourceBorn || s == SourcePurchased
}

// GoatFilter filtros del listado de animales; campos vacíos no filtran.
type GoatFilter struct {
	Status string
	Breed  string
	Gender string
}

// GoatDetail animal con sus relaciones (padres, crías e historiales).
type GoatDetail struct {
	Goat             *Goat
	Sire             *Goat
	Dam              *Goat
	Offspring        []*Goat
	HealthRecords    []*HealthRecord
	WeightRecords    []*WeightRecord
	BreedingAsMale   []*BreedingRecord
	BreedingAsFemale []*BreedingRecord
}

// GoatRef resumen de un animal embebido en listados de registros.
type GoatRef struct {
	ID    string
	TagNo string
	Name  string
	Breed string
}
