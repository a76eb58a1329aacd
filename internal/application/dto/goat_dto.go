package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateGoatRequest entrada para registrar un animal.
type CreateGoatRequest struct {
	TagNo         string           `json:"tagNo"`
	Name          string           `json:"name"`
	Breed         string           `json:"breed"`
	Gender        string           `json:"gender"`
	DateOfBirth   Date             `json:"dateOfBirth"`
	Weight        *decimal.Decimal `json:"weight"`
	Purpose       string           `json:"purpose"`
	Source        string           `json:"source"`
	PurchasePrice *decimal.Decimal `json:"purchasePrice"`
	PurchaseDate  *Date            `json:"purchaseDate"`
	SireID        *string          `json:"sireId"`
	DamID         *string          `json:"damId"`
	Status        string           `json:"status"`
	Notes         string           `json:"notes"`
}

// UpdateGoatRequest actualización parcial: solo se aplican los campos presentes.
type UpdateGoatRequest struct {
	TagNo         *string          `json:"tagNo"`
	Name          *string          `json:"name"`
	Breed         *string          `json:"breed"`
	Gender        *string          `json:"gender"`
	DateOfBirth   *Date            `json:"dateOfBirth"`
	Weight        *decimal.Decimal `json:"weight"`
	Purpose       *string          `json:"purpose"`
	Source        *string          `json:"source"`
	PurchasePrice *decimal.Decimal `json:"purchasePrice"`
	PurchaseDate  *Date            `json:"purchaseDate"`
	SireID        *string          `json:"sireId"`
	DamID         *string          `json:"damId"`
	Status        *string          `json:"status"`
	Notes         *string          `json:"notes"`
}

// GoatFilterRequest filtros de GET /api/goats.
type GoatFilterRequest struct {
	Status string `query:"status"`
	Breed  string `query:"breed"`
	Gender string `query:"gender"`
}

// GoatResponse salida de un animal.
type GoatResponse struct {
	ID            string           `json:"id"`
	TagNo         string           `json:"tagNo"`
	Name          string           `json:"name"`
	Breed         string           `json:"breed"`
	Gender        string           `json:"gender"`
	DateOfBirth   Date             `json:"dateOfBirth"`
	AgeMonths     int              `json:"ageMonths"`
	Weight        *decimal.Decimal `json:"weight"`
	Purpose       string           `json:"purpose"`
	Source        string           `json:"source"`
	PurchasePrice *decimal.Decimal `json:"purchasePrice"`
	PurchaseDate  *Date            `json:"purchaseDate"`
	SireID        *string          `json:"sireId"`
	DamID         *string          `json:"damId"`
	Status        string           `json:"status"`
	Notes         string           `json:"notes"`
	CreatedBy     string           `json:"createdBy"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

// GoatDetailResponse animal con padres, crías e historiales (GET /api/goats/:id).
type GoatDetailResponse struct {
	GoatResponse
	Sire             *GoatRefDTO              `json:"sire"`
	Dam              *GoatRefDTO              `json:"dam"`
	Offspring        []GoatRefDTO             `json:"offspring"`
	HealthRecords    []HealthRecordResponse   `json:"healthRecords"`
	WeightRecords    []WeightRecordResponse   `json:"weightRecords"`
	BreedingAsMale   []BreedingRecordResponse `json:"breedingAsMale"`
	BreedingAsFemale []BreedingRecordResponse `json:"breedingAsFemale"`
}

// GoatRefDTO resumen de un animal embebido en otros recursos.
type GoatRefDTO struct {
	ID    string `json:"id"`
	TagNo string `json:"tagNo"`
	Name  string `json:"name"`
	Breed string `json:"breed,omitempty"`
}

// CreateWeightRequest entrada de POST /api/goats/:id/weights.
type CreateWeightRequest struct {
	Date   Date            `json:"date"`
	Weight decimal.Decimal `json:"weight"`
	Notes  string          `json:"notes"`
}

type WeightRecordResponse struct {
	ID        string          `json:"id"`
	GoatID    string          `json:"goatId"`
	Date      Date            `json:"date"`
	Weight    decimal.Decimal `json:"weight"`
	Notes     string          `json:"notes"`
	CreatedBy string          `json:"createdBy"`
	CreatedAt time.Time       `json:"createdAt"`
}
