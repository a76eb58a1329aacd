package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Reproducción ──────────────────────────────────────────────────────────────

// CreateBreedingRequest ExpectedKidDate se calcula (monta + 150 días) si no se envía.
type CreateBreedingRequest struct {
	MaleGoatID      string `json:"maleGoatId"`
	FemaleGoatID    string `json:"femaleGoatId"`
	BreedingDate    Date   `json:"breedingDate"`
	BreedingMethod  string `json:"breedingMethod"`
	ExpectedKidDate *Date  `json:"expectedKidDate"`
	ActualKidDate   *Date  `json:"actualKidDate"`
	KidsBorn        *int   `json:"kidsBorn"`
	Notes           string `json:"notes"`
}

type BreedingRecordResponse struct {
	ID              string      `json:"id"`
	ReferenceNo     string      `json:"referenceNo"`
	MaleGoatID      string      `json:"maleGoatId"`
	FemaleGoatID    string      `json:"femaleGoatId"`
	MaleGoat        *GoatRefDTO `json:"maleGoat,omitempty"`
	FemaleGoat      *GoatRefDTO `json:"femaleGoat,omitempty"`
	BreedingDate    Date        `json:"breedingDate"`
	BreedingMethod  string      `json:"breedingMethod"`
	ExpectedKidDate Date        `json:"expectedKidDate"`
	ActualKidDate   *Date       `json:"actualKidDate"`
	KidsBorn        *int        `json:"kidsBorn"`
	Notes           string      `json:"notes"`
	CreatedBy       string      `json:"createdBy"`
	CreatedAt       time.Time   `json:"createdAt"`
}

// ── Sanidad ───────────────────────────────────────────────────────────────────

type CreateHealthRequest struct {
	GoatID      string           `json:"goatId"`
	Date        Date             `json:"date"`
	RecordType  string           `json:"recordType"`
	Description string           `json:"description"`
	Medicine    string           `json:"medicine"`
	Dosage      string           `json:"dosage"`
	VetName     string           `json:"vetName"`
	Cost        *decimal.Decimal `json:"cost"`
	NextDueDate *Date            `json:"nextDueDate"`
	Notes       string           `json:"notes"`
}

type HealthRecordResponse struct {
	ID          string           `json:"id"`
	ReferenceNo string           `json:"referenceNo"`
	GoatID      string           `json:"goatId"`
	Goat        *GoatRefDTO      `json:"goat,omitempty"`
	Date        Date             `json:"date"`
	RecordType  string           `json:"recordType"`
	Description string           `json:"description"`
	Medicine    string           `json:"medicine"`
	Dosage      string           `json:"dosage"`
	VetName     string           `json:"vetName"`
	Cost        *decimal.Decimal `json:"cost"`
	NextDueDate *Date            `json:"nextDueDate"`
	Notes       string           `json:"notes"`
	CreatedBy   string           `json:"createdBy"`
	CreatedAt   time.Time        `json:"createdAt"`
}

// ── Gastos ────────────────────────────────────────────────────────────────────

type CreateExpenseRequest struct {
	Date        Date            `json:"date"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentMode string          `json:"paymentMode"`
	VendorName  string          `json:"vendorName"`
	Notes       string          `json:"notes"`
}

type ExpenseResponse struct {
	ID          string          `json:"id"`
	ReferenceNo string          `json:"referenceNo"`
	Date        Date            `json:"date"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentMode string          `json:"paymentMode"`
	VendorName  string          `json:"vendorName"`
	Notes       string          `json:"notes"`
	CreatedBy   string          `json:"createdBy"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ── Ventas ────────────────────────────────────────────────────────────────────

type CreateSaleRequest struct {
	GoatID       string           `json:"goatId"`
	SaleDate     Date             `json:"saleDate"`
	BuyerName    string           `json:"buyerName"`
	BuyerContact string           `json:"buyerContact"`
	SalePrice    decimal.Decimal  `json:"salePrice"`
	Weight       *decimal.Decimal `json:"weight"`
	PaymentMode  string           `json:"paymentMode"`
	Notes        string           `json:"notes"`
}

type SaleResponse struct {
	ID           string           `json:"id"`
	ReferenceNo  string           `json:"referenceNo"`
	GoatID       string           `json:"goatId"`
	Goat         *GoatRefDTO      `json:"goat,omitempty"`
	SaleDate     Date             `json:"saleDate"`
	BuyerName    string           `json:"buyerName"`
	BuyerContact string           `json:"buyerContact"`
	SalePrice    decimal.Decimal  `json:"salePrice"`
	Weight       *decimal.Decimal `json:"weight"`
	PaymentMode  string           `json:"paymentMode"`
	Notes        string           `json:"notes"`
	CreatedBy    string           `json:"createdBy"`
	CreatedAt    time.Time        `json:"createdAt"`
}

// ── Filtros de listados ───────────────────────────────────────────────────────

// RecordFilterRequest query params comunes de los listados de registros; cada endpoint usa los suyos.
type RecordFilterRequest struct {
	GoatID     string `query:"goatId"`
	RecordType string `query:"recordType"`
	Category   string `query:"category"`
	StartDate  string `query:"startDate"`
	EndDate    string `query:"endDate"`
}
