package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleRecord venta de un animal. Registrarla deja al animal en estado Sold.
type SaleRecord struct {
	ID           string
	ReferenceNo  string
	GoatID       string
	SaleDate     time.Time
	BuyerName    string
	BuyerContact string
	SalePrice    decimal.Decimal
	Weight       *decimal.Decimal
	PaymentMode  string
	Notes        string
	CreatedBy    string
	CreatedAt    time.Time

	Goat *GoatRef // solo en lecturas
}

type SaleFilter struct {
	GoatID    string
	StartDate *time.Time
	EndDate   *time.Time
}
