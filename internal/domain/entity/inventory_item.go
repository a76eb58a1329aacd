package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem insumo de la granja (alimento, medicamento, equipo).
type InventoryItem struct {
	ID            string
	ReferenceNo   string
	ItemName      string
	Category      string
	Quantity      decimal.Decimal
	Unit          string
	MinStock      decimal.Decimal
	UnitPrice     *decimal.Decimal
	Supplier      string
	LastRestocked *time.Time
	ExpiryDate    *time.Time
	Notes         string
	CreatedBy     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsLowStock existencias en o por debajo del mínimo configurado.
func (i *InventoryItem) IsLowStock() bool {
	return i.Quantity.LessThanOrEqual(i.MinStock)
}

type InventoryFilter struct {
	Category string
	LowStock bool
}
