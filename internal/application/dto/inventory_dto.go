package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateInventoryRequest struct {
	ItemName      string           `json:"itemName"`
	Category      string           `json:"category"`
	Quantity      decimal.Decimal  `json:"quantity"`
	Unit          string           `json:"unit"`
	MinStock      decimal.Decimal  `json:"minStock"`
	UnitPrice     *decimal.Decimal `json:"unitPrice"`
	Supplier      string           `json:"supplier"`
	LastRestocked *Date            `json:"lastRestocked"`
	ExpiryDate    *Date            `json:"expiryDate"`
	Notes         string           `json:"notes"`
}

// UpdateInventoryRequest actualización parcial de un insumo.
type UpdateInventoryRequest struct {
	ItemName      *string          `json:"itemName"`
	Category      *string          `json:"category"`
	Quantity      *decimal.Decimal `json:"quantity"`
	Unit          *string          `json:"unit"`
	MinStock      *decimal.Decimal `json:"minStock"`
	UnitPrice     *decimal.Decimal `json:"unitPrice"`
	Supplier      *string          `json:"supplier"`
	LastRestocked *Date            `json:"lastRestocked"`
	ExpiryDate    *Date            `json:"expiryDate"`
	Notes         *string          `json:"notes"`
}

type InventoryFilterRequest struct {
	Category string `query:"category"`
	LowStock bool   `query:"lowStock"`
}

type InventoryItemResponse struct {
	ID            string           `json:"id"`
	ReferenceNo   string           `json:"referenceNo"`
	ItemName      string           `json:"itemName"`
	Category      string           `json:"category"`
	Quantity      decimal.Decimal  `json:"quantity"`
	Unit          string           `json:"unit"`
	MinStock      decimal.Decimal  `json:"minStock"`
	UnitPrice     *decimal.Decimal `json:"unitPrice"`
	Supplier      string           `json:"supplier"`
	LastRestocked *Date            `json:"lastRestocked"`
	ExpiryDate    *Date            `json:"expiryDate"`
	LowStock      bool             `json:"lowStock"`
	Notes         string           `json:"notes"`
	CreatedBy     string           `json:"createdBy"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}
