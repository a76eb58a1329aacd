package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense gasto de la granja (alimento, veterinario, mano de obra...).
type Expense struct {
	ID          string
	ReferenceNo string
	Date        time.Time
	Category    string
	Description string
	Amount      decimal.Decimal
	PaymentMode string
	VendorName  string
	Notes       string
	CreatedBy   string
	CreatedAt   time.Time
}

// ExpenseFilter rango [StartDate, EndDate] inclusivo por día.
type ExpenseFilter struct {
	Category  string
	StartDate *time.Time
	EndDate   *time.Time
}
