package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// WeightRecord pesaje de un animal en una fecha.
type WeightRecord struct {
	ID        string
	GoatID    string
	Date      time.Time
	Weight    decimal.Decimal
	Notes     string
	CreatedBy string
	CreatedAt time.Time
}
