package dto

import "github.com/shopspring/decimal"

// DashboardDTO respuesta de GET /api/dashboard. Se recalcula en cada petición.
type DashboardDTO struct {
	Statistics         StatisticsDTO            `json:"statistics"`
	StatusDistribution []LabelCountDTO          `json:"statusDistribution"`
	BreedDistribution  []LabelCountDTO          `json:"breedDistribution"`
	RecentBreeding     []BreedingRecordResponse `json:"recentBreeding"`
	UpcomingKidding    []BreedingRecordResponse `json:"upcomingKidding"`
	HealthDue          []HealthRecordResponse   `json:"healthDue"`
	Financial          FinancialDTO             `json:"financial"`
	LowStockItems      []InventoryItemResponse  `json:"lowStockItems"`
	GeneratedAt        string                   `json:"generatedAt"`
}

// StatisticsDTO conteos de animales activos.
type StatisticsDTO struct {
	TotalGoats   int `json:"totalGoats"`
	TotalMales   int `json:"totalMales"`
	TotalFemales int `json:"totalFemales"`
}

type LabelCountDTO struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// FinancialDTO totales del mes en curso (día 1 al último día del mes).
type FinancialDTO struct {
	MonthLabel        string              `json:"monthLabel"` // ej: "Marzo 2026"
	MonthlyExpenses   decimal.Decimal     `json:"monthlyExpenses"`
	MonthlySales      decimal.Decimal     `json:"monthlySales"`
	Net               decimal.Decimal     `json:"net"`
	ExpenseByCategory []CategoryAmountDTO `json:"expenseByCategory"`
}

type CategoryAmountDTO struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}
