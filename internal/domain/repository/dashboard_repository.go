package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Granja-api/internal/domain/entity"
)

// HerdCounts conteos de animales activos.
type HerdCounts struct {
	Total   int
	Males   int
	Females int
}

// LabelCount conteo agrupado por una etiqueta (raza, estado).
type LabelCount struct {
	Label string
	Count int
}

// LabelAmount suma agrupada por una etiqueta (categoría de gasto).
type LabelAmount struct {
	Label  string
	Amount decimal.Decimal
}

// DashboardRepository consultas de lectura del tablero. Las implementaciones son read-only.
// Los rangos [from, to] son inclusivos y se comparan por día calendario.
type DashboardRepository interface {
	// ── Hato ──────────────────────────────────────────────────────────────────
	CountActiveGoats(ctx context.Context) (HerdCounts, error)
	StatusDistribution(ctx context.Context) ([]LabelCount, error)
	// BreedDistribution solo animales activos.
	BreedDistribution(ctx context.Context) ([]LabelCount, error)

	// ── Reproducción y sanidad ────────────────────────────────────────────────
	RecentBreeding(ctx context.Context, limit int) ([]*entity.BreedingRecord, error)
	// UpcomingKidding partos sin registrar con fecha probable en [from, to], ascendente.
	UpcomingKidding(ctx context.Context, from, to time.Time) ([]*entity.BreedingRecord, error)
	// HealthDue próximas aplicaciones con next_due_date en [from, to], ascendente.
	HealthDue(ctx context.Context, from, to time.Time) ([]*entity.HealthRecord, error)

	// ── Finanzas ──────────────────────────────────────────────────────────────
	// Usa COALESCE para devolver cero si no hay movimientos en el período.
	SumExpenses(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	SumSales(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	ExpensesByCategory(ctx context.Context, from, to time.Time) ([]LabelAmount, error)

	// ── Insumos ───────────────────────────────────────────────────────────────
	LowStockItems(ctx context.Context) ([]*entity.InventoryItem, error)
}
