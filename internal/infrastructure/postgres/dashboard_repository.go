package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Granja-api/internal/domain/entity"
	"github.com/jhoicas/Granja-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas de solo lectura del tablero.
type DashboardRepo struct {
	q Querier
}

func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// ── Hato ──────────────────────────────────────────────────────────────────────

func (r *DashboardRepo) CountActiveGoats(ctx context.Context) (repository.HerdCounts, error) {
	var c repository.HerdCounts
	err := r.q.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE gender = 'Male'),
		       COUNT(*) FILTER (WHERE gender = 'Female')
		FROM goats WHERE status = 'Active'`).Scan(&c.Total, &c.Males, &c.Females)
	if err != nil {
		return c, fmt.Errorf("count active goats: %w", err)
	}
	return c, nil
}

func (r *DashboardRepo) StatusDistribution(ctx context.Context) ([]repository.LabelCount, error) {
	return r.labelCounts(ctx, `
		SELECT status, COUNT(*) FROM goats
		GROUP BY status ORDER BY COUNT(*) DESC, status`)
}

func (r *DashboardRepo) BreedDistribution(ctx context.Context) ([]repository.LabelCount, error) {
	return r.labelCounts(ctx, `
		SELECT breed, COUNT(*) FROM goats WHERE status = 'Active'
		GROUP BY breed ORDER BY COUNT(*) DESC, breed`)
}

func (r *DashboardRepo) labelCounts(ctx context.Context, query string) ([]repository.LabelCount, error) {
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("label counts: %w", err)
	}
	defer rows.Close()
	out := make([]repository.LabelCount, 0)
	for rows.Next() {
		var lc repository.LabelCount
		if err := rows.Scan(&lc.Label, &lc.Count); err != nil {
			return nil, fmt.Errorf("scan label count: %w", err)
		}
		out = append(out, lc)
	}
	return out, rows.Err()
}

// ── Reproducción y sanidad ────────────────────────────────────────────────────

func (r *DashboardRepo) RecentBreeding(ctx context.Context, limit int) ([]*entity.BreedingRecord, error) {
	rows, err := r.q.Query(ctx, breedingSelect+` ORDER BY b.breeding_date DESC, b.created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent breeding: %w", err)
	}
	return collectBreeding(rows)
}

func (r *DashboardRepo) UpcomingKidding(ctx context.Context, from, to time.Time) ([]*entity.BreedingRecord, error) {
	rows, err := r.q.Query(ctx, breedingSelect+`
		WHERE b.actual_kid_date IS NULL
		  AND b.expected_kid_date BETWEEN $1::date AND $2::date
		ORDER BY b.expected_kid_date`, entity.CalendarDay(from), entity.CalendarDay(to))
	if err != nil {
		return nil, fmt.Errorf("upcoming kidding: %w", err)
	}
	return collectBreeding(rows)
}

func (r *DashboardRepo) HealthDue(ctx context.Context, from, to time.Time) ([]*entity.HealthRecord, error) {
	rows, err := r.q.Query(ctx, healthSelect+`
		WHERE h.next_due_date BETWEEN $1::date AND $2::date
		ORDER BY h.next_due_date`, entity.CalendarDay(from), entity.CalendarDay(to))
	if err != nil {
		return nil, fmt.Errorf("health due: %w", err)
	}
	return collectHealth(rows)
}

// ── Finanzas ──────────────────────────────────────────────────────────────────

func (r *DashboardRepo) sum(ctx context.Context, query string, from, to time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query, entity.CalendarDay(from), entity.CalendarDay(to)).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("sum: %w", err)
	}
	return total, nil
}

func (r *DashboardRepo) SumExpenses(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	return r.sum(ctx, `SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE date BETWEEN $1::date AND $2::date`, from, to)
}

func (r *DashboardRepo) SumSales(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	return r.sum(ctx, `SELECT COALESCE(SUM(sale_price), 0) FROM sale_records WHERE sale_date BETWEEN $1::date AND $2::date`, from, to)
}

func (r *DashboardRepo) ExpensesByCategory(ctx context.Context, from, to time.Time) ([]repository.LabelAmount, error) {
	rows, err := r.q.Query(ctx, `
		SELECT category, SUM(amount) FROM expenses
		WHERE date BETWEEN $1::date AND $2::date
		GROUP BY category ORDER BY SUM(amount) DESC, category`,
		entity.CalendarDay(from), entity.CalendarDay(to))
	if err != nil {
		return nil, fmt.Errorf("expenses by category: %w", err)
	}
	defer rows.Close()
	out := make([]repository.LabelAmount, 0)
	for rows.Next() {
		var la repository.LabelAmount
		if err := rows.Scan(&la.Label, &la.Amount); err != nil {
			return nil, fmt.Errorf("scan expense category: %w", err)
		}
		out = append(out, la)
	}
	return out, rows.Err()
}

// ── Insumos ───────────────────────────────────────────────────────────────────

func (r *DashboardRepo) LowStockItems(ctx context.Context) ([]*entity.InventoryItem, error) {
	rows, err := r.q.Query(ctx, `SELECT `+inventoryColumns+` FROM inventory_items
		WHERE quantity <= min_stock ORDER BY quantity, item_name`)
	if err != nil {
		return nil, fmt.Errorf("low stock items: %w", err)
	}
	return collectInventory(rows)
}
