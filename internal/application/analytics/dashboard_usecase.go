// Package analytics contiene el caso de uso del tablero de la granja: hato, reproducción,
// sanidad, finanzas del mes e insumos con bajo stock.
package analytics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Granja-api/internal/application/dto"
	"github.com/jhoicas/Granja-api/internal/domain/entity"
	"github.com/jhoicas/Granja-api/internal/domain/repository"
	"github.com/jhoicas/Granja-api/pkg/tracing"
)

const (
	recentBreedingLimit = 5  // montas recientes en el widget
	kiddingWindowDays   = 30 // partos esperados en [hoy, hoy+30]
	healthWindowDays    = 7  // aplicaciones sanitarias en [hoy, hoy+7]
)

// DashboardUseCase recalcula el tablero en cada petición (sin caché).
//
// Fuente de datos: DashboardRepository (consultas read-only).
type DashboardUseCase struct {
	repo   repository.DashboardRepository
	tracer trace.Tracer
	now    func() time.Time
}

// NewDashboardUseCase construye el caso de uso. tracer puede ser nil.
func NewDashboardUseCase(repo repository.DashboardRepository, tracer trace.Tracer) *DashboardUseCase {
	if tracer == nil {
		tracer = tracing.Noop()
	}
	return &DashboardUseCase{repo: repo, tracer: tracer, now: time.Now}
}

// WithClock reemplaza el reloj; "hoy" es el día calendario de now().
func (uc *DashboardUseCase) WithClock(now func() time.Time) *DashboardUseCase {
	uc.now = now
	return uc
}

// GetDashboard ejecuta todas las consultas en paralelo; la primera que falle cancela el resto.
func (uc *DashboardUseCase) GetDashboard(ctx context.Context) (out *dto.DashboardDTO, err error) {
	ctx, span := uc.tracer.Start(ctx, tracing.SpanPrefixDashboard+"get")
	defer func() { tracing.End(span, err) }()

	now := uc.now()

	// ── Rangos de fecha ────────────────────────────────────────────────────────
	today := entity.CalendarDay(now)
	kiddingEnd := today.AddDate(0, 0, kiddingWindowDays)
	healthEnd := today.AddDate(0, 0, healthWindowDays)
	// Mes en curso: día 1 – último día del mes
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	var (
		counts     repository.HerdCounts
		statuses   []repository.LabelCount
		breeds     []repository.LabelCount
		recent     []*entity.BreedingRecord
		kidding    []*entity.BreedingRecord
		healthDue  []*entity.HealthRecord
		expenses   = dto.FinancialDTO{}
		byCategory []repository.LabelAmount
		lowStock   []*entity.InventoryItem
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		counts, err = uc.repo.CountActiveGoats(gctx)
		return wrap("conteo del hato", err)
	})
	g.Go(func() (err error) {
		statuses, err = uc.repo.StatusDistribution(gctx)
		return wrap("distribución por estado", err)
	})
	g.Go(func() (err error) {
		breeds, err = uc.repo.BreedDistribution(gctx)
		return wrap("distribución por raza", err)
	})
	g.Go(func() (err error) {
		recent, err = uc.repo.RecentBreeding(gctx, recentBreedingLimit)
		return wrap("montas recientes", err)
	})
	g.Go(func() (err error) {
		kidding, err = uc.repo.UpcomingKidding(gctx, today, kiddingEnd)
		return wrap("partos próximos", err)
	})
	g.Go(func() (err error) {
		healthDue, err = uc.repo.HealthDue(gctx, today, healthEnd)
		return wrap("sanidad pendiente", err)
	})
	g.Go(func() (err error) {
		expenses.MonthlyExpenses, err = uc.repo.SumExpenses(gctx, monthStart, monthEnd)
		return wrap("gastos del mes", err)
	})
	g.Go(func() (err error) {
		expenses.MonthlySales, err = uc.repo.SumSales(gctx, monthStart, monthEnd)
		return wrap("ventas del mes", err)
	})
	g.Go(func() (err error) {
		byCategory, err = uc.repo.ExpensesByCategory(gctx, monthStart, monthEnd)
		return wrap("gastos por categoría", err)
	})
	g.Go(func() (err error) {
		lowStock, err = uc.repo.LowStockItems(gctx)
		return wrap("insumos bajo stock", err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// ── Construir DTO ──────────────────────────────────────────────────────────
	expenses.MonthLabel = monthLabel(now)
	expenses.MonthlyExpenses = expenses.MonthlyExpenses.Round(2)
	expenses.MonthlySales = expenses.MonthlySales.Round(2)
	expenses.Net = expenses.MonthlySales.Sub(expenses.MonthlyExpenses)
	expenses.ExpenseByCategory = make([]dto.CategoryAmountDTO, 0, len(byCategory))
	for _, c := range byCategory {
		expenses.ExpenseByCategory = append(expenses.ExpenseByCategory, dto.CategoryAmountDTO{Category: c.Label, Amount: c.Amount.Round(2)})
	}

	return &dto.DashboardDTO{
		Statistics: dto.StatisticsDTO{
			TotalGoats:   counts.Total,
			TotalMales:   counts.Males,
			TotalFemales: counts.Females,
		},
		StatusDistribution: labelCounts(statuses),
		BreedDistribution:  labelCounts(breeds),
		RecentBreeding:     dto.FromBreedingRecords(recent),
		UpcomingKidding:    dto.FromBreedingRecords(kidding),
		HealthDue:          dto.FromHealthRecords(healthDue),
		Financial:          expenses,
		LowStockItems:      dto.FromInventoryItems(lowStock),
		GeneratedAt:        now.Format(time.RFC3339),
	}, nil
}

func wrap(what string, err error) error {
	if err != nil {
		return fmt.Errorf("dashboard: %s: %w", what, err)
	}
	return nil
}

func labelCounts(in []repository.LabelCount) []dto.LabelCountDTO {
	out := make([]dto.LabelCountDTO, 0, len(in))
	for _, c := range in {
		out = append(out, dto.LabelCountDTO{Label: c.Label, Count: c.Count})
	}
	return out
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Febrero 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
