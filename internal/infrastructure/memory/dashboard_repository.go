package memory

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Granja-api/internal/domain/entity"
	"github.com/jhoicas/Granja-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo agrega sobre el estado en memoria con los mismos predicados que el SQL.
type DashboardRepo struct{ b binding }

func (r *DashboardRepo) CountActiveGoats(ctx context.Context) (repository.HerdCounts, error) {
	var c repository.HerdCounts
	err := r.b.read(func(st *state) error {
		for _, g := range st.goats {
			if !g.IsActive() {
				continue
			}
			c.Total++
			switch g.Gender {
			case entity.GenderMale:
				c.Males++
			case entity.GenderFemale:
				c.Females++
			}
		}
		return nil
	})
	return c, err
}

func countBy(counts map[string]int) []repository.LabelCount {
	out := make([]repository.LabelCount, 0, len(counts))
	for label, n := range counts {
		out = append(out, repository.LabelCount{Label: label, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}

func (r *DashboardRepo) StatusDistribution(ctx context.Context) ([]repository.LabelCount, error) {
	counts := map[string]int{}
	err := r.b.read(func(st *state) error {
		for _, g := range st.goats {
			counts[g.Status]++
		}
		return nil
	})
	return countBy(counts), err
}

func (r *DashboardRepo) BreedDistribution(ctx context.Context) ([]repository.LabelCount, error) {
	counts := map[string]int{}
	err := r.b.read(func(st *state) error {
		for _, g := range st.goats {
			if g.IsActive() {
				counts[g.Breed]++
			}
		}
		return nil
	})
	return countBy(counts), err
}

func (r *DashboardRepo) RecentBreeding(ctx context.Context, limit int) ([]*entity.BreedingRecord, error) {
	out := make([]*entity.BreedingRecord, 0)
	err := r.b.read(func(st *state) error {
		for _, b := range st.breeding {
			out = append(out, withBreedingRefs(st, b))
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].BreedingDate.After(out[j].BreedingDate) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, err
}

func (r *DashboardRepo) UpcomingKidding(ctx context.Context, from, to time.Time) ([]*entity.BreedingRecord, error) {
	out := make([]*entity.BreedingRecord, 0)
	err := r.b.read(func(st *state) error {
		for _, b := range st.breeding {
			if b.KiddingDueBetween(from, to) {
				out = append(out, withBreedingRefs(st, b))
			}
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ExpectedKidDate.Before(out[j].ExpectedKidDate) })
	return out, err
}

func (r *DashboardRepo) HealthDue(ctx context.Context, from, to time.Time) ([]*entity.HealthRecord, error) {
	out := make([]*entity.HealthRecord, 0)
	err := r.b.read(func(st *state) error {
		for _, h := range st.health {
			if h.DueBetween(from, to) {
				out = append(out, withHealthRef(st, h))
			}
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].NextDueDate.Before(*out[j].NextDueDate) })
	return out, err
}

func (r *DashboardRepo) SumExpenses(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	err := r.b.read(func(st *state) error {
		for _, e := range st.expenses {
			if inRange(e.Date, &from, &to) {
				total = total.Add(e.Amount)
			}
		}
		return nil
	})
	return total, err
}

func (r *DashboardRepo) SumSales(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	err := r.b.read(func(st *state) error {
		for _, s := range st.sales {
			if inRange(s.SaleDate, &from, &to) {
				total = total.Add(s.SalePrice)
			}
		}
		return nil
	})
	return total, err
}

func (r *DashboardRepo) ExpensesByCategory(ctx context.Context, from, to time.Time) ([]repository.LabelAmount, error) {
	sums := map[string]decimal.Decimal{}
	err := r.b.read(func(st *state) error {
		for _, e := range st.expenses {
			if inRange(e.Date, &from, &to) {
				sums[e.Category] = sums[e.Category].Add(e.Amount)
			}
		}
		return nil
	})
	out := make([]repository.LabelAmount, 0, len(sums))
	for label, amount := range sums {
		out = append(out, repository.LabelAmount{Label: label, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Amount.Equal(out[j].Amount) {
			return out[i].Amount.GreaterThan(out[j].Amount)
		}
		return out[i].Label < out[j].Label
	})
	return out, err
}

func (r *DashboardRepo) LowStockItems(ctx context.Context) ([]*entity.InventoryItem, error) {
	out := make([]*entity.InventoryItem, 0)
	err := r.b.read(func(st *state) error {
		for _, i := range st.inventory {
			if i.IsLowStock() {
				out = append(out, &i)
			}
		}
		return nil
	})
	sortInventory(out, true)
	return out, err
}
