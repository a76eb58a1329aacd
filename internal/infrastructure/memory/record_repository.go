package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/Granja-api/internal/domain"
	"github.com/jhoicas/Granja-api/internal/domain/entity"
	"github.com/jhoicas/Granja-api/internal/domain/reference"
	"github.com/jhoicas/Granja-api/internal/domain/repository"
)

var (
	_ repository.ReferenceCounterRepository = (*CounterRepo)(nil)
	_ repository.BreedingRepository         = (*BreedingRepo)(nil)
	_ repository.HealthRepository           = (*HealthRepo)(nil)
	_ repository.ExpenseRepository          = (*ExpenseRepo)(nil)
	_ repository.SaleRepository             = (*SaleRepo)(nil)
)

type CounterRepo struct{ b binding }

func (r *CounterRepo) Next(ctx context.Context, kind reference.Kind) (int64, error) {
	if !kind.Valid() {
		return 0, fmt.Errorf("%w: tipo %q", domain.ErrInvalidInput, kind)
	}
	var v int64
	err := r.b.write(func(st *state) error {
		st.counters[kind]++
		v = st.counters[kind]
		return nil
	})
	return v, err
}

func (r *CounterRepo) Current(ctx context.Context, kind reference.Kind) (int64, error) {
	var v int64
	err := r.b.read(func(st *state) error {
		v = st.counters[kind]
		return nil
	})
	return v, err
}

// refTaken verifica la unicidad de reference_no, igual que el UNIQUE de Postgres.
func refTaken[T any](m map[string]T, ref string, get func(T) string) bool {
	for _, v := range m {
		if get(v) == ref {
			return true
		}
	}
	return false
}

// inRange rango [from, to] por día calendario; extremos nil no limitan.
func inRange(t time.Time, from, to *time.Time) bool {
	day := entity.CalendarDay(t)
	if from != nil && day.Before(entity.CalendarDay(*from)) {
		return false
	}
	if to != nil && day.After(entity.CalendarDay(*to)) {
		return false
	}
	return true
}

// ── Montas ────────────────────────────────────────────────────────────────────

type BreedingRepo struct{ b binding }

func withBreedingRefs(st *state, b entity.BreedingRecord) *entity.BreedingRecord {
	b.MaleGoat = st.goatRef(b.MaleGoatID)
	b.FemaleGoat = st.goatRef(b.FemaleGoatID)
	return &b
}

func (r *BreedingRepo) Create(ctx context.Context, rec *entity.BreedingRecord) error {
	return r.b.write(func(st *state) error {
		if refTaken(st.breeding, rec.ReferenceNo, func(b entity.BreedingRecord) string { return b.ReferenceNo }) {
			return fmt.Errorf("%w: referencia %s", domain.ErrDuplicate, rec.ReferenceNo)
		}
		st.breeding[rec.ID] = *rec
		return nil
	})
}

func (r *BreedingRepo) GetByID(ctx context.Context, id string) (*entity.BreedingRecord, error) {
	var out *entity.BreedingRecord
	err := r.b.read(func(st *state) error {
		if b, ok := st.breeding[id]; ok {
			out = withBreedingRefs(st, b)
		}
		return nil
	})
	return out, err
}

func (r *BreedingRepo) List(ctx context.Context, f entity.BreedingFilter) ([]*entity.BreedingRecord, error) {
	out := make([]*entity.BreedingRecord, 0)
	err := r.b.read(func(st *state) error {
		for _, b := range st.breeding {
			if f.GoatID != "" && b.MaleGoatID != f.GoatID && b.FemaleGoatID != f.GoatID {
				continue
			}
			out = append(out, withBreedingRefs(st, b))
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].BreedingDate.After(out[j].BreedingDate) })
	return out, err
}

// ── Sanidad ───────────────────────────────────────────────────────────────────

type HealthRepo struct{ b binding }

func withHealthRef(st *state, h entity.HealthRecord) *entity.HealthRecord {
	h.Goat = st.goatRef(h.GoatID)
	return &h
}

func (r *HealthRepo) Create(ctx context.Context, rec *entity.HealthRecord) error {
	return r.b.write(func(st *state) error {
		if refTaken(st.health, rec.ReferenceNo, func(h entity.HealthRecord) string { return h.ReferenceNo }) {
			return fmt.Errorf("%w: referencia %s", domain.ErrDuplicate, rec.ReferenceNo)
		}
		st.health[rec.ID] = *rec
		return nil
	})
}

func (r *HealthRepo) GetByID(ctx context.Context, id string) (*entity.HealthRecord, error) {
	var out *entity.HealthRecord
	err := r.b.read(func(st *state) error {
		if h, ok := st.health[id]; ok {
			out = withHealthRef(st, h)
		}
		return nil
	})
	return out, err
}

func (r *HealthRepo) List(ctx context.Context, f entity.HealthFilter) ([]*entity.HealthRecord, error) {
	out := make([]*entity.HealthRecord, 0)
	err := r.b.read(func(st *state) error {
		for _, h := range st.health {
			if f.GoatID != "" && h.GoatID != f.GoatID {
				continue
			}
			if f.RecordType != "" && h.RecordType != f.RecordType {
				continue
			}
			out = append(out, withHealthRef(st, h))
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, err
}

// ── Gastos ────────────────────────────────────────────────────────────────────

type ExpenseRepo struct{ b binding }

func (r *ExpenseRepo) Create(ctx context.Context, rec *entity.Expense) error {
	return r.b.write(func(st *state) error {
		if refTaken(st.expenses, rec.ReferenceNo, func(e entity.Expense) string { return e.ReferenceNo }) {
			return fmt.Errorf("%w: referencia %s", domain.ErrDuplicate, rec.ReferenceNo)
		}
		st.expenses[rec.ID] = *rec
		return nil
	})
}

func (r *ExpenseRepo) GetByID(ctx context.Context, id string) (*entity.Expense, error) {
	var out *entity.Expense
	err := r.b.read(func(st *state) error {
		if e, ok := st.expenses[id]; ok {
			out = &e
		}
		return nil
	})
	return out, err
}

func (r *ExpenseRepo) List(ctx context.Context, f entity.ExpenseFilter) ([]*entity.Expense, error) {
	out := make([]*entity.Expense, 0)
	err := r.b.read(func(st *state) error {
		for _, e := range st.expenses {
			if f.Category != "" && e.Category != f.Category {
				continue
			}
			if !inRange(e.Date, f.StartDate, f.EndDate) {
				continue
			}
			out = append(out, &e)
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, err
}

// ── Ventas ────────────────────────────────────────────────────────────────────

type SaleRepo struct{ b binding }

func withSaleRef(st *state, s entity.SaleRecord) *entity.SaleRecord {
	s.Goat = st.goatRef(s.GoatID)
	return &s
}

func (r *SaleRepo) Create(ctx context.Context, rec *entity.SaleRecord) error {
	return r.b.write(func(st *state) error {
		if _, ok := st.goats[rec.GoatID]; !ok {
			return fmt.Errorf("%w: animal %s", domain.ErrNotFound, rec.GoatID)
		}
		if refTaken(st.sales, rec.ReferenceNo, func(s entity.SaleRecord) string { return s.ReferenceNo }) {
			return fmt.Errorf("%w: referencia %s", domain.ErrDuplicate, rec.ReferenceNo)
		}
		stored := *rec
		stored.Goat = nil
		st.sales[rec.ID] = stored
		return nil
	})
}

func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.SaleRecord, error) {
	var out *entity.SaleRecord
	err := r.b.read(func(st *state) error {
		if s, ok := st.sales[id]; ok {
			out = withSaleRef(st, s)
		}
		return nil
	})
	return out, err
}

func (r *SaleRepo) List(ctx context.Context, f entity.SaleFilter) ([]*entity.SaleRecord, error) {
	out := make([]*entity.SaleRecord, 0)
	err := r.b.read(func(st *state) error {
		for _, s := range st.sales {
			if f.GoatID != "" && s.GoatID != f.GoatID {
				continue
			}
			if !inRange(s.SaleDate, f.StartDate, f.EndDate) {
				continue
			}
			out = append(out, withSaleRef(st, s))
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].SaleDate.After(out[j].SaleDate) })
	return out, err
}
