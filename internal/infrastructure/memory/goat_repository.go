package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/Granja-api/internal/domain"
	"github.com/jhoicas/Granja-api/internal/domain/entity"
	"github.com/jhoicas/Granja-api/internal/domain/repository"
)

var (
	_ repository.GoatRepository         = (*GoatRepo)(nil)
	_ repository.WeightRecordRepository = (*WeightRecordRepo)(nil)
)

type GoatRepo struct{ b binding }

func tagTaken(st *state, tagNo, exceptID string) bool {
	for _, g := range st.goats {
		if g.TagNo == tagNo && g.ID != exceptID {
			return true
		}
	}
	return false
}

func (r *GoatRepo) Create(ctx context.Context, g *entity.Goat) error {
	return r.b.write(func(st *state) error {
		if tagTaken(st, g.TagNo, "") {
			return fmt.Errorf("%w: arete %s", domain.ErrDuplicate, g.TagNo)
		}
		st.goats[g.ID] = *g
		return nil
	})
}

func (r *GoatRepo) GetByID(ctx context.Context, id string) (*entity.Goat, error) {
	var out *entity.Goat
	err := r.b.read(func(st *state) error {
		if g, ok := st.goats[id]; ok {
			out = &g
		}
		return nil
	})
	return out, err
}

// GetByIDForUpdate en memoria el bloqueo lo da el lock exclusivo del TxRunner.
func (r *GoatRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Goat, error) {
	return r.GetByID(ctx, id)
}

func (r *GoatRepo) GetByTagNo(ctx context.Context, tagNo string) (*entity.Goat, error) {
	var out *entity.Goat
	err := r.b.read(func(st *state) error {
		for _, g := range st.goats {
			if g.TagNo == tagNo {
				out = &g
				return nil
			}
		}
		return nil
	})
	return out, err
}

func (r *GoatRepo) Update(ctx context.Context, g *entity.Goat) error {
	return r.b.write(func(st *state) error {
		if _, ok := st.goats[g.ID]; !ok {
			return domain.ErrNotFound
		}
		if tagTaken(st, g.TagNo, g.ID) {
			return fmt.Errorf("%w: arete %s", domain.ErrDuplicate, g.TagNo)
		}
		st.goats[g.ID] = *g
		return nil
	})
}

func (r *GoatRepo) UpdateStatus(ctx context.Context, id, status, updatedBy string) error {
	return r.b.write(func(st *state) error {
		g, ok := st.goats[id]
		if !ok {
			return domain.ErrNotFound
		}
		g.Status = status
		g.UpdatedBy = updatedBy
		g.UpdatedAt = time.Now()
		st.goats[id] = g
		return nil
	})
}

// Delete replica las llaves foráneas de Postgres: registros que referencian al animal bloquean
// el borrado; en las crías sire_id/dam_id quedan en NULL.
func (r *GoatRepo) Delete(ctx context.Context, id string) error {
	return r.b.write(func(st *state) error {
		if _, ok := st.goats[id]; !ok {
			return domain.ErrNotFound
		}
		if referenced(st, id) {
			return fmt.Errorf("%w: el animal tiene registros asociados", domain.ErrConflict)
		}
		for cid, c := range st.goats {
			changed := false
			if c.SireID != nil && *c.SireID == id {
				c.SireID = nil
				changed = true
			}
			if c.DamID != nil && *c.DamID == id {
				c.DamID = nil
				changed = true
			}
			if changed {
				st.goats[cid] = c
			}
		}
		for wid, w := range st.weights {
			if w.GoatID == id {
				delete(st.weights, wid)
			}
		}
		delete(st.goats, id)
		return nil
	})
}

func referenced(st *state, id string) bool {
	for _, b := range st.breeding {
		if b.MaleGoatID == id || b.FemaleGoatID == id {
			return true
		}
	}
	for _, h := range st.health {
		if h.GoatID == id {
			return true
		}
	}
	for _, s := range st.sales {
		if s.GoatID == id {
			return true
		}
	}
	return false
}

func (r *GoatRepo) List(ctx context.Context, f entity.GoatFilter) ([]*entity.Goat, error) {
	out := make([]*entity.Goat, 0)
	err := r.b.read(func(st *state) error {
		for _, g := range st.goats {
			if f.Status != "" && g.Status != f.Status {
				continue
			}
			if f.Breed != "" && g.Breed != f.Breed {
				continue
			}
			if f.Gender != "" && g.Gender != f.Gender {
				continue
			}
			out = append(out, &g)
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, err
}

func (r *GoatRepo) ListOffspring(ctx context.Context, parentID string) ([]*entity.Goat, error) {
	out := make([]*entity.Goat, 0)
	err := r.b.read(func(st *state) error {
		for _, g := range st.goats {
			if (g.SireID != nil && *g.SireID == parentID) || (g.DamID != nil && *g.DamID == parentID) {
				out = append(out, &g)
			}
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].DateOfBirth.Before(out[j].DateOfBirth) })
	return out, err
}

type WeightRecordRepo struct{ b binding }

func (r *WeightRecordRepo) Create(ctx context.Context, w *entity.WeightRecord) error {
	return r.b.write(func(st *state) error {
		if _, ok := st.goats[w.GoatID]; !ok {
			return fmt.Errorf("%w: animal %s", domain.ErrNotFound, w.GoatID)
		}
		st.weights[w.ID] = *w
		return nil
	})
}

func (r *WeightRecordRepo) ListByGoat(ctx context.Context, goatID string) ([]*entity.WeightRecord, error) {
	out := make([]*entity.WeightRecord, 0)
	err := r.b.read(func(st *state) error {
		for _, w := range st.weights {
			if w.GoatID == goatID {
				out = append(out, &w)
			}
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, err
}
