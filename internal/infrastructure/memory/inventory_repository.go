package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jhoicas/Granja-api/internal/domain"
	"github.com/jhoicas/Granja-api/internal/domain/entity"
	"github.com/jhoicas/Granja-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

type InventoryRepo struct{ b binding }

func (r *InventoryRepo) Create(ctx context.Context, item *entity.InventoryItem) error {
	return r.b.write(func(st *state) error {
		if refTaken(st.inventory, item.ReferenceNo, func(i entity.InventoryItem) string { return i.ReferenceNo }) {
			return fmt.Errorf("%w: referencia %s", domain.ErrDuplicate, item.ReferenceNo)
		}
		st.inventory[item.ID] = *item
		return nil
	})
}

func (r *InventoryRepo) GetByID(ctx context.Context, id string) (*entity.InventoryItem, error) {
	var out *entity.InventoryItem
	err := r.b.read(func(st *state) error {
		if i, ok := st.inventory[id]; ok {
			out = &i
		}
		return nil
	})
	return out, err
}

func (r *InventoryRepo) Update(ctx context.Context, item *entity.InventoryItem) error {
	return r.b.write(func(st *state) error {
		if _, ok := st.inventory[item.ID]; !ok {
			return domain.ErrNotFound
		}
		st.inventory[item.ID] = *item
		return nil
	})
}

func (r *InventoryRepo) List(ctx context.Context, f entity.InventoryFilter) ([]*entity.InventoryItem, error) {
	out := make([]*entity.InventoryItem, 0)
	err := r.b.read(func(st *state) error {
		for _, i := range st.inventory {
			if f.Category != "" && i.Category != f.Category {
				continue
			}
			if f.LowStock && !i.IsLowStock() {
				continue
			}
			out = append(out, &i)
		}
		return nil
	})
	sortInventory(out, f.LowStock)
	return out, err
}

// sortInventory por nombre; en la vista de bajo stock, por cantidad ascendente.
func sortInventory(items []*entity.InventoryItem, byQuantity bool) {
	sort.Slice(items, func(i, j int) bool {
		if byQuantity && !items[i].Quantity.Equal(items[j].Quantity) {
			return items[i].Quantity.LessThan(items[j].Quantity)
		}
		return strings.ToLower(items[i].ItemName) < strings.ToLower(items[j].ItemName)
	})
}
