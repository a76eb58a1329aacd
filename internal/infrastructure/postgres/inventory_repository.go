package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Granja-api/internal/domain"
	"github.com/jhoicas/Granja-api/internal/domain/entity"
	"github.com/jhoicas/Granja-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

const inventoryColumns = `id, reference_no, item_name, category, quantity, unit, min_stock, unit_price, supplier,
	last_restocked, expiry_date, notes, created_by, created_at, updated_at`

func scanInventoryItem(row pgx.Row) (*entity.InventoryItem, error) {
	var i entity.InventoryItem
	err := row.Scan(&i.ID, &i.ReferenceNo, &i.ItemName, &i.Category, &i.Quantity, &i.Unit, &i.MinStock,
		&i.UnitPrice, &i.Supplier, &i.LastRestocked, &i.ExpiryDate, &i.Notes, &i.CreatedBy, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func collectInventory(rows pgx.Rows) ([]*entity.InventoryItem, error) {
	defer rows.Close()
	list := make([]*entity.InventoryItem, 0)
	for rows.Next() {
		i, err := scanInventoryItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		list = append(list, i)
	}
	return list, rows.Err()
}

// InventoryRepo insumos de la granja (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

func (r *InventoryRepo) Create(ctx context.Context, i *entity.InventoryItem) error {
	_, err := r.q.Exec(ctx, `INSERT INTO inventory_items (`+inventoryColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		i.ID, i.ReferenceNo, i.ItemName, i.Category, i.Quantity, i.Unit, i.MinStock, i.UnitPrice, i.Supplier,
		i.LastRestocked, i.ExpiryDate, i.Notes, i.CreatedBy, i.CreatedAt, i.UpdatedAt,
	)
	return recordWriteError("insert inventory item", i.ReferenceNo, err)
}

func (r *InventoryRepo) GetByID(ctx context.Context, id string) (*entity.InventoryItem, error) {
	i, err := scanInventoryItem(r.q.QueryRow(ctx, `SELECT `+inventoryColumns+` FROM inventory_items WHERE id = $1`, id))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory item: %w", err)
	}
	return i, nil
}

// Update reescribe los campos editables; reference_no y created_* no cambian.
func (r *InventoryRepo) Update(ctx context.Context, i *entity.InventoryItem) error {
	if !validID(i.ID) {
		return domain.ErrNotFound
	}
	tag, err := r.q.Exec(ctx, `
		UPDATE inventory_items
		SET item_name = $2, category = $3, quantity = $4, unit = $5, min_stock = $6, unit_price = $7,
		    supplier = $8, last_restocked = $9, expiry_date = $10, notes = $11, updated_at = $12
		WHERE id = $1`,
		i.ID, i.ItemName, i.Category, i.Quantity, i.Unit, i.MinStock, i.UnitPrice,
		i.Supplier, i.LastRestocked, i.ExpiryDate, i.Notes, i.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update inventory item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *InventoryRepo) List(ctx context.Context, f entity.InventoryFilter) ([]*entity.InventoryItem, error) {
	var w where
	if f.Category != "" {
		w.add("category = ?", f.Category)
	}
	order := ` ORDER BY item_name`
	if f.LowStock {
		w.add("quantity <= min_stock")
		order = ` ORDER BY quantity, item_name`
	}
	rows, err := r.q.Query(ctx, `SELECT `+inventoryColumns+` FROM inventory_items`+w.String()+order, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory items: %w", err)
	}
	return collectInventory(rows)
}
