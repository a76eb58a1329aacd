package repository

import (
	"context"

	"github.com/jhoicas/Granja-api/internal/domain/entity"
	"github.com/jhoicas/Granja-api/internal/domain/reference"
)

// ReferenceCounterRepository contador atómico por tipo de registro.
// Next incrementa y devuelve el nuevo valor; dentro de una transacción la fila queda bloqueada
// hasta el commit, de modo que dos registros concurrentes nunca obtienen el mismo valor.
type ReferenceCounterRepository interface {
	Next(ctx context.Context, kind reference.Kind) (int64, error)
	Current(ctx context.Context, kind reference.Kind) (int64, error)
}

// Los listados ordenan por fecha del registro descendente y rellenan las referencias a animales (GoatRef).

type BreedingRepository interface {
	Create(ctx context.Context, rec *entity.BreedingRecord) error
	GetByID(ctx context.Context, id string) (*entity.BreedingRecord, error)
	List(ctx context.Context, filter entity.BreedingFilter) ([]*entity.BreedingRecord, error)
}

type HealthRepository interface {
	Create(ctx context.Context, rec *entity.HealthRecord) error
	GetByID(ctx context.Context, id string) (*entity.HealthRecord, error)
	List(ctx context.Context, filter entity.HealthFilter) ([]*entity.HealthRecord, error)
}

type ExpenseRepository interface {
	Create(ctx context.Context, rec *entity.Expense) error
	GetByID(ctx context.Context, id string) (*entity.Expense, error)
	List(ctx context.Context, filter entity.ExpenseFilter) ([]*entity.Expense, error)
}

type SaleRepository interface {
	Create(ctx context.Context, rec *entity.SaleRecord) error
	GetByID(ctx context.Context, id string) (*entity.SaleRecord, error)
	List(ctx context.Context, filter entity.SaleFilter) ([]*entity.SaleRecord, error)
}

type InventoryRepository interface {
	Create(ctx context.Context, item *entity.InventoryItem) error
	GetByID(ctx context.Context, id string) (*entity.InventoryItem, error)
	Update(ctx context.Context, item *entity.InventoryItem) error
	// List con filter.LowStock devuelve solo quantity <= min_stock, ordenado por cantidad ascendente.
	List(ctx context.Context, filter entity.InventoryFilter) ([]*entity.InventoryItem, error)
}
