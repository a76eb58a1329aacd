package repository

import (
	"context"

	"github.com/jhoicas/Granja-api/internal/domain/entity"
)

// GoatRepository define el puerto de persistencia para el hato.
// Los métodos Get* devuelven (nil, nil) cuando el animal no existe.
type GoatRepository interface {
	Create(ctx context.Context, goat *entity.Goat) error
	GetByID(ctx context.Context, id string) (*entity.Goat, error)
	// GetByIDForUpdate bloquea la fila hasta el fin de la transacción (SELECT ... FOR UPDATE).
	GetByIDForUpdate(ctx context.Context, id string) (*entity.Goat, error)
	GetByTagNo(ctx context.Context, tagNo string) (*entity.Goat, error)
	Update(ctx context.Context, goat *entity.Goat) error
	UpdateStatus(ctx context.Context, id, status, updatedBy string) error
	// Delete retorna domain.ErrConflict si otros registros referencian al animal.
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter entity.GoatFilter) ([]*entity.Goat, error)
	ListOffspring(ctx context.Context, parentID string) ([]*entity.Goat, error)
}

// WeightRecordRepository pesajes por animal.
type WeightRecordRepository interface {
	Create(ctx context.Context, rec *entity.WeightRecord) error
	ListByGoat(ctx context.Context, goatID string) ([]*entity.WeightRecord, error)
}
