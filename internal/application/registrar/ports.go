package registrar

import (
	"context"

	"github.com/jhoicas/Granja-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Si fn retorna error se hace Rollback de todos los pasos (contador, animal y registro).
type TxRunner interface {
	Run(ctx context.Context, fn func(repos repository.Repos) error) error
}
