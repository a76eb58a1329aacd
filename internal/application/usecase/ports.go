package usecase

import (
	"context"

	"github.com/jhoicas/Granja-api/internal/domain/repository"
)

// TxRunner ejecuta fn en una transacción con repositorios atados a ella (Commit/Rollback).
type TxRunner interface {
	Run(ctx context.Context, fn func(repos repository.Repos) error) error
}
