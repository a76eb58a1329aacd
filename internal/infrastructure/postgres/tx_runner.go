package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Granja-api/internal/application/registrar"
	"github.com/jhoicas/Granja-api/internal/application/usecase"
	"github.com/jhoicas/Granja-api/internal/domain/repository"
)

var (
	_ registrar.TxRunner = (*TxRunner)(nil)
	_ usecase.TxRunner   = (*TxRunner)(nil)
)

// NewRepos construye el juego de repositorios sobre q (pool en autocommit o tx).
func NewRepos(q Querier) repository.Repos {
	return repository.Repos{
		Counters:  NewReferenceCounterRepository(q),
		Goats:     NewGoatRepository(q),
		Weights:   NewWeightRecordRepository(q),
		Breeding:  NewBreedingRepository(q),
		Health:    NewHealthRepository(q),
		Expenses:  NewExpenseRepository(q),
		Sales:     NewSaleRepository(q),
		Inventory: NewInventoryRepository(q),
	}
}

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(repos repository.Repos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewRepos(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
