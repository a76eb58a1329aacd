// Package bootstrap arma el backend de almacenamiento y los casos de uso a partir de la
// configuración. Lo comparten la API (cmd/api) y la CLI (cmd/granjactl).
package bootstrap

import (
	"context"
	"fmt"

	"github.com/jhoicas/Granja-api/internal/domain/repository"
	"github.com/jhoicas/Granja-api/internal/infrastructure/memory"
	"github.com/jhoicas/Granja-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Granja-api/pkg/config"
	"github.com/jhoicas/Granja-api/pkg/logger"
)

// TxRunner transacción sobre el conjunto de repositorios; la implementan postgres y memory.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos repository.Repos) error) error
}

// Backend repositorios de un driver de almacenamiento concreto.
type Backend struct {
	Driver    string
	Repos     repository.Repos
	Users     repository.UserRepository
	Dashboard repository.DashboardRepository
	TxRunner  TxRunner
	// Migrator es nil con el driver en memoria.
	Migrator *postgres.Migrator

	closers []func() error
}

// Close libera el pool y el migrador.
func (b *Backend) Close() error {
	var firstErr error
	for i := len(b.closers) - 1; i >= 0; i-- {
		if err := b.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// OpenOptions ajustes de OpenBackend.
type OpenOptions struct {
	// Migrate aplica las migraciones pendientes al abrir (solo postgres).
	Migrate bool
}

// OpenBackend abre el almacenamiento indicado por cfg.App.Storage.
func OpenBackend(ctx context.Context, cfg *config.Config, log *logger.Logger, opts OpenOptions) (*Backend, error) {
	log = log.Component("storage")
	switch cfg.App.Storage {
	case config.StorageMemory:
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
		store := memory.NewStore()
		return &Backend{
			Driver:    config.StorageMemory,
			Repos:     store.Repos(),
			Users:     store.Users(),
			Dashboard: store.Dashboard(),
			TxRunner:  memory.NewTxRunner(store),
		}, nil

	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		b := &Backend{
			Driver:    config.StoragePostgres,
			Repos:     postgres.NewRepos(pool),
			Users:     postgres.NewUserRepository(pool),
			Dashboard: postgres.NewDashboardRepository(pool),
			TxRunner:  postgres.NewTxRunner(pool),
		}
		b.closers = append(b.closers, func() error { pool.Close(); return nil })

		migrator, err := postgres.NewMigrator(pool)
		if err != nil {
			_ = b.Close()
			return nil, err
		}
		b.Migrator = migrator
		b.closers = append(b.closers, migrator.Close)

		if opts.Migrate {
			if err := migrator.Up(); err != nil {
				_ = b.Close()
				return nil, fmt.Errorf("migraciones: %w", err)
			}
			version, _, _ := migrator.Version()
			log.Info().Uint("version", version).Msg("migraciones aplicadas")
		}
		return b, nil
	}
	return nil, fmt.Errorf("driver de almacenamiento desconocido %q", cfg.App.Storage)
}
