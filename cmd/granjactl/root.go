package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Granja-api/internal/bootstrap"
	"github.com/jhoicas/Granja-api/pkg/config"
	"github.com/jhoicas/Granja-api/pkg/logger"
	"github.com/jhoicas/Granja-api/pkg/tracing"
)

// env estado compartido por los subcomandos que necesitan almacenamiento.
type env struct {
	cfg     *config.Config
	log     *logger.Logger
	backend *bootstrap.Backend
	svc     *bootstrap.Services
}

func newRootCmd() *cobra.Command {
	var storage string

	root := &cobra.Command{
		Use:          "granjactl",
		Short:        "Herramientas de operación de Granja API",
		Version:      version,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&storage, "storage", "",
		"driver de almacenamiento (postgres | memory); por defecto STORAGE_DRIVER")

	// open carga configuración y abre el backend. El llamador cierra con env.close.
	open := func(ctx context.Context, migrate bool) (*env, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		if storage != "" {
			cfg.App.Storage = storage
		}
		log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Output: root.ErrOrStderr()})
		backend, err := bootstrap.OpenBackend(ctx, cfg, log, bootstrap.OpenOptions{Migrate: migrate})
		if err != nil {
			return nil, err
		}
		return &env{
			cfg:     cfg,
			log:     log,
			backend: backend,
			svc:     bootstrap.NewServices(cfg, backend, tracing.Noop()),
		}, nil
	}

	root.AddCommand(
		newMigrateCmd(open),
		newSeedCmd(open),
		newReportCmd(open),
		newRefCmd(),
	)
	return root
}

type openFunc func(ctx context.Context, migrate bool) (*env, error)

func (e *env) close() {
	if err := e.backend.Close(); err != nil {
		e.log.Warn().Err(err).Msg("cerrar almacenamiento")
	}
}

func requirePostgres(e *env) error {
	if e.backend.Migrator == nil {
		return fmt.Errorf("las migraciones requieren STORAGE_DRIVER=%s", config.StoragePostgres)
	}
	return nil
}
