package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMigrateCmd(open openFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migraciones del esquema PostgreSQL",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Aplica las migraciones pendientes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := open(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer e.close()
			if err := requirePostgres(e); err != nil {
				return err
			}
			if err := e.backend.Migrator.Up(); err != nil {
				return err
			}
			return printVersion(cmd, e)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Revierte la última migración",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := open(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer e.close()
			if err := requirePostgres(e); err != nil {
				return err
			}
			if err := e.backend.Migrator.Down(); err != nil {
				return err
			}
			return printVersion(cmd, e)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Muestra la versión del esquema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := open(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer e.close()
			if err := requirePostgres(e); err != nil {
				return err
			}
			return printVersion(cmd, e)
		},
	})
	return cmd
}

func printVersion(cmd *cobra.Command, e *env) error {
	version, dirty, err := e.backend.Migrator.Version()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "versión %d (dirty=%t)\n", version, dirty)
	return err
}
