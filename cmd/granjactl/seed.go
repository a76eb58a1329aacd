package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Granja-api/internal/domain"
)

func newSeedCmd(open openFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Datos iniciales",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "admin",
		Short: "Crea la cuenta administrativa (SEED_ADMIN_*) si no existe",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := open(cmd.Context(), true)
			if err != nil {
				return err
			}
			defer e.close()

			user, err := e.svc.Auth.SeedAdmin(cmd.Context())
			if errors.Is(err, domain.ErrAlreadyExists) {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "el administrador %s ya existe\n", e.cfg.Seed.AdminEmail)
				return err
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "administrador creado: %s (%s)\n", user.Email, user.ID)
			return err
		},
	})
	return cmd
}
