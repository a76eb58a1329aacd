package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Granja-api/internal/domain/reference"
)

func newRefCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ref",
		Short: "Números de referencia PREFIJO-AÑO-SECUENCIA",
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "parse REF",
		Short:   "Descompone un número de referencia",
		Example: "  granjactl ref parse SR-2026-0007",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := reference.Parse(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "tipo=%s año=%d secuencia=%d\n", p.Kind, p.Year, p.Seq)
			return err
		},
	})

	var year int
	format := &cobra.Command{
		Use:     "format KIND SEQ",
		Short:   "Construye el número de referencia de un tipo y secuencia",
		Example: "  granjactl ref format sale 7 --year 2026",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := reference.ParseKind(args[0])
			if err != nil {
				return err
			}
			var seq int64
			if _, err := fmt.Sscan(args[1], &seq); err != nil {
				return fmt.Errorf("secuencia inválida %q", args[1])
			}
			if year == 0 {
				year = time.Now().Year()
			}
			ref, err := reference.Format(kind, year, seq)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), ref)
			return err
		},
	}
	format.Flags().IntVar(&year, "year", 0, "año (por defecto el actual)")
	cmd.AddCommand(format)
	return cmd
}
