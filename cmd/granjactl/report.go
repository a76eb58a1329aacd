package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Granja-api/internal/domain/entity"
)

func newReportCmd(open openFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Reportes",
	}

	var (
		output string
		filter entity.GoatFilter
	)
	herd := &cobra.Command{
		Use:   "herd",
		Short: "Genera el listado maestro del hato en PDF",
		Example: `  granjactl report herd
  granjactl report herd --status Active -o hato.pdf`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := open(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer e.close()

			pdf, filename, err := e.svc.HerdReport.HerdPDF(cmd.Context(), filter)
			if err != nil {
				return err
			}
			if output == "" {
				output = filename
			}
			if err := os.WriteFile(output, pdf, 0o644); err != nil {
				return fmt.Errorf("escribir %s: %w", output, err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s (%d bytes)\n", output, len(pdf))
			return err
		},
	}
	herd.Flags().StringVarP(&output, "output", "o", "", "archivo destino (por defecto hato-AAAA-MM-DD.pdf)")
	herd.Flags().StringVar(&filter.Status, "status", "", "Active | Sold | Dead | Culled")
	herd.Flags().StringVar(&filter.Breed, "breed", "", "raza")
	herd.Flags().StringVar(&filter.Gender, "gender", "", "Male | Female")
	cmd.AddCommand(herd)
	return cmd
}
