package report

import "context"

// HerdPDFGenerator genera la representación PDF del listado maestro del hato.
type HerdPDFGenerator interface {
	GenerateHerdPDF(ctx context.Context, report *HerdReport) ([]byte, error)
}
