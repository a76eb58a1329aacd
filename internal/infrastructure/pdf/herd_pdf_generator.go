// Package pdf genera los documentos PDF de la granja con Maroto v2.
//
// Layout del listado maestro del hato (A4 horizontal):
//
//	┌──────────────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la granja            │  LISTADO DEL HATO + Fecha  │
//	│  ──────────────────────────────────────────────────────────────────  │
//	│  RESUMEN: Total | Activos | Machos | Hembras                          │
//	│  ──────────────────────────────────────────────────────────────────  │
//	│  TABLA: Arete | Nombre | Raza | Sexo | Edad | Peso | Propósito | Est. │
//	│  ──────────────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda                                                      │
//	└──────────────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Granja-api/internal/application/report"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 46, Green: 94, Blue: 46}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorStripe  = &props.Color{Red: 238, Green: 244, Blue: 236}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa report.HerdPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

var _ report.HerdPDFGenerator = (*MarotoPDFGenerator)(nil)

// GenerateHerdPDF genera el PDF del listado maestro y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateHerdPDF(ctx context.Context, rep *report.HerdReport) ([]byte, error) {
	if rep == nil {
		return nil, fmt.Errorf("pdf: reporte vacío")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Listado del hato", true).
		WithAuthor(rep.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(rep))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(rep))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for i, r := range rep.Rows {
		if i%50 == 0 && ctx.Err() != nil {
			return nil, ctx.Err()
		}
		m.AddRows(tableRow(r, i%2 == 1))
	}
	if len(rep.Rows) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("No hay animales para los filtros seleccionados.", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 3,
			}),
		)))
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la granja (izq) y título + fecha de generación (der).
func headerRow(rep *report.HerdReport) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(rep.Title, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Registro de producción caprina", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("LISTADO MAESTRO DEL HATO", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Generado: "+rep.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// summaryRow: totales del hato.
func summaryRow(rep *report.HerdReport) core.Row {
	cell := func(label string, n int) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 8, Align: align.Center, Color: colorGray, Top: 1}),
			text.New(fmt.Sprintf("%d", n), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Center, Top: 5,
			}),
		)
	}
	return row.New(13).Add(
		cell("Total listado", rep.Total),
		cell("Activos", rep.Active),
		cell("Machos activos", rep.Males),
		cell("Hembras activas", rep.Females),
	)
}

// Anchos de columna de la tabla (suman 12).
var columnSizes = [...]int{1, 2, 2, 1, 1, 1, 2, 2}

func tableHeaderRow() core.Row {
	labels := [...]string{"Arete", "Nombre", "Raza", "Sexo", "Edad (m)", "Peso kg", "Propósito", "Estado"}
	cols := make([]core.Col, 0, len(labels))
	for i, l := range labels {
		cols = append(cols, col.New(columnSizes[i]).Add(text.New(l, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2, Left: 1,
		})))
	}
	return row.New(8).Add(cols...)
}

// tableRow: una fila por animal, con franjas alternas.
func tableRow(r report.HerdRow, striped bool) core.Row {
	values := [...]string{
		r.TagNo,
		nonEmpty(r.Name, "-"),
		r.Breed,
		genderLabel(r.Gender),
		fmt.Sprintf("%d", r.AgeMonths),
		nonEmpty(r.Weight, "-"),
		r.Purpose,
		r.Status,
	}
	cols := make([]core.Col, 0, len(values))
	for i, v := range values {
		cols = append(cols, col.New(columnSizes[i]).Add(text.New(v, props.Text{
			Size: 8, Top: 1, Left: 1,
		})))
	}
	out := row.New(6).Add(cols...)
	if striped {
		out.WithStyle(&props.Cell{BackgroundColor: colorStripe})
	}
	return out
}

func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Edad en meses completos a la fecha de generación. Peso según el último pesaje registrado.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func genderLabel(g string) string {
	switch g {
	case "Male":
		return "Macho"
	case "Female":
		return "Hembra"
	}
	return g
}
