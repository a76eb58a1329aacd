// Package report arma los reportes descargables del hato.
package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/Granja-api/internal/domain/entity"
	"github.com/jhoicas/Granja-api/internal/domain/repository"
)

// HerdRow una línea del listado maestro.
type HerdRow struct {
	TagNo     string
	Name      string
	Breed     string
	Gender    string
	AgeMonths int
	Weight    string // "" si el animal no tiene pesaje
	Purpose   string
	Status    string
}

// HerdReport datos ya resueltos que recibe el generador PDF.
type HerdReport struct {
	Title       string
	GeneratedAt time.Time
	Rows        []HerdRow
	Total       int
	Active      int
	Males       int
	Females     int
}

// HerdUseCase genera el listado maestro del hato en PDF.
type HerdUseCase struct {
	goats     repository.GoatRepository
	generator HerdPDFGenerator
	title     string
	now       func() time.Time
}

// NewHerdUseCase construye el caso de uso. title encabeza el documento (nombre de la granja).
func NewHerdUseCase(goats repository.GoatRepository, generator HerdPDFGenerator, title string) *HerdUseCase {
	if title == "" {
		title = "Granja"
	}
	return &HerdUseCase{goats: goats, generator: generator, title: title, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *HerdUseCase) WithClock(now func() time.Time) *HerdUseCase {
	uc.now = now
	return uc
}

// Build arma el reporte sin renderizarlo. Las filas van ordenadas por arete.
func (uc *HerdUseCase) Build(ctx context.Context, filter entity.GoatFilter) (*HerdReport, error) {
	goats, err := uc.goats.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("report: listar hato: %w", err)
	}
	now := uc.now()
	rep := &HerdReport{
		Title:       uc.title,
		GeneratedAt: now,
		Rows:        make([]HerdRow, 0, len(goats)),
		Total:       len(goats),
	}
	for _, g := range goats {
		row := HerdRow{
			TagNo:     g.TagNo,
			Name:      g.Name,
			Breed:     g.Breed,
			Gender:    g.Gender,
			AgeMonths: g.AgeInMonths(now),
			Purpose:   g.Purpose,
			Status:    g.Status,
		}
		if g.Weight != nil {
			row.Weight = g.Weight.StringFixed(1)
		}
		rep.Rows = append(rep.Rows, row)
		if !g.IsActive() {
			continue
		}
		rep.Active++
		switch g.Gender {
		case entity.GenderMale:
			rep.Males++
		case entity.GenderFemale:
			rep.Females++
		}
	}
	sort.SliceStable(rep.Rows, func(i, j int) bool { return rep.Rows[i].TagNo < rep.Rows[j].TagNo })
	return rep, nil
}

// HerdPDF genera el PDF y sugiere un nombre de archivo con la fecha.
func (uc *HerdUseCase) HerdPDF(ctx context.Context, filter entity.GoatFilter) (pdfBytes []byte, filename string, err error) {
	rep, err := uc.Build(ctx, filter)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err = uc.generator.GenerateHerdPDF(ctx, rep)
	if err != nil {
		return nil, "", fmt.Errorf("report: generar PDF: %w", err)
	}
	return pdfBytes, fmt.Sprintf("hato-%s.pdf", rep.GeneratedAt.Format("2006-01-02")), nil
}
