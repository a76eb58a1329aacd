package report_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Granja-api/internal/application/report"
	"github.com/jhoicas/Granja-api/internal/domain/entity"
	"github.com/jhoicas/Granja-api/internal/infrastructure/memory"
)

type captureGenerator struct {
	got *report.HerdReport
	err error
}

func (g *captureGenerator) GenerateHerdPDF(_ context.Context, rep *report.HerdReport) ([]byte, error) {
	g.got = rep
	if g.err != nil {
		return nil, g.err
	}
	return []byte("%PDF-1.3"), nil
}

func seedGoat(t *testing.T, store *memory.Store, id, tag, gender, status string, dob time.Time) {
	t.Helper()
	w := decimal.RequireFromString("32.45")
	require.NoError(t, store.Repos().Goats.Create(context.Background(), &entity.Goat{
		ID: id, TagNo: tag, Name: "Animal " + tag, Breed: "Boer", Gender: gender,
		DateOfBirth: dob, Weight: &w, Purpose: entity.PurposeMeat, Source: entity.SourceBorn,
		Status: status, CreatedAt: dob,
	}))
}

func TestHerdUseCase_Build(t *testing.T) {
	store := memory.NewStore()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	seedGoat(t, store, "g2", "T-002", entity.GenderMale, entity.GoatStatusActive, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	seedGoat(t, store, "g1", "T-001", entity.GenderFemale, entity.GoatStatusActive, time.Date(2025, 9, 11, 0, 0, 0, 0, time.UTC))
	seedGoat(t, store, "g3", "T-003", entity.GenderFemale, entity.GoatStatusSold, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	gen := &captureGenerator{}
	uc := report.NewHerdUseCase(store.Repos().Goats, gen, "Granja La Esperanza").WithClock(func() time.Time { return now })

	pdf, name, err := uc.HerdPDF(context.Background(), entity.GoatFilter{})
	require.NoError(t, err)
	assert.Equal(t, "hato-2026-03-10.pdf", name)
	assert.NotEmpty(t, pdf)

	rep := gen.got
	require.NotNil(t, rep)
	assert.Equal(t, "Granja La Esperanza", rep.Title)
	assert.Equal(t, 3, rep.Total)
	assert.Equal(t, 2, rep.Active)
	assert.Equal(t, 1, rep.Males)
	assert.Equal(t, 1, rep.Females)

	require.Len(t, rep.Rows, 3)
	assert.Equal(t, "T-001", rep.Rows[0].TagNo)
	assert.Equal(t, 5, rep.Rows[0].AgeMonths)
	assert.Equal(t, 12, rep.Rows[1].AgeMonths)
	assert.Equal(t, "32.5", rep.Rows[1].Weight)
}

func TestHerdUseCase_FiltraPorEstado(t *testing.T) {
	store := memory.NewStore()
	dob := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	seedGoat(t, store, "g1", "T-001", entity.GenderFemale, entity.GoatStatusActive, dob)
	seedGoat(t, store, "g2", "T-002", entity.GenderFemale, entity.GoatStatusSold, dob)

	rep, err := report.NewHerdUseCase(store.Repos().Goats, &captureGenerator{}, "").
		Build(context.Background(), entity.GoatFilter{Status: entity.GoatStatusActive})
	require.NoError(t, err)
	assert.Equal(t, "Granja", rep.Title)
	require.Len(t, rep.Rows, 1)
	assert.Equal(t, "T-001", rep.Rows[0].TagNo)
}

func TestHerdUseCase_ErrorDelGenerador(t *testing.T) {
	store := memory.NewStore()
	boom := errors.New("fuente no disponible")
	_, _, err := report.NewHerdUseCase(store.Repos().Goats, &captureGenerator{err: boom}, "").
		HerdPDF(context.Background(), entity.GoatFilter{})
	assert.ErrorIs(t, err, boom)
}
