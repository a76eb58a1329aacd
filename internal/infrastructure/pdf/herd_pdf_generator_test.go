package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Granja-api/internal/application/report"
)

func TestGenerateHerdPDF(t *testing.T) {
	rep := &report.HerdReport{
		Title:       "Granja La Esperanza",
		GeneratedAt: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
		Rows: []report.HerdRow{
			{TagNo: "T-001", Name: "Luna", Breed: "Boer", Gender: "Female", AgeMonths: 14, Weight: "38.0", Purpose: "Breeding", Status: "Active"},
			{TagNo: "T-002", Breed: "Barbari", Gender: "Male", AgeMonths: 3, Purpose: "Meat", Status: "Active"},
		},
		Total: 2, Active: 2, Males: 1, Females: 1,
	}

	out, err := NewMarotoPDFGenerator().GenerateHerdPDF(context.Background(), rep)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "debe ser un documento PDF")
}

func TestGenerateHerdPDF_SinAnimales(t *testing.T) {
	out, err := NewMarotoPDFGenerator().GenerateHerdPDF(context.Background(), &report.HerdReport{Title: "Granja"})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestGenerateHerdPDF_Nil(t *testing.T) {
	_, err := NewMarotoPDFGenerator().GenerateHerdPDF(context.Background(), nil)
	assert.Error(t, err)
}

func TestGenderLabel(t *testing.T) {
	assert.Equal(t, "Macho", genderLabel("Male"))
	assert.Equal(t, "Hembra", genderLabel("Female"))
	assert.Equal(t, "X", genderLabel("X"))
}
