package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRefParse(t *testing.T) {
	out, err := run(t, "ref", "parse", "SR-2026-0007")
	require.NoError(t, err)
	assert.Equal(t, "tipo=sale año=2026 secuencia=7\n", out)

	_, err = run(t, "ref", "parse", "XX-2026-0001")
	assert.Error(t, err)
}

func TestRefFormat(t *testing.T) {
	out, err := run(t, "ref", "format", "EXP", "42", "--year", "2025")
	require.NoError(t, err)
	assert.Equal(t, "EXP-2025-0042\n", out)
}

func TestSeedAdmin_Memoria(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("SEED_ADMIN_EMAIL", "ops@goatfarm.com")

	out, err := run(t, "seed", "admin")
	require.NoError(t, err)
	assert.Contains(t, out, "administrador creado: ops@goatfarm.com")
}

func TestMigrate_RequierePostgres(t *testing.T) {
	_, err := run(t, "--storage", "memory", "migrate", "version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres")
}

func TestReportHerd_EscribePDF(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	dest := filepath.Join(t.TempDir(), "hato.pdf")

	out, err := run(t, "report", "herd", "-o", dest)
	require.NoError(t, err)
	assert.Contains(t, out, dest)

	raw, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
}
