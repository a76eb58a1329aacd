package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Granja-api/internal/domain"
	"github.com/jhoicas/Granja-api/internal/domain/entity"
)

func TestWhere(t *testing.T) {
	var w where
	assert.Equal(t, "", w.String())

	w.add("status = ?", "Active")
	w.add("(b.male_goat_id = ? OR b.female_goat_id = ?)", "g1", "g1")
	w.add("quantity <= min_stock")
	w.add("date >= ?::date", "2026-03-01")

	assert.Equal(t,
		" WHERE status = $1 AND (b.male_goat_id = $2 OR b.female_goat_id = $3) AND quantity <= min_stock AND date >= $4::date",
		w.String())
	assert.Equal(t, []any{"Active", "g1", "g1", "2026-03-01"}, w.args)
}

func TestViolaciones(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})
	fk := &pgconn.PgError{Code: "23503"}

	assert.True(t, isUniqueViolation(unique))
	assert.False(t, isUniqueViolation(fk))
	assert.True(t, isForeignKeyViolation(fk))
	assert.False(t, isForeignKeyViolation(errors.New("23503 en el texto no cuenta")))
}

func TestRecordWriteError(t *testing.T) {
	assert.NoError(t, recordWriteError("op", "SR-2026-0001", nil))
	assert.ErrorIs(t, recordWriteError("op", "SR-2026-0001", &pgconn.PgError{Code: "23505"}), domain.ErrDuplicate)
	assert.ErrorIs(t, recordWriteError("op", "SR-2026-0001", &pgconn.PgError{Code: "23503"}), domain.ErrNotFound)

	other := errors.New("conexión cerrada")
	assert.ErrorIs(t, recordWriteError("op", "SR-2026-0001", other), other)
}

func TestGoatWriteError(t *testing.T) {
	assert.ErrorIs(t, goatWriteError("op", "T-1", &pgconn.PgError{Code: "23505"}), domain.ErrDuplicate)
	assert.ErrorIs(t, goatWriteError("op", "T-1", &pgconn.PgError{Code: "23503"}), domain.ErrNotFound)
}

// ── Ids mal formados ──────────────────────────────────────────────────────────

// invalidTextQuerier responde como Postgres ante un id que no es UUID y cuenta las consultas.
type invalidTextQuerier struct {
	calls int
}

var errInvalidUUID = &pgconn.PgError{Code: "22P02", Message: `invalid input syntax for type uuid: "abc"`}

func (q *invalidTextQuerier) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	q.calls++
	return pgconn.CommandTag{}, errInvalidUUID
}

func (q *invalidTextQuerier) Query(context.Context, string, ...any) (pgx.Rows, error) {
	q.calls++
	return nil, errInvalidUUID
}

func (q *invalidTextQuerier) QueryRow(context.Context, string, ...any) pgx.Row {
	q.calls++
	return errRow{errInvalidUUID}
}

type errRow struct{ err error }

func (r errRow) Scan(...any) error { return r.err }

func TestIdMalFormado(t *testing.T) {
	assert.True(t, isInvalidText(fmt.Errorf("get: %w", errInvalidUUID)))
	assert.True(t, noRows(errInvalidUUID))
	assert.True(t, noRows(pgx.ErrNoRows))
	assert.False(t, noRows(&pgconn.PgError{Code: "23505"}))
	assert.True(t, validID("6f1c2a8e-3b4d-4c5e-9f60-718293a4b5c6"))
	assert.False(t, validID("abc"))

	assert.ErrorIs(t, recordWriteError("insert sale record", "SR-2026-0001", errInvalidUUID), domain.ErrNotFound)
	assert.ErrorIs(t, goatWriteError("insert goat", "G-1", errInvalidUUID), domain.ErrNotFound)
}

func TestRepos_IdMalFormadoEsNoEncontrado(t *testing.T) {
	ctx := context.Background()
	q := &invalidTextQuerier{}

	g, err := NewGoatRepository(q).GetByID(ctx, "abc")
	require.NoError(t, err)
	assert.Nil(t, g)
	g, err = NewGoatRepository(q).GetByIDForUpdate(ctx, "abc")
	require.NoError(t, err)
	assert.Nil(t, g)
	h, err := NewHealthRepository(q).GetByID(ctx, "abc")
	require.NoError(t, err)
	assert.Nil(t, h)
	i, err := NewInventoryRepository(q).GetByID(ctx, "abc")
	require.NoError(t, err)
	assert.Nil(t, i)
	u, err := NewUserRepository(q).GetByID(ctx, "abc")
	require.NoError(t, err)
	assert.Nil(t, u)
	assert.Equal(t, 5, q.calls)

	// Filtros y escrituras por id se resuelven sin consultar
	q.calls = 0
	health, err := NewHealthRepository(q).List(ctx, entity.HealthFilter{GoatID: "abc"})
	require.NoError(t, err)
	assert.Empty(t, health)
	sales, err := NewSaleRepository(q).List(ctx, entity.SaleFilter{GoatID: "abc"})
	require.NoError(t, err)
	assert.Empty(t, sales)
	breeding, err := NewBreedingRepository(q).List(ctx, entity.BreedingFilter{GoatID: "abc"})
	require.NoError(t, err)
	assert.Empty(t, breeding)
	weights, err := NewWeightRecordRepository(q).ListByGoat(ctx, "abc")
	require.NoError(t, err)
	assert.Empty(t, weights)
	assert.ErrorIs(t, NewGoatRepository(q).Update(ctx, &entity.Goat{ID: "abc"}), domain.ErrNotFound)
	assert.ErrorIs(t, NewGoatRepository(q).UpdateStatus(ctx, "abc", entity.GoatStatusSold, "u"), domain.ErrNotFound)
	assert.ErrorIs(t, NewGoatRepository(q).Delete(ctx, "abc"), domain.ErrNotFound)
	assert.ErrorIs(t, NewInventoryRepository(q).Update(ctx, &entity.InventoryItem{ID: "abc"}), domain.ErrNotFound)
	assert.Zero(t, q.calls)

	// Una escritura que referencia un animal mal formado
	err = NewHealthRepository(q).Create(ctx, &entity.HealthRecord{ID: "6f1c2a8e-3b4d-4c5e-9f60-718293a4b5c6", GoatID: "abc"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
