package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Granja-api/internal/domain"
	"github.com/jhoicas/Granja-api/internal/domain/entity"
	"github.com/jhoicas/Granja-api/internal/domain/repository"
)

var (
	_ repository.GoatRepository         = (*GoatRepo)(nil)
	_ repository.WeightRecordRepository = (*WeightRecordRepo)(nil)
)

const goatColumns = `id, tag_no, name, breed, gender, date_of_birth, weight, purpose, source,
	purchase_price, purchase_date, sire_id, dam_id, status, notes, created_by, updated_by, created_at, updated_at`

func scanGoat(row pgx.Row) (*entity.Goat, error) {
	var g entity.Goat
	err := row.Scan(
		&g.ID, &g.TagNo, &g.Name, &g.Breed, &g.Gender, &g.DateOfBirth, &g.Weight, &g.Purpose, &g.Source,
		&g.PurchasePrice, &g.PurchaseDate, &g.SireID, &g.DamID, &g.Status, &g.Notes,
		&g.CreatedBy, &g.UpdatedBy, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func collectGoats(rows pgx.Rows) ([]*entity.Goat, error) {
	defer rows.Close()
	list := make([]*entity.Goat, 0)
	for rows.Next() {
		g, err := scanGoat(rows)
		if err != nil {
			return nil, fmt.Errorf("scan goat: %w", err)
		}
		list = append(list, g)
	}
	return list, rows.Err()
}

// GoatRepo implementación de GoatRepository (usable con pool o tx).
type GoatRepo struct {
	q Querier
}

// NewGoatRepository construye el adaptador. Pasar pool o tx (Querier).
func NewGoatRepository(q Querier) *GoatRepo {
	return &GoatRepo{q: q}
}

// Create persiste un animal. Arete repetido -> ErrDuplicate; padre/madre inexistente -> ErrNotFound.
func (r *GoatRepo) Create(ctx context.Context, g *entity.Goat) error {
	query := `INSERT INTO goats (` + goatColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err := r.q.Exec(ctx, query,
		g.ID, g.TagNo, g.Name, g.Breed, g.Gender, g.DateOfBirth, g.Weight, g.Purpose, g.Source,
		g.PurchasePrice, g.PurchaseDate, g.SireID, g.DamID, g.Status, g.Notes,
		g.CreatedBy, g.UpdatedBy, g.CreatedAt, g.UpdatedAt,
	)
	return goatWriteError("insert goat", g.TagNo, err)
}

func goatWriteError(op, tagNo string, err error) error {
	switch {
	case err == nil:
		return nil
	case isUniqueViolation(err):
		return fmt.Errorf("%w: arete %s", domain.ErrDuplicate, tagNo)
	case isForeignKeyViolation(err), isInvalidText(err):
		return fmt.Errorf("%w: padre o madre inexistente", domain.ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func (r *GoatRepo) getOne(ctx context.Context, query string, arg any) (*entity.Goat, error) {
	g, err := scanGoat(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get goat: %w", err)
	}
	return g, nil
}

func (r *GoatRepo) GetByID(ctx context.Context, id string) (*entity.Goat, error) {
	return r.getOne(ctx, `SELECT `+goatColumns+` FROM goats WHERE id = $1`, id)
}

// GetByIDForUpdate bloquea la fila hasta el commit; solo tiene efecto dentro de una transacción.
func (r *GoatRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Goat, error) {
	return r.getOne(ctx, `SELECT `+goatColumns+` FROM goats WHERE id = $1 FOR UPDATE`, id)
}

func (r *GoatRepo) GetByTagNo(ctx context.Context, tagNo string) (*entity.Goat, error) {
	return r.getOne(ctx, `SELECT `+goatColumns+` FROM goats WHERE tag_no = $1`, tagNo)
}

func (r *GoatRepo) Update(ctx context.Context, g *entity.Goat) error {
	if !validID(g.ID) {
		return domain.ErrNotFound
	}
	query := `
		UPDATE goats
		SET tag_no = $2, name = $3, breed = $4, gender = $5, date_of_birth = $6, weight = $7,
		    purpose = $8, source = $9, purchase_price = $10, purchase_date = $11,
		    sire_id = $12, dam_id = $13, status = $14, notes = $15, updated_by = $16, updated_at = $17
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		g.ID, g.TagNo, g.Name, g.Breed, g.Gender, g.DateOfBirth, g.Weight,
		g.Purpose, g.Source, g.PurchasePrice, g.PurchaseDate,
		g.SireID, g.DamID, g.Status, g.Notes, g.UpdatedBy, g.UpdatedAt,
	)
	if err := goatWriteError("update goat", g.TagNo, err); err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *GoatRepo) UpdateStatus(ctx context.Context, id, status, updatedBy string) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	tag, err := r.q.Exec(ctx,
		`UPDATE goats SET status = $2, updated_by = $3, updated_at = now() WHERE id = $1`,
		id, status, updatedBy,
	)
	if err != nil {
		return fmt.Errorf("update goat status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el animal. Las llaves foráneas RESTRICT de reproducción, sanidad y ventas
// convierten el borrado en ErrConflict; pesajes se borran en cascada y las crías quedan sin padre/madre.
func (r *GoatRepo) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	tag, err := r.q.Exec(ctx, `DELETE FROM goats WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: el animal tiene registros asociados", domain.ErrConflict)
		}
		return fmt.Errorf("delete goat: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List filtra por estado, raza y sexo; más recientes primero.
func (r *GoatRepo) List(ctx context.Context, f entity.GoatFilter) ([]*entity.Goat, error) {
	var w where
	if f.Status != "" {
		w.add("status = ?", f.Status)
	}
	if f.Breed != "" {
		w.add("breed = ?", f.Breed)
	}
	if f.Gender != "" {
		w.add("gender = ?", f.Gender)
	}
	rows, err := r.q.Query(ctx, `SELECT `+goatColumns+` FROM goats`+w.String()+` ORDER BY created_at DESC`, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list goats: %w", err)
	}
	return collectGoats(rows)
}

func (r *GoatRepo) ListOffspring(ctx context.Context, parentID string) ([]*entity.Goat, error) {
	if !validID(parentID) {
		return []*entity.Goat{}, nil
	}
	rows, err := r.q.Query(ctx,
		`SELECT `+goatColumns+` FROM goats WHERE sire_id = $1 OR dam_id = $1 ORDER BY date_of_birth`,
		parentID,
	)
	if err != nil {
		return nil, fmt.Errorf("list offspring: %w", err)
	}
	return collectGoats(rows)
}

// ── Pesajes ───────────────────────────────────────────────────────────────────

type WeightRecordRepo struct {
	q Querier
}

func NewWeightRecordRepository(q Querier) *WeightRecordRepo {
	return &WeightRecordRepo{q: q}
}

func (r *WeightRecordRepo) Create(ctx context.Context, w *entity.WeightRecord) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO weight_records (id, goat_id, date, weight, notes, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		w.ID, w.GoatID, w.Date, w.Weight, w.Notes, w.CreatedBy, w.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) || isInvalidText(err) {
			return fmt.Errorf("%w: animal %s", domain.ErrNotFound, w.GoatID)
		}
		return fmt.Errorf("insert weight record: %w", err)
	}
	return nil
}

func (r *WeightRecordRepo) ListByGoat(ctx context.Context, goatID string) ([]*entity.WeightRecord, error) {
	if !validID(goatID) {
		return []*entity.WeightRecord{}, nil
	}
	rows, err := r.q.Query(ctx, `
		SELECT id, goat_id, date, weight, notes, created_by, created_at
		FROM weight_records WHERE goat_id = $1 ORDER BY date DESC, created_at DESC`, goatID)
	if err != nil {
		return nil, fmt.Errorf("list weight records: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.WeightRecord, 0)
	for rows.Next() {
		var w entity.WeightRecord
		if err := rows.Scan(&w.ID, &w.GoatID, &w.Date, &w.Weight, &w.Notes, &w.CreatedBy, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan weight record: %w", err)
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}
