package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Granja-api/internal/domain"
	"github.com/jhoicas/Granja-api/internal/domain/entity"
	"github.com/jhoicas/Granja-api/internal/domain/reference"
	"github.com/jhoicas/Granja-api/internal/domain/repository"
)

var (
	_ repository.ReferenceCounterRepository = (*ReferenceCounterRepo)(nil)
	_ repository.BreedingRepository         = (*BreedingRepo)(nil)
	_ repository.HealthRepository           = (*HealthRepo)(nil)
	_ repository.ExpenseRepository          = (*ExpenseRepo)(nil)
	_ repository.SaleRepository             = (*SaleRepo)(nil)
)

// recordWriteError traduce las violaciones de constraints comunes a los registros transaccionales.
func recordWriteError(op, ref string, err error) error {
	switch {
	case err == nil:
		return nil
	case isUniqueViolation(err):
		return fmt.Errorf("%w: referencia %s", domain.ErrDuplicate, ref)
	case isForeignKeyViolation(err), isInvalidText(err):
		return fmt.Errorf("%w: animal referenciado inexistente", domain.ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// ── Contadores de referencia ──────────────────────────────────────────────────

// ReferenceCounterRepo una fila por tipo; el UPSERT incrementa y bloquea la fila hasta el commit.
type ReferenceCounterRepo struct {
	q Querier
}

func NewReferenceCounterRepository(q Querier) *ReferenceCounterRepo {
	return &ReferenceCounterRepo{q: q}
}

func (r *ReferenceCounterRepo) Next(ctx context.Context, kind reference.Kind) (int64, error) {
	if !kind.Valid() {
		return 0, fmt.Errorf("%w: tipo %q", domain.ErrInvalidInput, kind)
	}
	var v int64
	err := r.q.QueryRow(ctx, `
		INSERT INTO reference_counters (kind, last_value, updated_at) VALUES ($1, 1, now())
		ON CONFLICT (kind) DO UPDATE
		SET last_value = reference_counters.last_value + 1, updated_at = now()
		RETURNING last_value`, string(kind)).Scan(&v)
	if err != nil {
		return 0, fmt.Errorf("next reference %s: %w", kind, err)
	}
	return v, nil
}

func (r *ReferenceCounterRepo) Current(ctx context.Context, kind reference.Kind) (int64, error) {
	var v int64
	err := r.q.QueryRow(ctx, `SELECT last_value FROM reference_counters WHERE kind = $1`, string(kind)).Scan(&v)
	if err != nil {
		if noRows(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("current reference %s: %w", kind, err)
	}
	return v, nil
}

// ── Reproducción ──────────────────────────────────────────────────────────────

const breedingSelect = `
	SELECT b.id, b.reference_no, b.male_goat_id, b.female_goat_id, b.breeding_date, b.breeding_method,
	       b.expected_kid_date, b.actual_kid_date, b.kids_born, b.notes, b.created_by, b.created_at,
	       m.tag_no, m.name, m.breed, f.tag_no, f.name, f.breed
	FROM breeding_records b
	JOIN goats m ON m.id = b.male_goat_id
	JOIN goats f ON f.id = b.female_goat_id`

func scanBreeding(row pgx.Row) (*entity.BreedingRecord, error) {
	var b entity.BreedingRecord
	m, f := &entity.GoatRef{}, &entity.GoatRef{}
	err := row.Scan(
		&b.ID, &b.ReferenceNo, &b.MaleGoatID, &b.FemaleGoatID, &b.BreedingDate, &b.BreedingMethod,
		&b.ExpectedKidDate, &b.ActualKidDate, &b.KidsBorn, &b.Notes, &b.CreatedBy, &b.CreatedAt,
		&m.TagNo, &m.Name, &m.Breed, &f.TagNo, &f.Name, &f.Breed,
	)
	if err != nil {
		return nil, err
	}
	m.ID, f.ID = b.MaleGoatID, b.FemaleGoatID
	b.MaleGoat, b.FemaleGoat = m, f
	return &b, nil
}

func collectBreeding(rows pgx.Rows) ([]*entity.BreedingRecord, error) {
	defer rows.Close()
	list := make([]*entity.BreedingRecord, 0)
	for rows.Next() {
		b, err := scanBreeding(rows)
		if err != nil {
			return nil, fmt.Errorf("scan breeding record: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

type BreedingRepo struct {
	q Querier
}

func NewBreedingRepository(q Querier) *BreedingRepo {
	return &BreedingRepo{q: q}
}

func (r *BreedingRepo) Create(ctx context.Context, b *entity.BreedingRecord) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO breeding_records (id, reference_no, male_goat_id, female_goat_id, breeding_date, breeding_method,
		                              expected_kid_date, actual_kid_date, kids_born, notes, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		b.ID, b.ReferenceNo, b.MaleGoatID, b.FemaleGoatID, b.BreedingDate, b.BreedingMethod,
		b.ExpectedKidDate, b.ActualKidDate, b.KidsBorn, b.Notes, b.CreatedBy, b.CreatedAt,
	)
	return recordWriteError("insert breeding record", b.ReferenceNo, err)
}

func (r *BreedingRepo) GetByID(ctx context.Context, id string) (*entity.BreedingRecord, error) {
	b, err := scanBreeding(r.q.QueryRow(ctx, breedingSelect+` WHERE b.id = $1`, id))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get breeding record: %w", err)
	}
	return b, nil
}

func (r *BreedingRepo) List(ctx context.Context, f entity.BreedingFilter) ([]*entity.BreedingRecord, error) {
	var w where
	if f.GoatID != "" {
		if !validID(f.GoatID) {
			return []*entity.BreedingRecord{}, nil
		}
		w.add("(b.male_goat_id = ? OR b.female_goat_id = ?)", f.GoatID, f.GoatID)
	}
	rows, err := r.q.Query(ctx, breedingSelect+w.String()+` ORDER BY b.breeding_date DESC, b.created_at DESC`, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list breeding records: %w", err)
	}
	return collectBreeding(rows)
}

// ── Sanidad ───────────────────────────────────────────────────────────────────

const healthSelect = `
	SELECT h.id, h.reference_no, h.goat_id, h.date, h.record_type, h.description, h.medicine, h.dosage,
	       h.vet_name, h.cost, h.next_due_date, h.notes, h.created_by, h.created_at,
	       g.tag_no, g.name, g.breed
	FROM health_records h
	JOIN goats g ON g.id = h.goat_id`

func scanHealth(row pgx.Row) (*entity.HealthRecord, error) {
	var h entity.HealthRecord
	ref := &entity.GoatRef{}
	err := row.Scan(
		&h.ID, &h.ReferenceNo, &h.GoatID, &h.Date, &h.RecordType, &h.Description, &h.Medicine, &h.Dosage,
		&h.VetName, &h.Cost, &h.NextDueDate, &h.Notes, &h.CreatedBy, &h.CreatedAt,
		&ref.TagNo, &ref.Name, &ref.Breed,
	)
	if err != nil {
		return nil, err
	}
	ref.ID = h.GoatID
	h.Goat = ref
	return &h, nil
}

func collectHealth(rows pgx.Rows) ([]*entity.HealthRecord, error) {
	defer rows.Close()
	list := make([]*entity.HealthRecord, 0)
	for rows.Next() {
		h, err := scanHealth(rows)
		if err != nil {
			return nil, fmt.Errorf("scan health record: %w", err)
		}
		list = append(list, h)
	}
	return list, rows.Err()
}

type HealthRepo struct {
	q Querier
}

func NewHealthRepository(q Querier) *HealthRepo {
	return &HealthRepo{q: q}
}

func (r *HealthRepo) Create(ctx context.Context, h *entity.HealthRecord) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO health_records (id, reference_no, goat_id, date, record_type, description, medicine, dosage,
		                            vet_name, cost, next_due_date, notes, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		h.ID, h.ReferenceNo, h.GoatID, h.Date, h.RecordType, h.Description, h.Medicine, h.Dosage,
		h.VetName, h.Cost, h.NextDueDate, h.Notes, h.CreatedBy, h.CreatedAt,
	)
	return recordWriteError("insert health record", h.ReferenceNo, err)
}

func (r *HealthRepo) GetByID(ctx context.Context, id string) (*entity.HealthRecord, error) {
	h, err := scanHealth(r.q.QueryRow(ctx, healthSelect+` WHERE h.id = $1`, id))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get health record: %w", err)
	}
	return h, nil
}

func (r *HealthRepo) List(ctx context.Context, f entity.HealthFilter) ([]*entity.HealthRecord, error) {
	var w where
	if f.GoatID != "" {
		if !validID(f.GoatID) {
			return []*entity.HealthRecord{}, nil
		}
		w.add("h.goat_id = ?", f.GoatID)
	}
	if f.RecordType != "" {
		w.add("h.record_type = ?", f.RecordType)
	}
	rows, err := r.q.Query(ctx, healthSelect+w.String()+` ORDER BY h.date DESC, h.created_at DESC`, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list health records: %w", err)
	}
	return collectHealth(rows)
}

// ── Gastos ────────────────────────────────────────────────────────────────────

const expenseColumns = `id, reference_no, date, category, description, amount, payment_mode, vendor_name, notes, created_by, created_at`

func scanExpense(row pgx.Row) (*entity.Expense, error) {
	var e entity.Expense
	err := row.Scan(&e.ID, &e.ReferenceNo, &e.Date, &e.Category, &e.Description, &e.Amount,
		&e.PaymentMode, &e.VendorName, &e.Notes, &e.CreatedBy, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

type ExpenseRepo struct {
	q Querier
}

func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

func (r *ExpenseRepo) Create(ctx context.Context, e *entity.Expense) error {
	_, err := r.q.Exec(ctx, `INSERT INTO expenses (`+expenseColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		e.ID, e.ReferenceNo, e.Date, e.Category, e.Description, e.Amount,
		e.PaymentMode, e.VendorName, e.Notes, e.CreatedBy, e.CreatedAt,
	)
	return recordWriteError("insert expense", e.ReferenceNo, err)
}

func (r *ExpenseRepo) GetByID(ctx context.Context, id string) (*entity.Expense, error) {
	e, err := scanExpense(r.q.QueryRow(ctx, `SELECT `+expenseColumns+` FROM expenses WHERE id = $1`, id))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get expense: %w", err)
	}
	return e, nil
}

// List rango [StartDate, EndDate] inclusivo por día calendario.
func (r *ExpenseRepo) List(ctx context.Context, f entity.ExpenseFilter) ([]*entity.Expense, error) {
	var w where
	if f.Category != "" {
		w.add("category = ?", f.Category)
	}
	if f.StartDate != nil {
		w.add("date >= ?::date", entity.CalendarDay(*f.StartDate))
	}
	if f.EndDate != nil {
		w.add("date <= ?::date", entity.CalendarDay(*f.EndDate))
	}
	rows, err := r.q.Query(ctx, `SELECT `+expenseColumns+` FROM expenses`+w.String()+` ORDER BY date DESC, created_at DESC`, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Expense, 0)
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// ── Ventas ────────────────────────────────────────────────────────────────────

const saleSelect = `
	SELECT s.id, s.reference_no, s.goat_id, s.sale_date, s.buyer_name, s.buyer_contact, s.sale_price, s.weight,
	       s.payment_mode, s.notes, s.created_by, s.created_at,
	       g.tag_no, g.name, g.breed
	FROM sale_records s
	JOIN goats g ON g.id = s.goat_id`

func scanSale(row pgx.Row) (*entity.SaleRecord, error) {
	var s entity.SaleRecord
	ref := &entity.GoatRef{}
	err := row.Scan(
		&s.ID, &s.ReferenceNo, &s.GoatID, &s.SaleDate, &s.BuyerName, &s.BuyerContact, &s.SalePrice, &s.Weight,
		&s.PaymentMode, &s.Notes, &s.CreatedBy, &s.CreatedAt,
		&ref.TagNo, &ref.Name, &ref.Breed,
	)
	if err != nil {
		return nil, err
	}
	ref.ID = s.GoatID
	s.Goat = ref
	return &s, nil
}

type SaleRepo struct {
	q Querier
}

func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

func (r *SaleRepo) Create(ctx context.Context, s *entity.SaleRecord) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO sale_records (id, reference_no, goat_id, sale_date, buyer_name, buyer_contact, sale_price, weight,
		                          payment_mode, notes, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		s.ID, s.ReferenceNo, s.GoatID, s.SaleDate, s.BuyerName, s.BuyerContact, s.SalePrice, s.Weight,
		s.PaymentMode, s.Notes, s.CreatedBy, s.CreatedAt,
	)
	return recordWriteError("insert sale record", s.ReferenceNo, err)
}

func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.SaleRecord, error) {
	s, err := scanSale(r.q.QueryRow(ctx, saleSelect+` WHERE s.id = $1`, id))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale record: %w", err)
	}
	return s, nil
}

func (r *SaleRepo) List(ctx context.Context, f entity.SaleFilter) ([]*entity.SaleRecord, error) {
	var w where
	if f.GoatID != "" {
		if !validID(f.GoatID) {
			return []*entity.SaleRecord{}, nil
		}
		w.add("s.goat_id = ?", f.GoatID)
	}
	if f.StartDate != nil {
		w.add("s.sale_date >= ?::date", entity.CalendarDay(*f.StartDate))
	}
	if f.EndDate != nil {
		w.add("s.sale_date <= ?::date", entity.CalendarDay(*f.EndDate))
	}
	rows, err := r.q.Query(ctx, saleSelect+w.String()+` ORDER BY s.sale_date DESC, s.created_at DESC`, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list sale records: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.SaleRecord, 0)
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale record: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
