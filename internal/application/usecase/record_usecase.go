package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Granja-api/internal/application/dto"
	"github.com/jhoicas/Granja-api/internal/domain"
	"github.com/jhoicas/Granja-api/internal/domain/entity"
	"github.com/jhoicas/Granja-api/internal/domain/repository"
)

// RecordUseCase consultas de montas, sanidad, gastos y ventas. Las altas van por el Registrar.
type RecordUseCase struct {
	repos repository.Repos
}

func NewRecordUseCase(repos repository.Repos) *RecordUseCase {
	return &RecordUseCase{repos: repos}
}

// dateRange interpreta startDate/endDate; vacíos no limitan.
func dateRange(in dto.RecordFilterRequest) (from, to *time.Time, err error) {
	start, err := dto.ParseDate(in.StartDate)
	if err != nil {
		return nil, nil, invalid("startDate: %v", err)
	}
	end, err := dto.ParseDate(in.EndDate)
	if err != nil {
		return nil, nil, invalid("endDate: %v", err)
	}
	if !start.IsZero() {
		from = &start
	}
	if !end.IsZero() {
		to = &end
	}
	if from != nil && to != nil && to.Before(*from) {
		return nil, nil, invalid("endDate es anterior a startDate")
	}
	return from, to, nil
}

func (uc *RecordUseCase) ListBreeding(ctx context.Context, in dto.RecordFilterRequest) ([]dto.BreedingRecordResponse, error) {
	recs, err := uc.repos.Breeding.List(ctx, entity.BreedingFilter{GoatID: in.GoatID})
	if err != nil {
		return nil, err
	}
	return dto.FromBreedingRecords(recs), nil
}

func (uc *RecordUseCase) GetBreeding(ctx context.Context, id string) (*dto.BreedingRecordResponse, error) {
	rec, err := uc.repos.Breeding.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.FromBreedingRecord(rec)
	return &out, nil
}

func (uc *RecordUseCase) ListHealth(ctx context.Context, in dto.RecordFilterRequest) ([]dto.HealthRecordResponse, error) {
	if in.RecordType != "" && !entity.ValidHealthRecordType(in.RecordType) {
		return nil, invalid("recordType desconocido %q", in.RecordType)
	}
	recs, err := uc.repos.Health.List(ctx, entity.HealthFilter{GoatID: in.GoatID, RecordType: in.RecordType})
	if err != nil {
		return nil, err
	}
	return dto.FromHealthRecords(recs), nil
}

func (uc *RecordUseCase) GetHealth(ctx context.Context, id string) (*dto.HealthRecordResponse, error) {
	rec, err := uc.repos.Health.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.FromHealthRecord(rec)
	return &out, nil
}

// ListExpenses filtra por categoría (normalizada igual que al registrar) y rango de fechas.
func (uc *RecordUseCase) ListExpenses(ctx context.Context, in dto.RecordFilterRequest) ([]dto.ExpenseResponse, error) {
	from, to, err := dateRange(in)
	if err != nil {
		return nil, err
	}
	recs, err := uc.repos.Expenses.List(ctx, entity.ExpenseFilter{
		Category:  entity.NormalizeLabel(in.Category),
		StartDate: from,
		EndDate:   to,
	})
	if err != nil {
		return nil, err
	}
	return dto.FromExpenses(recs), nil
}

func (uc *RecordUseCase) GetExpense(ctx context.Context, id string) (*dto.ExpenseResponse, error) {
	rec, err := uc.repos.Expenses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.FromExpense(rec)
	return &out, nil
}

func (uc *RecordUseCase) ListSales(ctx context.Context, in dto.RecordFilterRequest) ([]dto.SaleResponse, error) {
	from, to, err := dateRange(in)
	if err != nil {
		return nil, err
	}
	recs, err := uc.repos.Sales.List(ctx, entity.SaleFilter{GoatID: in.GoatID, StartDate: from, EndDate: to})
	if err != nil {
		return nil, err
	}
	return dto.FromSales(recs), nil
}

func (uc *RecordUseCase) GetSale(ctx context.Context, id string) (*dto.SaleResponse, error) {
	rec, err := uc.repos.Sales.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.FromSale(rec)
	return &out, nil
}
