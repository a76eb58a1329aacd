// Package registrar registra los registros transaccionales de la granja (montas, sanidad, gastos,
// ventas e insumos): asigna su número de referencia y aplica el efecto de la venta sobre el animal.
// Cada registro se ejecuta en UNA transacción: contador, cambios de estado e inserción se confirman juntos.
package registrar

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/jhoicas/Granja-api/internal/application/dto"
	"github.com/jhoicas/Granja-api/internal/domain"
	"github.com/jhoicas/Granja-api/internal/domain/entity"
	"github.com/jhoicas/Granja-api/internal/domain/reference"
	"github.com/jhoicas/Granja-api/internal/domain/repository"
	"github.com/jhoicas/Granja-api/pkg/tracing"
)

// Registrar caso de uso de alta de registros con número de referencia.
type Registrar struct {
	txRunner TxRunner
	tracer   trace.Tracer
	now      func() time.Time
}

// NewRegistrar construye el caso de uso. tracer puede ser nil (no-op).
func NewRegistrar(txRunner TxRunner, tracer trace.Tracer) *Registrar {
	if tracer == nil {
		tracer = tracing.Noop()
	}
	return &Registrar{txRunner: txRunner, tracer: tracer, now: time.Now}
}

// WithClock reemplaza el reloj (el año del número de referencia sale de aquí).
func (r *Registrar) WithClock(now func() time.Time) *Registrar {
	r.now = now
	return r
}

// register abre el span y la transacción, toma el siguiente valor del contador del tipo
// y ejecuta insert con el número de referencia ya formateado.
func (r *Registrar) register(
	ctx context.Context,
	kind reference.Kind,
	userID string,
	insert func(ctx context.Context, repos repository.Repos, ref string, now time.Time) error,
) (string, error) {
	ctx, span := r.tracer.Start(ctx, tracing.SpanPrefixRegistrar+string(kind),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
	span.SetAttributes(
		attribute.String(tracing.AttrRecordKind, string(kind)),
		attribute.String(tracing.AttrUserID, userID),
	)

	now := r.now()
	var ref string
	err := r.txRunner.Run(ctx, func(repos repository.Repos) error {
		seq, err := repos.Counters.Next(ctx, kind)
		if err != nil {
			return fmt.Errorf("registrar: contador %s: %w", kind, err)
		}
		ref, err = reference.Format(kind, now.Year(), seq)
		if err != nil {
			return err
		}
		return insert(ctx, repos, ref, now)
	})
	if err == nil {
		span.SetAttributes(attribute.String(tracing.AttrReferenceNo, ref))
	}
	tracing.End(span, err)
	return ref, err
}

// requireGoat carga el animal o retorna ErrNotFound.
func requireGoat(ctx context.Context, goats repository.GoatRepository, id, label string) (*entity.Goat, error) {
	g, err := goats.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, fmt.Errorf("%w: %s %s", domain.ErrNotFound, label, id)
	}
	return g, nil
}

// CreateBreeding registra una monta (prefijo BR). Si no se envía fecha probable de parto
// se calcula como monta + 150 días.
func (r *Registrar) CreateBreeding(ctx context.Context, userID string, in dto.CreateBreedingRequest) (*dto.BreedingRecordResponse, error) {
	if err := ValidateBreeding(in); err != nil {
		return nil, err
	}
	method := in.BreedingMethod
	if method == "" {
		method = entity.BreedingMethodNatural
	}
	expected := entity.ExpectedKidDateFrom(in.BreedingDate.Time)
	if in.ExpectedKidDate != nil && !in.ExpectedKidDate.IsZero() {
		expected = in.ExpectedKidDate.Time
	}
	rec := &entity.BreedingRecord{
		ID:              uuid.New().String(),
		MaleGoatID:      in.MaleGoatID,
		FemaleGoatID:    in.FemaleGoatID,
		BreedingDate:    in.BreedingDate.Time,
		BreedingMethod:  method,
		ExpectedKidDate: expected,
		ActualKidDate:   in.ActualKidDate.TimePtr(),
		KidsBorn:        in.KidsBorn,
		Notes:           in.Notes,
		CreatedBy:       userID,
	}
	_, err := r.register(ctx, reference.KindBreeding, userID, func(ctx context.Context, repos repository.Repos, ref string, now time.Time) error {
		male, err := requireGoat(ctx, repos.Goats, in.MaleGoatID, "macho")
		if err != nil {
			return err
		}
		if male.Gender != entity.GenderMale {
			return fmt.Errorf("%w: maleGoatId %s no es macho", domain.ErrInvalidInput, male.TagNo)
		}
		female, err := requireGoat(ctx, repos.Goats, in.FemaleGoatID, "hembra")
		if err != nil {
			return err
		}
		if female.Gender != entity.GenderFemale {
			return fmt.Errorf("%w: femaleGoatId %s no es hembra", domain.ErrInvalidInput, female.TagNo)
		}
		rec.ReferenceNo = ref
		rec.CreatedAt = now
		return repos.Breeding.Create(ctx, rec)
	})
	if err != nil {
		return nil, err
	}
	out := dto.FromBreedingRecord(rec)
	return &out, nil
}

// CreateHealth registra un evento sanitario (prefijo HR).
func (r *Registrar) CreateHealth(ctx context.Context, userID string, in dto.CreateHealthRequest) (*dto.HealthRecordResponse, error) {
	if err := ValidateHealth(in); err != nil {
		return nil, err
	}
	rec := &entity.HealthRecord{
		ID:          uuid.New().String(),
		GoatID:      in.GoatID,
		Date:        in.Date.Time,
		RecordType:  in.RecordType,
		Description: in.Description,
		Medicine:    in.Medicine,
		Dosage:      in.Dosage,
		VetName:     in.VetName,
		Cost:        in.Cost,
		NextDueDate: in.NextDueDate.TimePtr(),
		Notes:       in.Notes,
		CreatedBy:   userID,
	}
	_, err := r.register(ctx, reference.KindHealth, userID, func(ctx context.Context, repos repository.Repos, ref string, now time.Time) error {
		if _, err := requireGoat(ctx, repos.Goats, in.GoatID, "animal"); err != nil {
			return err
		}
		rec.ReferenceNo = ref
		rec.CreatedAt = now
		return repos.Health.Create(ctx, rec)
	})
	if err != nil {
		return nil, err
	}
	out := dto.FromHealthRecord(rec)
	return &out, nil
}

// CreateExpense registra un gasto (prefijo EXP). La categoría se normaliza para agrupar en el tablero.
func (r *Registrar) CreateExpense(ctx context.Context, userID string, in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	if err := ValidateExpense(in); err != nil {
		return nil, err
	}
	rec := &entity.Expense{
		ID:          uuid.New().String(),
		Date:        in.Date.Time,
		Category:    entity.NormalizeLabel(in.Category),
		Description: in.Description,
		Amount:      in.Amount,
		PaymentMode: in.PaymentMode,
		VendorName:  in.VendorName,
		Notes:       in.Notes,
		CreatedBy:   userID,
	}
	_, err := r.register(ctx, reference.KindExpense, userID, func(ctx context.Context, repos repository.Repos, ref string, now time.Time) error {
		rec.ReferenceNo = ref
		rec.CreatedAt = now
		return repos.Expenses.Create(ctx, rec)
	})
	if err != nil {
		return nil, err
	}
	out := dto.FromExpense(rec)
	return &out, nil
}

// CreateSale registra la venta de un animal (prefijo SR) y lo marca como Sold en la misma transacción.
// Bloquea la fila del animal (SELECT FOR UPDATE): un animal inexistente retorna ErrNotFound y uno
// que no está Active retorna ErrAnimalNotAvailable, sin consumir número de referencia.
func (r *Registrar) CreateSale(ctx context.Context, userID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if err := ValidateSale(in); err != nil {
		return nil, err
	}
	rec := &entity.SaleRecord{
		ID:           uuid.New().String(),
		GoatID:       in.GoatID,
		SaleDate:     in.SaleDate.Time,
		BuyerName:    in.BuyerName,
		BuyerContact: in.BuyerContact,
		SalePrice:    in.SalePrice,
		Weight:       in.Weight,
		PaymentMode:  in.PaymentMode,
		Notes:        in.Notes,
		CreatedBy:    userID,
	}

	ctx, span := r.tracer.Start(ctx, tracing.SpanPrefixRegistrar+string(reference.KindSale),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
	span.SetAttributes(
		attribute.String(tracing.AttrRecordKind, string(reference.KindSale)),
		attribute.String(tracing.AttrUserID, userID),
		attribute.String(tracing.AttrGoatID, in.GoatID),
	)
	now := r.now()
	err := r.txRunner.Run(ctx, func(repos repository.Repos) error {
		goat, err := repos.Goats.GetByIDForUpdate(ctx, in.GoatID)
		if err != nil {
			return err
		}
		if goat == nil {
			return fmt.Errorf("%w: animal %s", domain.ErrNotFound, in.GoatID)
		}
		if !goat.IsActive() {
			return fmt.Errorf("%w: %s está en estado %s", domain.ErrAnimalNotAvailable, goat.TagNo, goat.Status)
		}
		if err := repos.Goats.UpdateStatus(ctx, goat.ID, entity.GoatStatusSold, userID); err != nil {
			return err
		}
		seq, err := repos.Counters.Next(ctx, reference.KindSale)
		if err != nil {
			return fmt.Errorf("registrar: contador %s: %w", reference.KindSale, err)
		}
		ref, err := reference.Format(reference.KindSale, now.Year(), seq)
		if err != nil {
			return err
		}
		rec.ReferenceNo = ref
		rec.CreatedAt = now
		rec.Goat = &entity.GoatRef{ID: goat.ID, TagNo: goat.TagNo, Name: goat.Name, Breed: goat.Breed}
		return repos.Sales.Create(ctx, rec)
	})
	if err == nil {
		span.SetAttributes(attribute.String(tracing.AttrReferenceNo, rec.ReferenceNo))
	}
	tracing.End(span, err)
	if err != nil {
		return nil, err
	}
	out := dto.FromSale(rec)
	return &out, nil
}

// CreateInventoryItem registra un insumo (prefijo INV).
func (r *Registrar) CreateInventoryItem(ctx context.Context, userID string, in dto.CreateInventoryRequest) (*dto.InventoryItemResponse, error) {
	if err := ValidateInventory(in); err != nil {
		return nil, err
	}
	item := &entity.InventoryItem{
		ID:            uuid.New().String(),
		ItemName:      in.ItemName,
		Category:      entity.NormalizeLabel(in.Category),
		Quantity:      in.Quantity,
		Unit:          in.Unit,
		MinStock:      in.MinStock,
		UnitPrice:     in.UnitPrice,
		Supplier:      in.Supplier,
		LastRestocked: in.LastRestocked.TimePtr(),
		ExpiryDate:    in.ExpiryDate.TimePtr(),
		Notes:         in.Notes,
		CreatedBy:     userID,
	}
	_, err := r.register(ctx, reference.KindInventory, userID, func(ctx context.Context, repos repository.Repos, ref string, now time.Time) error {
		item.ReferenceNo = ref
		item.CreatedAt = now
		item.UpdatedAt = now
		return repos.Inventory.Create(ctx, item)
	})
	if err != nil {
		return nil, err
	}
	out := dto.FromInventoryItem(item)
	return &out, nil
}
