package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Granja-api/internal/application/dto"
	"github.com/jhoicas/Granja-api/internal/domain"
	"github.com/jhoicas/Granja-api/internal/domain/entity"
	"github.com/jhoicas/Granja-api/internal/domain/repository"
)

// GoatUseCase casos de uso CRUD del hato y pesajes.
type GoatUseCase struct {
	repos    repository.Repos
	txRunner TxRunner
	now      func() time.Time
}

// NewGoatUseCase construye el caso de uso. repos opera en autocommit; los pasos múltiples van por txRunner.
func NewGoatUseCase(repos repository.Repos, txRunner TxRunner) *GoatUseCase {
	return &GoatUseCase{repos: repos, txRunner: txRunner, now: time.Now}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, fmt.Sprintf(format, args...))
}

// Create registra un animal. El arete (tagNo) es único: si ya existe retorna ErrDuplicate.
func (uc *GoatUseCase) Create(ctx context.Context, userID string, in dto.CreateGoatRequest) (*dto.GoatResponse, error) {
	in.TagNo = strings.TrimSpace(in.TagNo)
	if in.Purpose == "" {
		in.Purpose = entity.PurposeBreeding
	}
	if in.Source == "" {
		in.Source = entity.SourceBorn
	}
	if in.Status == "" {
		in.Status = entity.GoatStatusActive
	}
	switch {
	case in.TagNo == "":
		return nil, invalid("tagNo es obligatorio")
	case strings.TrimSpace(in.Breed) == "":
		return nil, invalid("breed es obligatorio")
	case !entity.ValidGender(in.Gender):
		return nil, invalid("gender debe ser Male o Female")
	case in.DateOfBirth.IsZero():
		return nil, invalid("dateOfBirth es obligatorio")
	case in.DateOfBirth.After(uc.now()):
		return nil, invalid("dateOfBirth no puede ser futura")
	case !entity.ValidPurpose(in.Purpose):
		return nil, invalid("purpose debe ser Breeding, Meat o Sale")
	case !entity.ValidSource(in.Source):
		return nil, invalid("source debe ser Born o Purchased")
	case !entity.ValidGoatStatus(in.Status):
		return nil, invalid("status debe ser Active, Sold, Dead o Culled")
	case in.Weight != nil && in.Weight.IsNegative():
		return nil, invalid("weight no puede ser negativo")
	case in.PurchasePrice != nil && in.PurchasePrice.IsNegative():
		return nil, invalid("purchasePrice no puede ser negativo")
	}
	if existing, err := uc.repos.Goats.GetByTagNo(ctx, in.TagNo); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, fmt.Errorf("%w: arete %s", domain.ErrDuplicate, in.TagNo)
	}

	now := uc.now()
	goat := &entity.Goat{
		ID:            uuid.New().String(),
		TagNo:         in.TagNo,
		Name:          strings.TrimSpace(in.Name),
		Breed:         entity.NormalizeLabel(in.Breed),
		Gender:        in.Gender,
		DateOfBirth:   in.DateOfBirth.Time,
		Weight:        in.Weight,
		Purpose:       in.Purpose,
		Source:        in.Source,
		PurchasePrice: in.PurchasePrice,
		PurchaseDate:  in.PurchaseDate.TimePtr(),
		SireID:        emptyToNil(in.SireID),
		DamID:         emptyToNil(in.DamID),
		Status:        in.Status,
		Notes:         in.Notes,
		CreatedBy:     userID,
		UpdatedBy:     userID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := checkParents(ctx, uc.repos.Goats, goat); err != nil {
		return nil, err
	}
	if err := uc.repos.Goats.Create(ctx, goat); err != nil {
		return nil, err
	}
	out := dto.FromGoat(goat, now)
	return &out, nil
}

func emptyToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

// checkParents valida que el padre exista y sea macho y la madre exista y sea hembra.
func checkParents(ctx context.Context, goats repository.GoatRepository, g *entity.Goat) error {
	check := func(id *string, gender, field string) error {
		if id == nil {
			return nil
		}
		if *id == g.ID {
			return invalid("%s no puede ser el mismo animal", field)
		}
		parent, err := goats.GetByID(ctx, *id)
		if err != nil {
			return err
		}
		if parent == nil {
			return invalid("%s %s no existe", field, *id)
		}
		if parent.Gender != gender {
			return invalid("%s %s debe ser %s", field, parent.TagNo, gender)
		}
		return nil
	}
	if err := check(g.SireID, entity.GenderMale, "sireId"); err != nil {
		return err
	}
	return check(g.DamID, entity.GenderFemale, "damId")
}

// GetByID ficha completa: padres, crías, sanidad, pesajes y montas como macho y como hembra.
func (uc *GoatUseCase) GetByID(ctx context.Context, id string) (*dto.GoatDetailResponse, error) {
	goat, err := uc.repos.Goats.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if goat == nil {
		return nil, domain.ErrNotFound
	}
	detail := &entity.GoatDetail{Goat: goat}
	if goat.SireID != nil {
		if detail.Sire, err = uc.repos.Goats.GetByID(ctx, *goat.SireID); err != nil {
			return nil, err
		}
	}
	if goat.DamID != nil {
		if detail.Dam, err = uc.repos.Goats.GetByID(ctx, *goat.DamID); err != nil {
			return nil, err
		}
	}
	if detail.Offspring, err = uc.repos.Goats.ListOffspring(ctx, id); err != nil {
		return nil, err
	}
	if detail.HealthRecords, err = uc.repos.Health.List(ctx, entity.HealthFilter{GoatID: id}); err != nil {
		return nil, err
	}
	if detail.WeightRecords, err = uc.repos.Weights.ListByGoat(ctx, id); err != nil {
		return nil, err
	}
	breeding, err := uc.repos.Breeding.List(ctx, entity.BreedingFilter{GoatID: id})
	if err != nil {
		return nil, err
	}
	for _, b := range breeding {
		if b.MaleGoatID == id {
			detail.BreedingAsMale = append(detail.BreedingAsMale, b)
		} else {
			detail.BreedingAsFemale = append(detail.BreedingAsFemale, b)
		}
	}
	out := dto.FromGoatDetail(detail, uc.now())
	return &out, nil
}

// List lista el hato con filtros opcionales de estado, raza y sexo; más recientes primero.
func (uc *GoatUseCase) List(ctx context.Context, in dto.GoatFilterRequest) ([]dto.GoatResponse, error) {
	filter := entity.GoatFilter{Status: in.Status, Gender: in.Gender}
	if in.Breed != "" {
		filter.Breed = entity.NormalizeLabel(in.Breed)
	}
	goats, err := uc.repos.Goats.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return dto.FromGoats(goats, uc.now()), nil
}

// Update aplica los campos presentes. Cambiar el estado aquí es la edición administrativa;
// la venta se registra por el Registrar.
func (uc *GoatUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateGoatRequest) (*dto.GoatResponse, error) {
	now := uc.now()
	var goat *entity.Goat
	// Lectura y escritura en la misma transacción con el animal bloqueado: una venta
	// concurrente no puede quedar pisada por el estado leído antes.
	err := uc.txRunner.Run(ctx, func(repos repository.Repos) error {
		var err error
		goat, err = repos.Goats.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if goat == nil {
			return domain.ErrNotFound
		}
		if err := applyGoatUpdate(goat, in); err != nil {
			return err
		}
		if err := checkParents(ctx, repos.Goats, goat); err != nil {
			return err
		}
		goat.UpdatedBy = userID
		goat.UpdatedAt = now
		return repos.Goats.Update(ctx, goat)
	})
	if err != nil {
		return nil, err
	}
	out := dto.FromGoat(goat, now)
	return &out, nil
}

// applyGoatUpdate copia sobre goat los campos presentes en la petición.
func applyGoatUpdate(goat *entity.Goat, in dto.UpdateGoatRequest) error {
	if in.TagNo != nil {
		tag := strings.TrimSpace(*in.TagNo)
		if tag == "" {
			return invalid("tagNo no puede quedar vacío")
		}
		goat.TagNo = tag
	}
	if in.Name != nil {
		goat.Name = strings.TrimSpace(*in.Name)
	}
	if in.Breed != nil {
		if strings.TrimSpace(*in.Breed) == "" {
			return invalid("breed no puede quedar vacío")
		}
		goat.Breed = entity.NormalizeLabel(*in.Breed)
	}
	if in.Gender != nil {
		if !entity.ValidGender(*in.Gender) {
			return invalid("gender debe ser Male o Female")
		}
		goat.Gender = *in.Gender
	}
	if in.DateOfBirth != nil && !in.DateOfBirth.IsZero() {
		goat.DateOfBirth = in.DateOfBirth.Time
	}
	if in.Weight != nil {
		if in.Weight.IsNegative() {
			return invalid("weight no puede ser negativo")
		}
		goat.Weight = in.Weight
	}
	if in.Purpose != nil {
		if !entity.ValidPurpose(*in.Purpose) {
			return invalid("purpose debe ser Breeding, Meat o Sale")
		}
		goat.Purpose = *in.Purpose
	}
	if in.Source != nil {
		if !entity.ValidSource(*in.Source) {
			return invalid("source debe ser Born o Purchased")
		}
		goat.Source = *in.Source
	}
	if in.PurchasePrice != nil {
		goat.PurchasePrice = in.PurchasePrice
	}
	if in.PurchaseDate != nil {
		goat.PurchaseDate = in.PurchaseDate.TimePtr()
	}
	if in.SireID != nil {
		goat.SireID = emptyToNil(in.SireID)
	}
	if in.DamID != nil {
		goat.DamID = emptyToNil(in.DamID)
	}
	if in.Status != nil {
		if !entity.ValidGoatStatus(*in.Status) {
			return invalid("status debe ser Active, Sold, Dead o Culled")
		}
		goat.Status = *in.Status
	}
	if in.Notes != nil {
		goat.Notes = *in.Notes
	}
	return nil
}

// Delete elimina el animal. Si tiene montas, sanidad o ventas asociadas retorna ErrConflict.
func (uc *GoatUseCase) Delete(ctx context.Context, id string) error {
	return uc.repos.Goats.Delete(ctx, id)
}

// AddWeight registra un pesaje y, si es el más reciente, actualiza el peso actual del animal.
func (uc *GoatUseCase) AddWeight(ctx context.Context, userID, goatID string, in dto.CreateWeightRequest) (*dto.WeightRecordResponse, error) {
	if !in.Weight.IsPositive() {
		return nil, invalid("weight debe ser mayor que cero")
	}
	now := uc.now()
	date := in.Date.Time
	if date.IsZero() {
		date = entity.StartOfDay(now)
	}
	rec := &entity.WeightRecord{
		ID:        uuid.New().String(),
		GoatID:    goatID,
		Date:      date,
		Weight:    in.Weight,
		Notes:     in.Notes,
		CreatedBy: userID,
		CreatedAt: now,
	}
	err := uc.txRunner.Run(ctx, func(repos repository.Repos) error {
		goat, err := repos.Goats.GetByIDForUpdate(ctx, goatID)
		if err != nil {
			return err
		}
		if goat == nil {
			return domain.ErrNotFound
		}
		history, err := repos.Weights.ListByGoat(ctx, goatID)
		if err != nil {
			return err
		}
		if err := repos.Weights.Create(ctx, rec); err != nil {
			return err
		}
		if len(history) > 0 && history[0].Date.After(rec.Date) {
			return nil
		}
		w := rec.Weight
		goat.Weight = &w
		goat.UpdatedBy = userID
		goat.UpdatedAt = now
		return repos.Goats.Update(ctx, goat)
	})
	if err != nil {
		return nil, err
	}
	out := dto.FromWeightRecord(rec)
	return &out, nil
}

// ListWeights pesajes del animal, más recientes primero.
func (uc *GoatUseCase) ListWeights(ctx context.Context, goatID string) ([]dto.WeightRecordResponse, error) {
	goat, err := uc.repos.Goats.GetByID(ctx, goatID)
	if err != nil {
		return nil, err
	}
	if goat == nil {
		return nil, domain.ErrNotFound
	}
	recs, err := uc.repos.Weights.ListByGoat(ctx, goatID)
	if err != nil {
		return nil, err
	}
	return dto.FromWeightRecords(recs), nil
}
