package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Granja-api/internal/application/dto"
	"github.com/jhoicas/Granja-api/internal/application/registrar"
	"github.com/jhoicas/Granja-api/internal/application/usecase"
	"github.com/jhoicas/Granja-api/internal/domain"
	"github.com/jhoicas/Granja-api/internal/domain/entity"
	"github.com/jhoicas/Granja-api/internal/domain/repository"
	"github.com/jhoicas/Granja-api/internal/infrastructure/memory"
)

const userID = "00000000-0000-0000-0000-000000000001"

type fixture struct {
	store     *memory.Store
	goats     *usecase.GoatUseCase
	records   *usecase.RecordUseCase
	inventory *usecase.InventoryUseCase
	reg       *registrar.Registrar
}

func newFixture() fixture {
	store := memory.NewStore()
	tx := memory.NewTxRunner(store)
	return fixture{
		store:     store,
		goats:     usecase.NewGoatUseCase(store.Repos(), tx),
		records:   usecase.NewRecordUseCase(store.Repos()),
		inventory: usecase.NewInventoryUseCase(store.Repos().Inventory),
		reg:       registrar.NewRegistrar(tx, nil),
	}
}

func dob() dto.Date { return dto.NewDate(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)) }

func (f fixture) createGoat(t *testing.T, tag, gender string) *dto.GoatResponse {
	t.Helper()
	out, err := f.goats.Create(context.Background(), userID, dto.CreateGoatRequest{
		TagNo: tag, Name: "Animal " + tag, Breed: "boer", Gender: gender, DateOfBirth: dob(),
	})
	require.NoError(t, err)
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Hato
// ─────────────────────────────────────────────────────────────────────────────

func TestGoatUseCase_CreateValoresPorDefecto(t *testing.T) {
	f := newFixture()
	g := f.createGoat(t, "G-001", entity.GenderFemale)

	assert.Equal(t, "Boer", g.Breed)
	assert.Equal(t, entity.GoatStatusActive, g.Status)
	assert.Equal(t, entity.PurposeBreeding, g.Purpose)
	assert.Equal(t, entity.SourceBorn, g.Source)
	assert.Equal(t, userID, g.CreatedBy)
}

func TestGoatUseCase_AreteDuplicado(t *testing.T) {
	f := newFixture()
	f.createGoat(t, "G-001", entity.GenderFemale)

	_, err := f.goats.Create(context.Background(), userID, dto.CreateGoatRequest{
		TagNo: "G-001", Breed: "Boer", Gender: entity.GenderMale, DateOfBirth: dob(),
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestGoatUseCase_CreateInvalido(t *testing.T) {
	f := newFixture()
	cases := []dto.CreateGoatRequest{
		{Breed: "Boer", Gender: entity.GenderMale, DateOfBirth: dob()},
		{TagNo: "X", Breed: "Boer", Gender: "Otro", DateOfBirth: dob()},
		{TagNo: "X", Breed: "Boer", Gender: entity.GenderMale},
		{TagNo: "X", Breed: "Boer", Gender: entity.GenderMale, DateOfBirth: dob(), Status: "Lost"},
	}
	for _, in := range cases {
		_, err := f.goats.Create(context.Background(), userID, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestGoatUseCase_PadresValidados(t *testing.T) {
	f := newFixture()
	dam := f.createGoat(t, "F-1", entity.GenderFemale)

	_, err := f.goats.Create(context.Background(), userID, dto.CreateGoatRequest{
		TagNo: "K-1", Breed: "Boer", Gender: entity.GenderMale, DateOfBirth: dob(), SireID: &dam.ID,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "una hembra no puede ser padre")

	kid, err := f.goats.Create(context.Background(), userID, dto.CreateGoatRequest{
		TagNo: "K-1", Breed: "Boer", Gender: entity.GenderMale, DateOfBirth: dob(), DamID: &dam.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, dam.ID, *kid.DamID)
}

func TestGoatUseCase_FichaCompleta(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	sire := f.createGoat(t, "M-1", entity.GenderMale)
	dam := f.createGoat(t, "F-1", entity.GenderFemale)
	kid, err := f.goats.Create(ctx, userID, dto.CreateGoatRequest{
		TagNo: "K-1", Breed: "Boer", Gender: entity.GenderFemale, DateOfBirth: dob(), SireID: &sire.ID, DamID: &dam.ID,
	})
	require.NoError(t, err)

	_, err = f.reg.CreateBreeding(ctx, userID, dto.CreateBreedingRequest{MaleGoatID: sire.ID, FemaleGoatID: dam.ID, BreedingDate: dto.NewDate(time.Now())})
	require.NoError(t, err)
	_, err = f.reg.CreateHealth(ctx, userID, dto.CreateHealthRequest{GoatID: dam.ID, Date: dto.NewDate(time.Now()), RecordType: entity.HealthVaccination})
	require.NoError(t, err)

	detail, err := f.goats.GetByID(ctx, dam.ID)
	require.NoError(t, err)
	require.Len(t, detail.Offspring, 1)
	assert.Equal(t, kid.ID, detail.Offspring[0].ID)
	assert.Len(t, detail.HealthRecords, 1)
	assert.Len(t, detail.BreedingAsFemale, 1)
	assert.Empty(t, detail.BreedingAsMale)

	kidDetail, err := f.goats.GetByID(ctx, kid.ID)
	require.NoError(t, err)
	require.NotNil(t, kidDetail.Sire)
	assert.Equal(t, "M-1", kidDetail.Sire.TagNo)
	require.NotNil(t, kidDetail.Dam)
	assert.Equal(t, "F-1", kidDetail.Dam.TagNo)

	_, err = f.goats.GetByID(ctx, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGoatUseCase_UpdateParcialYFiltros(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	g := f.createGoat(t, "G-1", entity.GenderFemale)
	f.createGoat(t, "G-2", entity.GenderMale)

	culled := entity.GoatStatusCulled
	out, err := f.goats.Update(ctx, userID, g.ID, dto.UpdateGoatRequest{Status: &culled})
	require.NoError(t, err)
	assert.Equal(t, culled, out.Status)
	assert.Equal(t, "G-1", out.TagNo, "los campos ausentes no cambian")

	active, err := f.goats.List(ctx, dto.GoatFilterRequest{Status: entity.GoatStatusActive})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "G-2", active[0].TagNo)

	byBreed, err := f.goats.List(ctx, dto.GoatFilterRequest{Breed: "BOER"})
	require.NoError(t, err)
	assert.Len(t, byBreed, 2)
}

// interleavedGoats dispara onRead una sola vez, después de leer el animal y antes de
// que el llamador escriba.
type interleavedGoats struct {
	repository.GoatRepository
	once   *sync.Once
	onRead func()
}

func (g interleavedGoats) GetByID(ctx context.Context, id string) (*entity.Goat, error) {
	goat, err := g.GoatRepository.GetByID(ctx, id)
	g.once.Do(g.onRead)
	return goat, err
}

func (g interleavedGoats) GetByIDForUpdate(ctx context.Context, id string) (*entity.Goat, error) {
	goat, err := g.GoatRepository.GetByIDForUpdate(ctx, id)
	g.once.Do(g.onRead)
	return goat, err
}

// interleavedTx envuelve el repositorio de animales de cada transacción.
type interleavedTx struct {
	inner *memory.TxRunner
	wrap  func(repository.GoatRepository) repository.GoatRepository
}

func (tx interleavedTx) Run(ctx context.Context, fn func(repos repository.Repos) error) error {
	return tx.inner.Run(ctx, func(repos repository.Repos) error {
		repos.Goats = tx.wrap(repos.Goats)
		return fn(repos)
	})
}

// Una venta que llega entre la lectura y la escritura de una edición no puede
// quedar revertida a Active por la edición.
func TestGoatUseCase_UpdateNoPisaVentaConcurrente(t *testing.T) {
	store := memory.NewStore()
	tx := memory.NewTxRunner(store)
	reg := registrar.NewRegistrar(tx, nil)
	ctx := context.Background()

	base := usecase.NewGoatUseCase(store.Repos(), tx)
	g, err := base.Create(ctx, userID, dto.CreateGoatRequest{TagNo: "G-1", Breed: "Boer", Gender: entity.GenderFemale, DateOfBirth: dob()})
	require.NoError(t, err)

	saleDone := make(chan error, 1)
	once := &sync.Once{}
	// La venta corre en otra goroutine; si la edición tiene el animal bloqueado la
	// venta espera y la edición sigue tras un margen corto.
	sell := func() {
		go func() {
			_, err := reg.CreateSale(ctx, userID, dto.CreateSaleRequest{GoatID: g.ID, SaleDate: dto.NewDate(time.Now()), BuyerName: "Comprador", SalePrice: decimal.NewFromInt(400)})
			saleDone <- err
		}()
		select {
		case err := <-saleDone:
			saleDone <- err
		case <-time.After(200 * time.Millisecond):
		}
	}
	wrap := func(r repository.GoatRepository) repository.GoatRepository {
		return interleavedGoats{GoatRepository: r, once: once, onRead: sell}
	}
	repos := store.Repos()
	repos.Goats = wrap(repos.Goats)
	uc := usecase.NewGoatUseCase(repos, interleavedTx{inner: tx, wrap: wrap})

	name := "Nuevo nombre"
	_, err = uc.Update(ctx, userID, g.ID, dto.UpdateGoatRequest{Name: &name})
	require.NoError(t, err)
	require.NoError(t, <-saleDone)

	got, err := base.GetByID(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.GoatStatusSold, got.Status)
	assert.Equal(t, "Nuevo nombre", got.Name)
}

func TestGoatUseCase_DeleteBloqueadoPorVenta(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	g := f.createGoat(t, "G-1", entity.GenderMale)
	libre := f.createGoat(t, "G-2", entity.GenderMale)

	_, err := f.reg.CreateSale(ctx, userID, dto.CreateSaleRequest{GoatID: g.ID, SaleDate: dto.NewDate(time.Now()), BuyerName: "B", SalePrice: decimal.NewFromInt(300)})
	require.NoError(t, err)

	assert.ErrorIs(t, f.goats.Delete(ctx, g.ID), domain.ErrConflict)
	assert.NoError(t, f.goats.Delete(ctx, libre.ID))
	assert.ErrorIs(t, f.goats.Delete(ctx, libre.ID), domain.ErrNotFound)
}

func TestGoatUseCase_PesajesActualizanPesoActual(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	g := f.createGoat(t, "G-1", entity.GenderFemale)
	d := func(day int) dto.Date { return dto.NewDate(time.Date(2026, 2, day, 0, 0, 0, 0, time.UTC)) }

	_, err := f.goats.AddWeight(ctx, userID, g.ID, dto.CreateWeightRequest{Date: d(10), Weight: decimal.NewFromInt(30)})
	require.NoError(t, err)
	_, err = f.goats.AddWeight(ctx, userID, g.ID, dto.CreateWeightRequest{Date: d(1), Weight: decimal.NewFromInt(28)})
	require.NoError(t, err)

	detail, err := f.goats.GetByID(ctx, g.ID)
	require.NoError(t, err)
	require.NotNil(t, detail.Weight)
	assert.True(t, decimal.NewFromInt(30).Equal(*detail.Weight), "un pesaje antiguo no reemplaza el peso actual")

	weights, err := f.goats.ListWeights(ctx, g.ID)
	require.NoError(t, err)
	require.Len(t, weights, 2)
	assert.Equal(t, 10, weights[0].Date.Day())

	_, err = f.goats.AddWeight(ctx, userID, "no-existe", dto.CreateWeightRequest{Weight: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.goats.AddWeight(ctx, userID, g.ID, dto.CreateWeightRequest{Weight: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ─────────────────────────────────────────────────────────────────────────────
// Registros e insumos
// ─────────────────────────────────────────────────────────────────────────────

func TestRecordUseCase_FiltrosDeGastos(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	for _, e := range []struct {
		day      int
		category string
	}{{1, "feed"}, {15, "Vet"}, {28, "FEED"}} {
		_, err := f.reg.CreateExpense(ctx, userID, dto.CreateExpenseRequest{
			Date: dto.NewDate(time.Date(2026, 2, e.day, 0, 0, 0, 0, time.UTC)), Category: e.category, Amount: decimal.NewFromInt(10),
		})
		require.NoError(t, err)
	}

	feed, err := f.records.ListExpenses(ctx, dto.RecordFilterRequest{Category: "feed"})
	require.NoError(t, err)
	assert.Len(t, feed, 2)

	mid, err := f.records.ListExpenses(ctx, dto.RecordFilterRequest{StartDate: "2026-02-10", EndDate: "2026-02-28"})
	require.NoError(t, err)
	assert.Len(t, mid, 2)

	_, err = f.records.ListExpenses(ctx, dto.RecordFilterRequest{StartDate: "ayer"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = f.records.ListExpenses(ctx, dto.RecordFilterRequest{StartDate: "2026-03-01", EndDate: "2026-02-01"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRecordUseCase_GetInexistente(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	_, err := f.records.GetSale(ctx, "x")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.records.GetBreeding(ctx, "x")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.records.GetHealth(ctx, "x")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.records.GetExpense(ctx, "x")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInventoryUseCase_UpdateReabastece(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	item, err := f.reg.CreateInventoryItem(ctx, userID, dto.CreateInventoryRequest{
		ItemName: "Sal mineral", Category: "feed", Unit: "kg", Quantity: decimal.NewFromInt(5), MinStock: decimal.NewFromInt(10),
	})
	require.NoError(t, err)
	assert.True(t, item.LowStock)

	low, err := f.inventory.List(ctx, dto.InventoryFilterRequest{LowStock: true})
	require.NoError(t, err)
	assert.Len(t, low, 1)

	qty := decimal.NewFromInt(40)
	out, err := f.inventory.Update(ctx, item.ID, dto.UpdateInventoryRequest{Quantity: &qty})
	require.NoError(t, err)
	assert.False(t, out.LowStock)
	assert.NotNil(t, out.LastRestocked)

	low, err = f.inventory.List(ctx, dto.InventoryFilterRequest{LowStock: true})
	require.NoError(t, err)
	assert.Empty(t, low)

	neg := decimal.NewFromInt(-1)
	_, err = f.inventory.Update(ctx, item.ID, dto.UpdateInventoryRequest{MinStock: &neg})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
