package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Granja-api/internal/application/dto"
	"github.com/jhoicas/Granja-api/internal/application/registrar"
	"github.com/jhoicas/Granja-api/internal/application/usecase"
)

// RecordHandler registros transaccionales: reproducción, sanidad, gastos y ventas (protegido).
// Las altas pasan por el Registrar, que asigna el número de referencia.
type RecordHandler struct {
	reg     *registrar.Registrar
	records *usecase.RecordUseCase
}

// NewRecordHandler construye el handler.
func NewRecordHandler(reg *registrar.Registrar, records *usecase.RecordUseCase) *RecordHandler {
	return &RecordHandler{reg: reg, records: records}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func createRecord[In, Out any](c *fiber.Ctx, create func(context.Context, string, In) (Out, error)) error {
	var in In
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func listRecords[Out any](c *fiber.Ctx, list func(context.Context, dto.RecordFilterRequest) (Out, error)) error {
	var in dto.RecordFilterRequest
	if err := c.QueryParser(&in); err != nil {
		return badBody(c)
	}
	out, err := list(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func getRecord[Out any](c *fiber.Ctx, get func(context.Context, string) (Out, error)) error {
	out, err := get(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ── Reproducción ──────────────────────────────────────────────────────────────

// ListBreeding godoc
// @Summary      Listar registros de reproducción
// @Tags         breeding
// @Security     Bearer
// @Produce      json
// @Param        goatId  query  string  false  "Macho o hembra"
// @Success      200     {array}   dto.BreedingRecordResponse
// @Router       /api/breeding [get]
func (h *RecordHandler) ListBreeding(c *fiber.Ctx) error {
	return listRecords(c, h.records.ListBreeding)
}

// CreateBreeding godoc
// @Summary      Registrar monta (asigna BR-AAAA-NNNN)
// @Tags         breeding
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBreedingRequest  true  "Monta"
// @Success      201   {object}  dto.BreedingRecordResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/breeding [post]
func (h *RecordHandler) CreateBreeding(c *fiber.Ctx) error {
	return createRecord(c, h.reg.CreateBreeding)
}

// GetBreeding godoc
// @Summary      Obtener registro de reproducción
// @Tags         breeding
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID"
// @Success      200  {object}  dto.BreedingRecordResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/breeding/{id} [get]
func (h *RecordHandler) GetBreeding(c *fiber.Ctx) error {
	return getRecord(c, h.records.GetBreeding)
}

// ── Sanidad ───────────────────────────────────────────────────────────────────

// ListHealth godoc
// @Summary      Listar registros sanitarios
// @Tags         health
// @Security     Bearer
// @Produce      json
// @Param        goatId      query  string  false  "Animal"
// @Param        recordType  query  string  false  "Vaccination | Deworming | Treatment | Checkup"
// @Success      200         {array}   dto.HealthRecordResponse
// @Router       /api/health [get]
func (h *RecordHandler) ListHealth(c *fiber.Ctx) error {
	return listRecords(c, h.records.ListHealth)
}

// CreateHealth godoc
// @Summary      Registrar tratamiento (asigna HR-AAAA-NNNN)
// @Tags         health
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateHealthRequest  true  "Registro sanitario"
// @Success      201   {object}  dto.HealthRecordResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/health [post]
func (h *RecordHandler) CreateHealth(c *fiber.Ctx) error {
	return createRecord(c, h.reg.CreateHealth)
}

// GetHealth godoc
// @Summary      Obtener registro sanitario
// @Tags         health
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID"
// @Success      200  {object}  dto.HealthRecordResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/health/{id} [get]
func (h *RecordHandler) GetHealth(c *fiber.Ctx) error {
	return getRecord(c, h.records.GetHealth)
}

// ── Gastos ────────────────────────────────────────────────────────────────────

// ListExpenses godoc
// @Summary      Listar gastos
// @Tags         expenses
// @Security     Bearer
// @Produce      json
// @Param        category   query  string  false  "Categoría"
// @Param        startDate  query  string  false  "YYYY-MM-DD"
// @Param        endDate    query  string  false  "YYYY-MM-DD"
// @Success      200        {array}   dto.ExpenseResponse
// @Failure      400        {object}  dto.ErrorResponse
// @Router       /api/expenses [get]
func (h *RecordHandler) ListExpenses(c *fiber.Ctx) error {
	return listRecords(c, h.records.ListExpenses)
}

// CreateExpense godoc
// @Summary      Registrar gasto (asigna EXP-AAAA-NNNN)
// @Tags         expenses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateExpenseRequest  true  "Gasto"
// @Success      201   {object}  dto.ExpenseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/expenses [post]
func (h *RecordHandler) CreateExpense(c *fiber.Ctx) error {
	return createRecord(c, h.reg.CreateExpense)
}

// GetExpense godoc
// @Summary      Obtener gasto
// @Tags         expenses
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID"
// @Success      200  {object}  dto.ExpenseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/expenses/{id} [get]
func (h *RecordHandler) GetExpense(c *fiber.Ctx) error {
	return getRecord(c, h.records.GetExpense)
}

// ── Ventas ────────────────────────────────────────────────────────────────────

// ListSales godoc
// @Summary      Listar ventas
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        goatId     query  string  false  "Animal"
// @Param        startDate  query  string  false  "YYYY-MM-DD"
// @Param        endDate    query  string  false  "YYYY-MM-DD"
// @Success      200        {array}   dto.SaleResponse
// @Failure      400        {object}  dto.ErrorResponse
// @Router       /api/sales [get]
func (h *RecordHandler) ListSales(c *fiber.Ctx) error {
	return listRecords(c, h.records.ListSales)
}

// CreateSale godoc
// @Summary      Registrar venta (asigna SR-AAAA-NNNN y marca el animal como Sold)
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "Venta"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *RecordHandler) CreateSale(c *fiber.Ctx) error {
	return createRecord(c, h.reg.CreateSale)
}

// GetSale godoc
// @Summary      Obtener venta
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *RecordHandler) GetSale(c *fiber.Ctx) error {
	return getRecord(c, h.records.GetSale)
}
