package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Granja-api/internal/application/dto"
	"github.com/jhoicas/Granja-api/internal/application/usecase"
)

// GoatHandler maneja el hato y los pesajes (protegido).
type GoatHandler struct {
	uc *usecase.GoatUseCase
}

// NewGoatHandler construye el handler.
func NewGoatHandler(uc *usecase.GoatUseCase) *GoatHandler {
	return &GoatHandler{uc: uc}
}

// List godoc
// @Summary      Listar animales
// @Tags         goats
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Active | Sold | Dead | Culled"
// @Param        breed   query  string  false  "Raza"
// @Param        gender  query  string  false  "Male | Female"
// @Success      200     {array}   dto.GoatResponse
// @Router       /api/goats [get]
func (h *GoatHandler) List(c *fiber.Ctx) error {
	var in dto.GoatFilterRequest
	if err := c.QueryParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.List(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar animal
// @Tags         goats
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateGoatRequest  true  "Datos del animal"
// @Success      201   {object}  dto.GoatResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/goats [post]
func (h *GoatHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateGoatRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Ficha del animal (padres, crías, sanidad, pesajes, reproducción)
// @Tags         goats
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del animal"
// @Success      200  {object}  dto.GoatDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/goats/{id} [get]
func (h *GoatHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar animal (parcial)
// @Tags         goats
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID del animal"
// @Param        body  body  dto.UpdateGoatRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.GoatResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/goats/{id} [put]
func (h *GoatHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateGoatRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar animal (ADMIN o MANAGER)
// @Tags         goats
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del animal"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/goats/{id} [delete]
func (h *GoatHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "animal eliminado"})
}

// ListWeights godoc
// @Summary      Pesajes del animal
// @Tags         goats
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del animal"
// @Success      200  {array}   dto.WeightRecordResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/goats/{id}/weights [get]
func (h *GoatHandler) ListWeights(c *fiber.Ctx) error {
	out, err := h.uc.ListWeights(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// AddWeight godoc
// @Summary      Registrar pesaje
// @Tags         goats
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID del animal"
// @Param        body  body  dto.CreateWeightRequest  true  "Pesaje"
// @Success      201   {object}  dto.WeightRecordResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/goats/{id}/weights [post]
func (h *GoatHandler) AddWeight(c *fiber.Ctx) error {
	var in dto.CreateWeightRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.AddWeight(c.UserContext(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
