package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Granja-api/internal/application/analytics"
)

// DashboardHandler tablero de la granja.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Get devuelve estadísticas del hato, partos próximos (30 días), sanidad pendiente (7 días),
// finanzas del mes en curso e insumos bajo mínimo. Se recalcula en cada petición.
// GET /api/dashboard
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetDashboard(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
