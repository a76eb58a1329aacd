package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Granja-api/internal/application/report"
	"github.com/jhoicas/Granja-api/internal/domain/entity"
)

// ReportHandler reportes descargables.
type ReportHandler struct {
	herd *report.HerdUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(herd *report.HerdUseCase) *ReportHandler {
	return &ReportHandler{herd: herd}
}

// Herd godoc
// @Summary      Listado maestro del hato en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        status  query  string  false  "Active | Sold | Dead | Culled"
// @Param        breed   query  string  false  "Raza"
// @Param        gender  query  string  false  "Male | Female"
// @Success      200
// @Router       /api/reports/herd [get]
func (h *ReportHandler) Herd(c *fiber.Ctx) error {
	filter := entity.GoatFilter{
		Status: c.Query("status"),
		Breed:  c.Query("breed"),
		Gender: c.Query("gender"),
	}
	pdf, filename, err := h.herd.HerdPDF(c.UserContext(), filter)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdf)
}
