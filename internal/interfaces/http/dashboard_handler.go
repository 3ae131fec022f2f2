package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tienda-api/internal/application/analytics"
	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain"
)

// DashboardHandler expone el resumen agregado del CEO.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler del dashboard.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Dashboard del CEO
// @Description  Ingresos totales, número de ventas, stock bajo, ventas por empleado y ajustes por manager. Siempre calculado sobre datos actuales.
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.UserContext(), ActorFromCtx(c))
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo el CEO puede ver el dashboard"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
