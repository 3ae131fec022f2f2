package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/application/shifts"
	"github.com/jhoicas/Tienda-api/internal/domain"
)

// ShiftHandler maneja el marcado de jornada de los empleados.
type ShiftHandler struct {
	uc *shifts.ShiftUseCase
}

// NewShiftHandler construye el handler de jornadas.
func NewShiftHandler(uc *shifts.ShiftUseCase) *ShiftHandler {
	return &ShiftHandler{uc: uc}
}

// CheckIn godoc
// @Summary      Marcar entrada del día
// @Description  El primer check-in del día gana; los siguientes no cambian la marca.
// @Tags         shifts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ShiftResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/shifts/check-in [post]
func (h *ShiftHandler) CheckIn(c *fiber.Ctx) error {
	out, err := h.uc.CheckIn(c.UserContext(), ActorFromCtx(c))
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo un EMPLOYEE marca jornada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// CheckOut godoc
// @Summary      Marcar salida del día
// @Description  Si no hay jornada abierta ese día la operación no hace nada y responde 204.
// @Tags         shifts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ShiftResponse
// @Success      204  "sin jornada para hoy; no-op"
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/shifts/check-out [post]
func (h *ShiftHandler) CheckOut(c *fiber.Ctx) error {
	out, err := h.uc.CheckOut(c.UserContext(), ActorFromCtx(c))
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo un EMPLOYEE marca jornada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		// No-op silencioso: no existía fila de jornada para hoy.
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar jornadas registradas
// @Tags         shifts
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "máx. resultados (def. 20)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {object}  dto.ShiftListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/shifts [get]
func (h *ShiftHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros de paginación inválidos"})
	}
	out, err := h.uc.ListShifts(c.UserContext(), ActorFromCtx(c), page)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo HR o CEO pueden listar jornadas"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
