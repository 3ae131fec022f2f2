package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/application/hr"
	"github.com/jhoicas/Tienda-api/internal/domain"
)

// HRHandler maneja la gestión de personal (salarios y ventanas de turno).
type HRHandler struct {
	uc *hr.HRUseCase
}

// NewHRHandler construye el handler de HR.
func NewHRHandler(uc *hr.HRUseCase) *HRHandler {
	return &HRHandler{uc: uc}
}

// ListEmployees godoc
// @Summary      Listar personal
// @Description  Todos los usuarios excepto el CEO.
// @Tags         hr
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "máx. resultados (def. 20)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {object}  dto.EmployeeListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/hr/employees [get]
func (h *HRHandler) ListEmployees(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros de paginación inválidos"})
	}
	out, err := h.uc.ListEmployees(c.UserContext(), ActorFromCtx(c), page)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo HR gestiona el personal"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// UpdateSalary godoc
// @Summary      Actualizar salario de un empleado
// @Tags         hr
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "ID del usuario"
// @Param        body  body  dto.UpdateSalaryRequest  true  "nuevo salario"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/hr/employees/{id}/salary [put]
func (h *HRHandler) UpdateSalary(c *fiber.Ctx) error {
	var in dto.UpdateSalaryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateSalary(c.UserContext(), ActorFromCtx(c), c.Params("id"), in.Salary)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo HR modifica salarios y no los del CEO"})
		case errors.Is(err, domain.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "usuario no encontrado"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el salario no puede ser negativo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// UpdateShiftWindow godoc
// @Summary      Actualizar ventana de turno de un empleado
// @Tags         hr
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "ID del usuario"
// @Param        body  body  dto.UpdateShiftWindowRequest  true  "horas HH:MM"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/hr/employees/{id}/shift-window [put]
func (h *HRHandler) UpdateShiftWindow(c *fiber.Ctx) error {
	var in dto.UpdateShiftWindowRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateShiftWindow(c.UserContext(), ActorFromCtx(c), c.Params("id"), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo HR modifica ventanas de turno y no las del CEO"})
		case errors.Is(err, domain.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "usuario no encontrado"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "horas en formato HH:MM y fin posterior al inicio"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
