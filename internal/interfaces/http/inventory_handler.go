package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/application/inventory"
	"github.com/jhoicas/Tienda-api/internal/domain"
)

// InventoryHandler maneja ajustes de stock y su auditoría.
type InventoryHandler struct {
	uc *inventory.AdjustStockUseCase
}

// NewInventoryHandler construye el handler de inventario.
func NewInventoryHandler(uc *inventory.AdjustStockUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Adjust godoc
// @Summary      Ajustar stock de un producto
// @Description  Aplica un delta con signo. No es idempotente: reenviar la misma petición vuelve a aplicar el delta.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.AdjustStockRequest  true  "product_id y delta"
// @Success      200   {object}  dto.AdjustStockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/adjustments [post]
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Adjust(c.UserContext(), ActorFromCtx(c), in)
	if err != nil {
		var stockErr *domain.StockError
		var notFoundErr *domain.ProductNotFoundError
		switch {
		case errors.As(err, &stockErr):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Code:      "NEGATIVE_STOCK",
				Message:   stockErr.Error(),
				ProductID: stockErr.ProductID,
			})
		case errors.As(err, &notFoundErr):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Code:      "PRODUCT_NOT_FOUND",
				Message:   notFoundErr.Error(),
				ProductID: notFoundErr.ProductID,
			})
		case errors.Is(err, domain.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo un MANAGER puede ajustar inventario"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id requerido y adjustment distinto de cero"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListLogs godoc
// @Summary      Auditoría de ajustes de inventario
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "máx. resultados (def. 20)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {object}  dto.InventoryLogListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/inventory/logs [get]
func (h *InventoryHandler) ListLogs(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros de paginación inválidos"})
	}
	out, err := h.uc.ListLogs(c.UserContext(), ActorFromCtx(c), page)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo CEO o MANAGER pueden ver la auditoría"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
