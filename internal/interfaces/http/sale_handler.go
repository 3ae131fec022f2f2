package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/application/sales"
	"github.com/jhoicas/Tienda-api/internal/domain"
)

// SaleHandler maneja el registro y consulta de ventas.
type SaleHandler struct {
	uc *sales.CreateSaleUseCase
}

// NewSaleHandler construye el handler de ventas.
func NewSaleHandler(uc *sales.CreateSaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar una venta multi-ítem
// @Description  Atómica: valida stock ítem por ítem en orden y descuenta; cualquier fallo revierte todo.
// @Tags         sales
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateSaleRequest  true  "líneas de la venta"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateSale(c.UserContext(), ActorFromCtx(c), in)
	if err != nil {
		var stockErr *domain.StockError
		var notFoundErr *domain.ProductNotFoundError
		switch {
		case errors.As(err, &stockErr):
			code := "INSUFFICIENT_STOCK"
			if errors.Is(err, domain.ErrNegativeStock) {
				code = "NEGATIVE_STOCK"
			}
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Code:      code,
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
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo un EMPLOYEE puede registrar ventas"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "la venta necesita al menos un ítem con cantidad positiva"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Consultar una venta propia
// @Tags         sales
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  dto.SaleResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetSale(c.UserContext(), ActorFromCtx(c), c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
		case errors.Is(err, domain.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "no puedes ver ventas de otros"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// History godoc
// @Summary      Historial de ventas
// @Description  Un EMPLOYEE ve solo las suyas; CEO, MANAGER y HR ven todas.
// @Tags         sales
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "máx. resultados (def. 20)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {object}  dto.SaleListResponse
// @Router       /api/sales [get]
func (h *SaleHandler) History(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros de paginación inválidos"})
	}
	out, err := h.uc.History(c.UserContext(), ActorFromCtx(c), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
