package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tienda-api/internal/application/analytics"
	"github.com/jhoicas/Tienda-api/internal/application/auth"
	"github.com/jhoicas/Tienda-api/internal/application/hr"
	"github.com/jhoicas/Tienda-api/internal/application/inventory"
	"github.com/jhoicas/Tienda-api/internal/application/sales"
	"github.com/jhoicas/Tienda-api/internal/application/shifts"
	"github.com/jhoicas/Tienda-api/internal/application/usecase"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProductUC   *usecase.ProductUseCase
	SaleUC      *sales.CreateSaleUseCase
	InventoryUC *inventory.AdjustStockUseCase
	ShiftUC     *shifts.ShiftUseCase
	HRUC        *hr.HRUseCase
	DashboardUC *analytics.DashboardUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
//
// RequireRole corta temprano las rutas con un rol único claro; las reglas que
// dependen del recurso (p. ej. un EMPLOYEE solo ve sus propias ventas) las
// decide el caso de uso con el Actor.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/me", authHandler.Me)

	// Catálogo (lectura para todos; escritura la valida el caso de uso: CEO o MANAGER)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)

	// Ventas
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	salesGroup.Post("/", RequireRole(entity.RoleEmployee), saleHandler.Create)
	salesGroup.Get("/", saleHandler.History)
	salesGroup.Get("/:id", saleHandler.GetByID)

	// Inventario (ajustes y auditoría)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	invGroup.Post("/adjustments", RequireRole(entity.RoleManager), inventoryHandler.Adjust)
	invGroup.Get("/logs", RequireRole(entity.RoleCEO, entity.RoleManager), inventoryHandler.ListLogs)

	// Jornadas
	shiftsGroup := protected.Group("/shifts")
	shiftHandler := NewShiftHandler(deps.ShiftUC)
	shiftsGroup.Post("/check-in", RequireRole(entity.RoleEmployee), shiftHandler.CheckIn)
	shiftsGroup.Post("/check-out", RequireRole(entity.RoleEmployee), shiftHandler.CheckOut)
	shiftsGroup.Get("/", RequireRole(entity.RoleHR, entity.RoleCEO), shiftHandler.List)

	// HR
	hrGroup := protected.Group("/hr", RequireRole(entity.RoleHR))
	hrHandler := NewHRHandler(deps.HRUC)
	hrGroup.Get("/employees", hrHandler.ListEmployees)
	hrGroup.Put("/employees/:id/salary", hrHandler.UpdateSalary)
	hrGroup.Put("/employees/:id/shift-window", hrHandler.UpdateShiftWindow)

	// Dashboard del CEO
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", RequireRole(entity.RoleCEO), dashboardHandler.Summary)
}
