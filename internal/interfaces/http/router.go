package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invorya/almacen-api/internal/application/auth"
	"github.com/invorya/almacen-api/internal/application/inventory"
	"github.com/invorya/almacen-api/internal/application/report"
	"github.com/invorya/almacen-api/internal/application/usecase"
	"github.com/invorya/almacen-api/internal/domain/entity"
)

// RouterDeps dependencias que necesita el router para montar las rutas.
type RouterDeps struct {
	ItemUC      *inventory.ItemUseCase
	LedgerUC    *inventory.LedgerUseCase
	ReportUC    *report.MovementReportUseCase
	WarehouseUC *usecase.WarehouseUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra todas las rutas de la API bajo /api.
// Auth es público; el resto exige token. Editar/borrar artículos y leer el
// libro de movimientos exigen además rol admin.
func Router(app *fiber.App, deps RouterDeps) {
	itemHandler := NewItemHandler(deps.ItemUC)
	movementHandler := NewMovementHandler(deps.LedgerUC, deps.ReportUC)
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	authHandler := NewAuthHandler(deps.AuthUC)

	api := app.Group("/api")

	// Rutas públicas
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas
	protected := api.Group("", AuthMiddleware(deps.JWTSecret))

	adminOnly := RequireRole(entity.RoleAdmin)

	items := protected.Group("/items")
	items.Get("/", itemHandler.List)
	items.Post("/", itemHandler.Create)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", adminOnly, itemHandler.Update)
	items.Delete("/:id", adminOnly, itemHandler.Delete)

	movements := protected.Group("/stock-movements", adminOnly)
	movements.Get("/", movementHandler.List)
	movements.Get("/report", movementHandler.ReportPDF)

	warehouses := protected.Group("/warehouses")
	warehouses.Get("/", warehouseHandler.List)
}
