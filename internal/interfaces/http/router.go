package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/laabuela/areperia-api/internal/application/auth"
	"github.com/laabuela/areperia-api/internal/application/catalog"
	"github.com/laabuela/areperia-api/internal/application/ledger"
	"github.com/laabuela/areperia-api/internal/application/orders"
	"github.com/laabuela/areperia-api/internal/application/reports"
	"github.com/laabuela/areperia-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	LedgerUC  *ledger.UseCase
	CatalogUC *catalog.UseCase
	OrdersUC  *orders.UseCase
	ReportsUC *reports.UseCase
	AuthUC    *auth.UseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Catálogo de productos (público: el formulario de pedidos muestra precios)
	catalogHandler := NewMaterialHandler(deps.CatalogUC)
	stockHandler := NewStockHandler(deps.LedgerUC, deps.CatalogUC)
	api.Get("/products", func(c *fiber.Ctx) error {
		list, err := deps.CatalogUC.ListProducts(c.Context())
		if err != nil {
			return fiber.ErrInternalServerError
		}
		return c.JSON(list)
	})

	// Intake público de pedidos, con rate limit para frenar abuso del formulario
	orderHandler := NewOrderHandler(deps.OrdersUC)
	api.Post("/orders", limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Minute,
	}), orderHandler.Place)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Alta de usuarios: solo admin
	protected.Post("/auth/register", RequireRole(entity.RoleAdmin), authHandler.Register)

	// Materias primas
	materials := protected.Group("/materials")
	materials.Post("/", catalogHandler.Create)
	materials.Get("/", catalogHandler.List)
	materials.Put("/:id", catalogHandler.Update)
	materials.Delete("/:id", RequireRole(entity.RoleAdmin), catalogHandler.Delete)
	materials.Post("/:id/receive", stockHandler.ReceiveMaterial)
	materials.Post("/:id/adjust", stockHandler.AdjustMaterial)
	materials.Get("/:id/movements", stockHandler.MaterialMovements)

	// Stock y productos
	protected.Get("/stock", stockHandler.Overview)
	products := protected.Group("/products")
	products.Post("/:type/receive", stockHandler.ReceiveProduct)
	products.Post("/:type/adjust", stockHandler.AdjustProduct)
	products.Put("/:type/price", stockHandler.UpdateProductPrice)

	// Producción
	production := protected.Group("/production")
	productionHandler := NewProductionHandler(deps.LedgerUC)
	production.Post("/", productionHandler.Record)
	production.Get("/", productionHandler.List)
	production.Delete("/:id", productionHandler.Delete)

	// Ventas
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.LedgerUC)
	sales.Post("/", saleHandler.Record)
	sales.Get("/", saleHandler.List)
	sales.Delete("/:id", saleHandler.Delete)

	// Pedidos (gestión admin)
	ordersGroup := protected.Group("/orders")
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Put("/:id/status", orderHandler.UpdateStatus)
	ordersGroup.Delete("/:id", RequireRole(entity.RoleAdmin), orderHandler.Delete)
	ordersGroup.Get("/:id/receipt", orderHandler.Receipt)

	// Reportes
	reportsGroup := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportsUC)
	reportsGroup.Get("/", reportHandler.Period)
	reportsGroup.Get("/dashboard", reportHandler.Dashboard)
	reportsGroup.Get("/export", reportHandler.Export)
}
