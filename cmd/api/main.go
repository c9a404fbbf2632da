package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/laabuela/areperia-api/internal/application/auth"
	"github.com/laabuela/areperia-api/internal/application/catalog"
	"github.com/laabuela/areperia-api/internal/application/ledger"
	"github.com/laabuela/areperia-api/internal/application/orders"
	"github.com/laabuela/areperia-api/internal/application/reports"
	infraexcel "github.com/laabuela/areperia-api/internal/infrastructure/excel"
	infrapdf "github.com/laabuela/areperia-api/internal/infrastructure/pdf"
	"github.com/laabuela/areperia-api/internal/infrastructure/postgres"
	httpRouter "github.com/laabuela/areperia-api/internal/interfaces/http"
	"github.com/laabuela/areperia-api/pkg/config"
	"github.com/laabuela/areperia-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Esquema + catálogo inicial (idempotente)
	if err := postgres.InitSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("inicializar esquema")
	}

	materialRepo := postgres.NewMaterialRepository(pool)
	productRepo := postgres.NewProductStockRepository(pool)
	stockMovRepo := postgres.NewStockMovementRepository(pool)
	productMovRepo := postgres.NewProductMovementRepository(pool)
	productionRepo := postgres.NewProductionRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	ledgerUC := ledger.New(txRunner, materialRepo, productRepo, productionRepo, saleRepo)
	catalogUC := catalog.New(materialRepo, productRepo, stockMovRepo, productMovRepo, txRunner)
	receiptGen := infrapdf.NewOrderReceiptGenerator(cfg.App.Name)
	ordersUC := orders.New(orderRepo, productRepo, receiptGen, cfg.Orders.MinDeliveryAmount)
	reportsUC := reports.New(reportRepo, infraexcel.NewReportExporter())
	authUC := auth.New(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Arepería API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		LedgerUC:  ledgerUC,
		CatalogUC: catalogUC,
		OrdersUC:  ordersUC,
		ReportsUC: reportsUC,
		AuthUC:    authUC,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("apagando servidor")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
}
