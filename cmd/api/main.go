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

	"github.com/sayandip-ghosh/stock-management/internal/application/auth"
	"github.com/sayandip-ghosh/stock-management/internal/application/build"
	"github.com/sayandip-ghosh/stock-management/internal/application/purchasing"
	"github.com/sayandip-ghosh/stock-management/internal/application/usecase"
	infrapdf "github.com/sayandip-ghosh/stock-management/internal/infrastructure/pdf"
	"github.com/sayandip-ghosh/stock-management/internal/infrastructure/postgres"
	httpRouter "github.com/sayandip-ghosh/stock-management/internal/interfaces/http"
	"github.com/sayandip-ghosh/stock-management/pkg/config"
	"github.com/sayandip-ghosh/stock-management/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	partRepo := postgres.NewPartRepository(pool)
	rawItemRepo := postgres.NewRawItemRepository(pool)
	vendorRepo := postgres.NewVendorRepository(pool)
	assemblyRepo := postgres.NewAssemblyRepository(pool)
	orderRepo := postgres.NewPurchaseOrderRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	scrapRepo := postgres.NewScrapRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	partUC := usecase.NewPartUseCase(partRepo)
	rawItemUC := usecase.NewRawItemUseCase(rawItemRepo)
	vendorUC := usecase.NewVendorUseCase(vendorRepo)
	assemblyUC := usecase.NewAssemblyUseCase(assemblyRepo, partRepo)
	stockUC := usecase.NewStockUseCase(txRunner, movementRepo, scrapRepo)
	analyzeUC := build.NewAnalyzeUseCase(partRepo, assemblyRepo, log)
	buildUC := build.NewBuildUseCase(txRunner, log)

	// PDF: printable purchase order for sending to vendors
	docGen := infrapdf.NewMarotoGenerator()
	purchasingUC := purchasing.NewUseCase(
		txRunner, orderRepo, vendorRepo, partRepo, rawItemRepo, docGen, log,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI in local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Stock Management API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		PartUC:       partUC,
		RawItemUC:    rawItemUC,
		VendorUC:     vendorUC,
		AssemblyUC:   assemblyUC,
		StockUC:      stockUC,
		AnalyzeUC:    analyzeUC,
		BuildUC:      buildUC,
		PurchasingUC: purchasingUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
