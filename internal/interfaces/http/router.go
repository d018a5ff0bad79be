package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sayandip-ghosh/stock-management/internal/application/auth"
	"github.com/sayandip-ghosh/stock-management/internal/application/build"
	"github.com/sayandip-ghosh/stock-management/internal/application/purchasing"
	"github.com/sayandip-ghosh/stock-management/internal/application/usecase"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC       *auth.UseCase
	PartUC       *usecase.PartUseCase
	RawItemUC    *usecase.RawItemUseCase
	VendorUC     *usecase.VendorUseCase
	AssemblyUC   *usecase.AssemblyUseCase
	StockUC      *usecase.StockUseCase
	AnalyzeUC    *build.AnalyzeUseCase
	BuildUC      *build.BuildUseCase
	PurchasingUC *purchasing.UseCase
	JWTSecret    string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Protected routes (require Bearer token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Parts
	parts := protected.Group("/parts")
	partHandler := NewPartHandler(deps.PartUC, deps.StockUC)
	parts.Post("/", partHandler.Create)
	parts.Get("/", partHandler.List)
	parts.Get("/:id", partHandler.GetByID)
	parts.Put("/:id", partHandler.Update)
	parts.Delete("/:id", partHandler.Delete)
	parts.Post("/:id/adjust", partHandler.Adjust)

	// Raw material
	rawItems := protected.Group("/raw-items")
	rawItemHandler := NewRawItemHandler(deps.RawItemUC)
	rawItems.Post("/", rawItemHandler.Create)
	rawItems.Get("/", rawItemHandler.List)
	rawItems.Get("/:id", rawItemHandler.GetByID)
	rawItems.Put("/:id", rawItemHandler.Update)
	rawItems.Delete("/:id", rawItemHandler.Delete)

	// Vendors
	vendors := protected.Group("/vendors")
	vendorHandler := NewVendorHandler(deps.VendorUC)
	vendors.Post("/", vendorHandler.Create)
	vendors.Get("/", vendorHandler.List)
	vendors.Get("/:id", vendorHandler.GetByID)
	vendors.Put("/:id", vendorHandler.Update)
	vendors.Delete("/:id", vendorHandler.Delete)

	// Assemblies and their BOMs
	assemblies := protected.Group("/assemblies")
	assemblyHandler := NewAssemblyHandler(deps.AssemblyUC, deps.AnalyzeUC)
	assemblies.Post("/", assemblyHandler.Create)
	assemblies.Get("/", assemblyHandler.List)
	assemblies.Get("/:id", assemblyHandler.GetByID)
	assemblies.Put("/:id", assemblyHandler.Update)
	assemblies.Delete("/:id", assemblyHandler.Delete)
	assemblies.Get("/:id/buildability", assemblyHandler.Buildability)

	// Batch builds
	builds := protected.Group("/builds")
	buildHandler := NewBuildHandler(deps.AnalyzeUC, deps.BuildUC)
	builds.Post("/analyze", buildHandler.Analyze)
	builds.Post("/", buildHandler.Execute)

	// Purchase orders
	orders := protected.Group("/purchase-orders")
	orderHandler := NewPurchaseOrderHandler(deps.PurchasingUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Post("/:id/receipts", orderHandler.Receive)
	orders.Post("/:id/cancel", orderHandler.Cancel)
	orders.Get("/:id/document", orderHandler.Document)

	// Scrap and the movement ledger
	stockHandler := NewStockHandler(deps.StockUC)
	scrap := protected.Group("/scrap")
	scrap.Post("/", stockHandler.Scrap)
	scrap.Get("/", stockHandler.ListScrap)
	stock := protected.Group("/stock")
	stock.Get("/movements", stockHandler.ListMovements)
}
