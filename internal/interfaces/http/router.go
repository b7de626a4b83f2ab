package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lagotita/inventario-api/internal/application/auth"
	"github.com/lagotita/inventario-api/internal/application/ledger"
	"github.com/lagotita/inventario-api/internal/application/report"
	"github.com/lagotita/inventario-api/internal/application/usecase"
	"github.com/lagotita/inventario-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	ProductUC *usecase.ProductUseCase
	UserUC    *usecase.UserUseCase
	LedgerUC  *ledger.MovementLedger
	ReportUC  *report.PDFUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)

	// Kardex por producto (protegido)
	ledgerHandler := NewLedgerHandler(deps.LedgerUC)
	products.Post("/:id/entries", ledgerHandler.RegisterEntry)
	products.Post("/:id/exits", ledgerHandler.RegisterExit)
	products.Get("/:id/movements", ledgerHandler.ListMovements)
	products.Get("/:id/summary", ledgerHandler.SummarizeYear)
	products.Get("/:id/export/csv", ledgerHandler.ExportCSV)

	// Reporte anual PDF (protegido)
	reportHandler := NewReportHandler(deps.ReportUC)
	products.Get("/:id/report/pdf", reportHandler.AnnualPDF)

	// Corrección y anulación de movimientos (solo admin)
	movements := protected.Group("/movements", RequireRole(entity.RoleAdmin))
	movements.Put("/:id", ledgerHandler.UpdateMovement)
	movements.Post("/:id/void", ledgerHandler.VoidMovement)

	// Usuarios (solo admin)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)
}
