package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/ledger"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	UserUC        *usecase.UserUseCase
	PartUC        *usecase.PartUseCase
	SupplierUC    *usecase.SupplierUseCase
	Coordinator   *ledger.Coordinator
	TransactionUC *usecase.TransactionQueryUseCase
	DashboardUC   *usecase.DashboardUseCase
	InventoryUC   *usecase.InventoryUseCase
	JWTSecret     string
	AuthLimiter   *RateLimiter
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público, con rate limit por IP contra fuerza bruta)
	authGroup := api.Group("/auth", deps.AuthLimiter.Middleware())
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/profile", authHandler.Profile)

	adminOnly := RequireRole(entity.RoleAdmin)

	// Users (protegido, solo admin)
	users := protected.Group("/users", adminOnly)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Parts (protegido; mutaciones solo admin)
	parts := protected.Group("/parts")
	partHandler := NewPartHandler(deps.PartUC)
	parts.Get("/", partHandler.List)
	parts.Get("/:id", partHandler.GetByID)
	parts.Post("/", adminOnly, partHandler.Create)
	parts.Put("/:id", adminOnly, partHandler.Update)
	parts.Delete("/:id", adminOnly, partHandler.Delete)

	// Suppliers (protegido; mutaciones solo admin)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Post("/", adminOnly, supplierHandler.Create)
	suppliers.Put("/:id", adminOnly, supplierHandler.Update)
	suppliers.Delete("/:id", adminOnly, supplierHandler.Delete)

	// Transactions (protegido; cualquier usuario activo registra movimientos)
	transactions := protected.Group("/transactions")
	transactionHandler := NewTransactionHandler(deps.Coordinator, deps.TransactionUC)
	transactions.Post("/", transactionHandler.Submit)
	transactions.Get("/", transactionHandler.List)
	transactions.Get("/summary", transactionHandler.Summary)

	// Dashboard e inventario (protegido, solo lectura)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", dashboardHandler.Summary)

	inventory := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inventory.Get("/status", inventoryHandler.Status)
	inventory.Get("/details", inventoryHandler.Details)
}
