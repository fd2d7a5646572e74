package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/repuestos-api/internal/application/inventory"
	"github.com/jhoicas/repuestos-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC        *usecase.CategoryUseCase
	PartUC            *usecase.PartUseCase
	TransactionUC     *usecase.TransactionUseCase
	CreateTransaction *inventory.CreateTransactionUseCase
	StatsUC           *usecase.StatsUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Las rutas fijas van antes que /:id para que fiber no las capture como parámetro.
	parts := api.Group("/parts")
	partHandler := NewPartHandler(deps.PartUC)
	parts.Get("/", partHandler.List)
	parts.Post("/", partHandler.Create)
	parts.Post("/search", partHandler.Search)
	parts.Get("/low-stock", partHandler.LowStock)
	parts.Get("/:id", partHandler.GetByID)
	parts.Put("/:id", partHandler.Update)
	parts.Delete("/:id", partHandler.Delete)

	transactions := api.Group("/transactions")
	transactionHandler := NewTransactionHandler(deps.TransactionUC, deps.CreateTransaction)
	transactions.Get("/", transactionHandler.List)
	transactions.Post("/", transactionHandler.Create)
	transactions.Get("/fast-moving", transactionHandler.FastMoving)
	transactions.Get("/part/:partId", transactionHandler.ListByPart)
	transactions.Get("/:id", transactionHandler.GetByID)
	transactions.Put("/:id/payment", transactionHandler.UpdatePayment)
	transactions.Delete("/:id", transactionHandler.Delete)

	stats := api.Group("/stats")
	statsHandler := NewStatsHandler(deps.StatsUC)
	stats.Get("/inventory", statsHandler.Inventory)
	stats.Get("/categories", statsHandler.Categories)
}
