// Package routes defines the API routing configuration.
// It wires all HTTP routes to their handlers. Specific routes are
// registered before the /api/:table catch-all so fiber matches them
// first.
package routes

import (
	"github.com/SagarP2/Billing-Software/internal/handlers"
	"github.com/SagarP2/Billing-Software/internal/middleware"
	"github.com/SagarP2/Billing-Software/internal/repositories"
	"github.com/SagarP2/Billing-Software/internal/services/cascade"
	"github.com/SagarP2/Billing-Software/internal/services/customer"
	"github.com/SagarP2/Billing-Software/internal/services/stats"
	"github.com/SagarP2/Billing-Software/internal/services/table"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Initialize services
	tableService := table.NewService(db, repositories.CacheService)
	statsService := stats.NewService(db)
	customerService := customer.NewService(db)
	cascadeService := cascade.NewService(db)

	// Initialize handlers
	tableHandler := handlers.NewTableHandler(tableService)
	statsHandler := handlers.NewStatsHandler(statsService)
	customerHandler := handlers.NewCustomerHandler(customerService, cascadeService)
	feesHandler := handlers.NewFeesHandler()
	catalogHandler := handlers.NewCatalogHandler()

	authMiddleware := middleware.NewAuthMiddleware()

	api := app.Group("/api", authMiddleware.Handler)

	// Dashboard and pick lists
	api.Get("/stats", statsHandler.Summary)
	api.Get("/rel/:table", tableHandler.ListRelation)
	api.Get("/banks", catalogHandler.Banks)
	api.Get("/card-names", catalogHandler.CardNames)

	// Fees
	api.Post("/fees/preview", feesHandler.Preview)
	api.Get("/fees/rates/:posType", feesHandler.Rates)

	// Customer-specific operations
	api.Post("/customers/full", customerHandler.CreateProfile)
	api.Get("/customer-cards/:id", customerHandler.Cards)
	api.Get("/customers/:id", customerHandler.Get)
	api.Put("/customers/:id/tax", customerHandler.SaveTaxDetail)
	api.Post("/customers/:id/cards", customerHandler.AddCard)
	api.Delete("/customers/:id", customerHandler.Delete)

	// Generic table gateway, last so the specific routes win
	api.Get("/:table", tableHandler.List)
	api.Post("/:table", tableHandler.Create)
	api.Patch("/:table/:id", tableHandler.Update)
	api.Put("/:table/:id", tableHandler.Update)
	api.Delete("/:table/:id", tableHandler.Delete)
}
