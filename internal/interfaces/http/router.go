package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Granja-api/internal/application/analytics"
	"github.com/jhoicas/Granja-api/internal/application/auth"
	"github.com/jhoicas/Granja-api/internal/application/registrar"
	"github.com/jhoicas/Granja-api/internal/application/report"
	"github.com/jhoicas/Granja-api/internal/application/usecase"
	"github.com/jhoicas/Granja-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	GoatUC      *usecase.GoatUseCase
	RecordUC    *usecase.RecordUseCase
	InventoryUC *usecase.InventoryUseCase
	Registrar   *registrar.Registrar
	DashboardUC *appanalytics.DashboardUseCase
	ReportUC    *report.HerdUseCase
	JWTSecret   string
	Cookie      CookieConfig
	Revocation  RevocationChecker
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authHandler := NewAuthHandler(deps.AuthUC, deps.Cookie)

	// Público: bootstrap del administrador y login
	api.Post("/seed", authHandler.Seed)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (Bearer Token o cookie de sesión)
	protected := api.Group("/", AuthMiddleware(AuthConfig{
		Secret:     deps.JWTSecret,
		CookieName: deps.Cookie.Name,
		Revocation: deps.Revocation,
	}))

	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/auth/me", authHandler.Me)

	// Dashboard
	protected.Get("/dashboard", NewDashboardHandler(deps.DashboardUC).Get)

	// Goats
	goats := protected.Group("/goats")
	goatHandler := NewGoatHandler(deps.GoatUC)
	goats.Get("/", goatHandler.List)
	goats.Post("/", goatHandler.Create)
	goats.Get("/:id", goatHandler.GetByID)
	goats.Put("/:id", goatHandler.Update)
	goats.Delete("/:id", RequireRole(entity.RoleAdmin, entity.RoleManager), goatHandler.Delete)
	goats.Get("/:id/weights", goatHandler.ListWeights)
	goats.Post("/:id/weights", goatHandler.AddWeight)

	// Registros con número de referencia
	recordHandler := NewRecordHandler(deps.Registrar, deps.RecordUC)

	breeding := protected.Group("/breeding")
	breeding.Get("/", recordHandler.ListBreeding)
	breeding.Post("/", recordHandler.CreateBreeding)
	breeding.Get("/:id", recordHandler.GetBreeding)

	health := protected.Group("/health")
	health.Get("/", recordHandler.ListHealth)
	health.Post("/", recordHandler.CreateHealth)
	health.Get("/:id", recordHandler.GetHealth)

	expenses := protected.Group("/expenses")
	expenses.Get("/", recordHandler.ListExpenses)
	expenses.Post("/", recordHandler.CreateExpense)
	expenses.Get("/:id", recordHandler.GetExpense)

	sales := protected.Group("/sales")
	sales.Get("/", recordHandler.ListSales)
	sales.Post("/", recordHandler.CreateSale)
	sales.Get("/:id", recordHandler.GetSale)

	// Inventory
	inventory := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.Registrar, deps.InventoryUC)
	inventory.Get("/", inventoryHandler.List)
	inventory.Post("/", inventoryHandler.Create)
	inventory.Get("/:id", inventoryHandler.GetByID)
	inventory.Put("/:id", inventoryHandler.Update)

	// Reports
	if deps.ReportUC != nil {
		protected.Get("/reports/herd", NewReportHandler(deps.ReportUC).Herd)
	}
}
