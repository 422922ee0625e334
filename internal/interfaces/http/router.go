package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Bioterio-api/internal/application/auth"
	"github.com/jhoicas/Bioterio-api/internal/application/movements"
	"github.com/jhoicas/Bioterio-api/internal/application/protocols"
	"github.com/jhoicas/Bioterio-api/internal/application/reports"
	"github.com/jhoicas/Bioterio-api/internal/application/usecase"
	"github.com/jhoicas/Bioterio-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	GroupUC          *usecase.GroupUseCase
	SupplyUC         *usecase.SupplyUseCase
	CatalogUC        *usecase.CatalogUseCase
	RegisterMovement *movements.RegisterGroupMovementUseCase
	RegisterSupply   *movements.RegisterSupplyMovementUseCase
	ProtocolUC       *protocols.ProtocolUseCase
	ReportUC         *reports.ReportUseCase
	AuthUC           *auth.AuthUseCase
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	admin := RequireRole(entity.RoleAdmin)
	canMoveAnimals := RequireRole(entity.RoleAdmin, entity.RoleResearcher)
	canMoveSupplies := RequireRole(entity.RoleAdmin, entity.RoleTechnician)

	// Catálogos: especies, cepas y jaulas
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	species := protected.Group("/species")
	species.Post("/", admin, catalogHandler.CreateSpecies)
	species.Get("/", catalogHandler.ListSpecies)
	species.Post("/:id/strains", admin, catalogHandler.CreateStrain)
	species.Get("/:id/strains", catalogHandler.ListStrains)
	cages := protected.Group("/cages")
	cages.Post("/", admin, catalogHandler.CreateCage)
	cages.Get("/", catalogHandler.ListCages)

	// Grupos animales y sus movimientos
	groups := protected.Group("/groups")
	groupHandler := NewGroupHandler(deps.GroupUC)
	groups.Post("/", admin, groupHandler.Create)
	groups.Get("/", groupHandler.List)
	groups.Get("/:id", groupHandler.GetByID)
	groups.Put("/:id", admin, groupHandler.Update)
	groups.Delete("/:id", admin, groupHandler.Delete)

	movementHandler := NewMovementHandler(deps.RegisterMovement, deps.ReportUC)
	groups.Post("/:id/movements", canMoveAnimals, movementHandler.Register)
	groups.Get("/:id/movements", movementHandler.History)

	// Insumos, categorías y sus movimientos
	supplyHandler := NewSupplyHandler(deps.SupplyUC, deps.RegisterSupply, deps.ReportUC)
	supplies := protected.Group("/supplies")
	supplies.Post("/", admin, supplyHandler.Create)
	supplies.Get("/", supplyHandler.List)
	supplies.Get("/:id", supplyHandler.GetByID)
	supplies.Put("/:id", admin, supplyHandler.Update)
	supplies.Delete("/:id", admin, supplyHandler.Delete)
	supplies.Post("/:id/movements", canMoveSupplies, supplyHandler.RegisterMovement)
	supplies.Get("/:id/movements", supplyHandler.MovementHistory)
	supplyCategories := protected.Group("/supply-categories")
	supplyCategories.Post("/", admin, supplyHandler.CreateCategory)
	supplyCategories.Get("/", supplyHandler.ListCategories)

	// Protocolos de investigación
	protocolHandler := NewProtocolHandler(deps.ProtocolUC)
	protocolGroup := protected.Group("/protocols")
	protocolGroup.Post("/", canMoveAnimals, protocolHandler.Create)
	protocolGroup.Get("/", protocolHandler.List)
	protocolGroup.Get("/:id", protocolHandler.GetByID)
	protocolGroup.Put("/:id", canMoveAnimals, protocolHandler.Update)
	protocolGroup.Post("/:id/submit", canMoveAnimals, protocolHandler.Submit)
	protocolGroup.Post("/:id/approve", admin, protocolHandler.Approve)
	protocolGroup.Post("/:id/reject", admin, protocolHandler.Reject)

	// Reportes
	reportHandler := NewReportHandler(deps.ReportUC)
	reportGroup := protected.Group("/reports")
	reportGroup.Get("/dashboard", reportHandler.Dashboard)
	reportGroup.Get("/group-movements", reportHandler.GroupSums)
	reportGroup.Get("/supply-movements", reportHandler.SupplySums)
}
