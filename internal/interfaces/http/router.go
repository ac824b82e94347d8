package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/zelcon/ops-api/internal/application/auth"
	"github.com/zelcon/ops-api/internal/application/incidents"
	"github.com/zelcon/ops-api/internal/application/notifications"
	"github.com/zelcon/ops-api/internal/application/sst"
	"github.com/zelcon/ops-api/internal/application/warehouse"
	"github.com/zelcon/ops-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	WarehouseUC *warehouse.UseCase
	SSTUC       *sst.UseCase
	IncidentUC  *incidents.UseCase
	Projector   *notifications.Projector
	JWTSecret   string
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

	keeperOnly := RequireRole(entity.RoleAlmacenero)
	reviewers := RequireRole(entity.RoleSupervisor, entity.RoleCompanyAdmin)

	// Inventario (lectura para todos, administración solo almacenero)
	items := protected.Group("/inventory/items")
	inventoryHandler := NewInventoryHandler(deps.WarehouseUC)
	items.Get("/", inventoryHandler.List)
	items.Post("/", keeperOnly, inventoryHandler.Create)
	items.Patch("/:id/stock", keeperOnly, inventoryHandler.AdjustStock)

	// Solicitudes de material
	requests := protected.Group("/requests")
	requestHandler := NewRequestHandler(deps.WarehouseUC)
	requests.Post("/", requestHandler.Submit)
	requests.Get("/", keeperOnly, requestHandler.ListCompany)
	requests.Get("/mine", requestHandler.ListMine)
	requests.Post("/:id/approve", keeperOnly, requestHandler.Approve)
	requests.Post("/:id/reject", keeperOnly, requestHandler.Reject)
	requests.Post("/:id/return", keeperOnly, requestHandler.ConfirmReturn)

	// Documentos SST (creación y lectura para todos, revisión solo revisores)
	documents := protected.Group("/documents")
	sstHandler := NewSSTHandler(deps.SSTUC)
	documents.Post("/", sstHandler.Create)
	documents.Get("/", sstHandler.List)
	documents.Post("/:id/approve", reviewers, sstHandler.Approve)
	documents.Post("/:id/reject", reviewers, sstHandler.Reject)
	documents.Post("/:id/archive", reviewers, sstHandler.Archive)
	documents.Delete("/:id", reviewers, sstHandler.Delete)

	// Incidentes
	incidentsGroup := protected.Group("/incidents")
	incidentHandler := NewIncidentHandler(deps.IncidentUC)
	incidentsGroup.Post("/", incidentHandler.Report)
	incidentsGroup.Get("/", incidentHandler.List)
	incidentsGroup.Patch("/:id/status", reviewers, incidentHandler.UpdateStatus)

	// Notificaciones
	notificationHandler := NewNotificationHandler(deps.Projector)
	protected.Get("/notifications", notificationHandler.Feed)
}
