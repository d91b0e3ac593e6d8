package v1

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"festa/internal/core/id"
	"festa/internal/core/security"
	"festa/internal/domain"
	"festa/internal/domain/agenda"
	"festa/internal/domain/auth"
	"festa/internal/domain/catalogs/client"
	"festa/internal/domain/catalogs/employee"
	"festa/internal/domain/catalogs/inventory"
	"festa/internal/domain/catalogs/reference"
	"festa/internal/domain/documents/event"
	"festa/internal/domain/documents/finance"
	"festa/internal/domain/documents/purchase"
	"festa/internal/domain/documents/timerecord"
	"festa/internal/domain/reports"
	"festa/internal/domain/settings"
	"festa/internal/infrastructure/cep"
	"festa/internal/infrastructure/http/v1/handlers"
	"festa/internal/infrastructure/http/v1/middleware"
	"festa/internal/infrastructure/storage/postgres"
	"festa/internal/infrastructure/storage/postgres/catalog_repo"
	"festa/internal/infrastructure/storage/postgres/document_repo"
	"festa/internal/infrastructure/storage/postgres/report_repo"
	"festa/internal/infrastructure/storage/postgres/settings_repo"
	"festa/pkg/logger"
)

// RouterConfig holds router dependencies.
type RouterConfig struct {
	// Pool is the database connection pool (health checks)
	Pool *postgres.Pool

	// TxManager runs queries and transactions against the pool
	TxManager *postgres.TxManager

	// Logger for request logging
	Logger *logger.Logger

	// JWTValidator for token validation
	JWTValidator middleware.JWTValidator

	// AuthService for authentication endpoints
	AuthService *auth.Service

	// Policy is the role access matrix
	Policy *security.Policy

	// Audit records who changed what; nil disables the trail
	Audit *postgres.AuditService

	// Location is the display timezone for the agenda
	Location *time.Location
}

// auditHooks registers create/update/delete audit hooks on a hook registry.
// The full entity state is stored; large diffs are compressed by the
// audit service itself.
func auditHooks[T any](hooks *domain.HookRegistry[T], audit *postgres.AuditService, entityType string, entityID func(T) id.ID) {
	if audit == nil {
		return
	}
	log := func(action postgres.AuditAction) domain.Hook[T] {
		return func(ctx context.Context, entity T) error {
			return audit.LogChange(ctx, entityType, entityID(entity), action, postgres.StructToMap(entity))
		}
	}
	hooks.On(domain.AfterCreate, log(postgres.AuditActionCreate))
	hooks.On(domain.AfterUpdate, log(postgres.AuditActionUpdate))
	hooks.On(domain.AfterDelete, log(postgres.AuditActionDelete))
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints (no auth required)
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	// API v1
	apiV1 := router.Group("/api/v1")
	{
		registerAuthRoutes(apiV1, cfg)

		// Everything else requires a valid token
		protected := apiV1.Group("")
		protected.Use(middleware.Auth(cfg.JWTValidator))

		registerCatalogRoutes(protected, cfg)
		registerDocumentRoutes(protected, cfg)
		registerAgendaRoutes(protected, cfg)
		registerReportRoutes(protected, cfg)
		registerSettingsRoutes(protected, cfg)
		registerAuditRoutes(protected, cfg)
		registerCepRoutes(protected, cfg)
	}

	return router
}

// registerAuthRoutes registers authentication and account endpoints.
func registerAuthRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	if cfg.AuthService == nil {
		return
	}

	baseHandler := handlers.NewBaseHandler(cfg.Location)
	authHandler := handlers.NewAuthHandler(baseHandler, cfg.AuthService)

	// Public endpoints (no JWT required)
	public := rg.Group("/auth")
	{
		public.POST("/login", authHandler.Login)
		public.POST("/refresh", authHandler.Refresh)
	}

	// Endpoints for the authenticated caller
	protected := rg.Group("/auth")
	protected.Use(middleware.Auth(cfg.JWTValidator))
	{
		protected.POST("/logout", authHandler.Logout)
		protected.GET("/me", authHandler.Me)
		protected.POST("/change-password", authHandler.ChangePassword)
	}

	// User management (admin only via the access matrix)
	protected.POST("/register", middleware.RequireAccess(cfg.Policy, "user", "create"), authHandler.Register)

	users := rg.Group("/auth/users")
	users.Use(middleware.Auth(cfg.JWTValidator))
	{
		users.GET("", middleware.RequireAccess(cfg.Policy, "user", "read"), authHandler.ListUsers)
		users.PUT("/:id/active", middleware.RequireAccess(cfg.Policy, "user", "update"), authHandler.SetActive)
	}
}

// registerCatalogRoutes registers catalog endpoints.
func registerCatalogRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	catalogs := rg.Group("/catalog")
	baseHandler := handlers.NewBaseHandler(cfg.Location)
	txm := cfg.TxManager

	// --- CLIENTS ---
	{
		repo := catalog_repo.NewClientRepo(txm)
		service := client.NewService(repo, txm)
		auditHooks(service.Hooks(), cfg.Audit, "client", func(c *client.Client) id.ID { return c.ID })
		handler := handlers.NewClientHandler(baseHandler, service)

		group := catalogs.Group("/clients")
		group.GET("/by-tax-id/:taxId", middleware.RequireAccess(cfg.Policy, "client", "read"), handler.FindByTaxID)
		RegisterCatalogRoutes(group, handler, cfg.Policy, "client")
	}

	// --- EMPLOYEES ---
	{
		repo := catalog_repo.NewEmployeeRepo(txm)
		service := employee.NewService(repo, txm)
		handler := handlers.NewEmployeeHandler(baseHandler, service)
		RegisterCatalogRoutes(catalogs.Group("/employees"), handler, cfg.Policy, "employee")
	}

	// --- INVENTORY ---
	{
		repo := catalog_repo.NewInventoryRepo(txm)
		service := inventory.NewService(repo, txm)
		handler := handlers.NewInventoryHandler(baseHandler, service)
		RegisterCatalogRoutes(catalogs.Group("/inventory"), handler, cfg.Policy, "inventory")
	}

	// --- REFERENCE VALUES ---
	// The kind lives in the URL, so these are wired by hand.
	{
		repo := catalog_repo.NewReferenceRepo(txm)
		service := reference.NewService(repo, txm)
		handler := handlers.NewReferenceHandler(baseHandler, service)

		group := catalogs.Group("/references/:kind")
		group.GET("", middleware.RequireAccess(cfg.Policy, "reference", "read"), handler.List)
		group.POST("", middleware.RequireAccess(cfg.Policy, "reference", "create"), handler.Create)
		group.GET("/:id", middleware.RequireAccess(cfg.Policy, "reference", "read"), handler.Get)
		group.PUT("/:id", middleware.RequireAccess(cfg.Policy, "reference", "update"), handler.Update)
		group.DELETE("/:id", middleware.RequireAccess(cfg.Policy, "reference", "delete"), handler.Delete)
		group.POST("/:id/deletion-mark", middleware.RequireAccess(cfg.Policy, "reference", "delete"), handler.SetDeletionMark)
	}
}

// registerDocumentRoutes registers document endpoints.
func registerDocumentRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	docsGroup := rg.Group("/document")
	baseHandler := handlers.NewBaseHandler(cfg.Location)
	txm := cfg.TxManager

	// --- EVENTS ---
	{
		repo := document_repo.NewEventRepo(txm)
		service := event.NewService(repo, txm)
		auditHooks(service.Hooks(), cfg.Audit, "event", func(d *event.Event) id.ID { return d.ID })
		handler := handlers.NewEventHandler(baseHandler, service)

		group := docsGroup.Group("/events")
		group.PUT("/:id/status", middleware.RequireAccess(cfg.Policy, "event", "update"), handler.SetStatus)
		RegisterDocumentRoutes(group, handler, cfg.Policy, "event")

		// Contract PDF is assembled from the event, its client and company settings.
		clientRepo := catalog_repo.NewClientRepo(txm)
		clientService := client.NewService(clientRepo, txm)
		settingsService := settings.NewService(settings_repo.NewSettingsRepo(txm))
		contractHandler := handlers.NewContractHandler(baseHandler, service, clientService, settingsService)
		group.GET("/:id/contract", middleware.RequireAccess(cfg.Policy, "event", "read"), contractHandler.Download)
	}

	// --- PURCHASES ---
	{
		repo := document_repo.NewPurchaseRepo(txm)
		service := purchase.NewService(repo, txm)
		auditHooks(service.Hooks(), cfg.Audit, "purchase", func(d *purchase.Purchase) id.ID { return d.ID })
		handler := handlers.NewPurchaseHandler(baseHandler, service)
		RegisterDocumentRoutes(docsGroup.Group("/purchases"), handler, cfg.Policy, "purchase")
	}

	// --- TRANSACTIONS ---
	{
		repo := document_repo.NewFinanceRepo(txm)
		service := finance.NewService(repo, txm)
		auditHooks(service.Hooks(), cfg.Audit, "transaction", func(d *finance.Transaction) id.ID { return d.ID })
		handler := handlers.NewFinanceHandler(baseHandler, service)

		group := docsGroup.Group("/transactions")
		group.POST("/:id/payments", middleware.RequireAccess(cfg.Policy, "transaction", "update"), handler.RecordPayment)
		group.POST("/:id/cancel", middleware.RequireAccess(cfg.Policy, "transaction", "update"), handler.Cancel)
		RegisterDocumentRoutes(group, handler, cfg.Policy, "transaction")
	}

	// --- TIME RECORDS ---
	// Employees reach these for their own records only; RequireAccess flags
	// the request and the handler scopes the query.
	{
		repo := document_repo.NewTimeRecordRepo(txm)
		service := timerecord.NewService(repo, txm)
		handler := handlers.NewTimeRecordHandler(baseHandler, service)

		group := docsGroup.Group("/time-records")
		group.GET("", middleware.RequireAccess(cfg.Policy, "time_record", "read"), handler.List)
		group.GET("/:id", middleware.RequireAccess(cfg.Policy, "time_record", "read"), handler.Get)
		group.POST("/clock-in", middleware.RequireAccess(cfg.Policy, "time_record", "create"), handler.ClockIn)
		group.POST("/:id/clock-out", middleware.RequireAccess(cfg.Policy, "time_record", "update"), handler.ClockOut)
		group.PUT("/:id", middleware.RequireAccess(cfg.Policy, "time_record", "update"), handler.Update)
		group.DELETE("/:id", middleware.RequireAccess(cfg.Policy, "time_record", "delete"), handler.Delete)
	}
}

// registerAgendaRoutes registers the calendar endpoints.
func registerAgendaRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	baseHandler := handlers.NewBaseHandler(cfg.Location)

	eventRepo := document_repo.NewEventRepo(cfg.TxManager)
	service := agenda.NewService(eventRepo, cfg.Location)
	handler := handlers.NewAgendaHandler(baseHandler, service)

	group := rg.Group("/agenda")
	group.GET("", middleware.RequireAccess(cfg.Policy, "agenda", "read"), handler.View)
	group.GET("/ics", middleware.RequireAccess(cfg.Policy, "agenda", "read"), handler.ExportICS)
}

// registerReportRoutes registers report endpoints.
func registerReportRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	baseHandler := handlers.NewBaseHandler(cfg.Location)

	queries := report_repo.NewReportQueries(cfg.TxManager)
	service := reports.NewService(queries)
	handler := handlers.NewReportsHandler(baseHandler, service)

	group := rg.Group("/reports")
	group.GET("/dashboard", middleware.RequireAccess(cfg.Policy, "report", "read"), handler.Dashboard)
	group.GET("/monthly-revenue", middleware.RequireAccess(cfg.Policy, "report", "read"), handler.MonthlyRevenue)
}

// registerSettingsRoutes registers the key value settings endpoints.
func registerSettingsRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	baseHandler := handlers.NewBaseHandler(cfg.Location)

	service := settings.NewService(settings_repo.NewSettingsRepo(cfg.TxManager))
	handler := handlers.NewSettingsHandler(baseHandler, service)

	group := rg.Group("/settings")
	group.GET("", middleware.RequireAccess(cfg.Policy, "settings", "read"), handler.List)
	group.GET("/:key", middleware.RequireAccess(cfg.Policy, "settings", "read"), handler.Get)
	group.PUT("/:key", middleware.RequireAccess(cfg.Policy, "settings", "update"), handler.Put)
	group.DELETE("/:key", middleware.RequireAccess(cfg.Policy, "settings", "delete"), handler.Delete)
}

// registerAuditRoutes registers the change-trail endpoint.
func registerAuditRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	if cfg.Audit == nil {
		return
	}

	baseHandler := handlers.NewBaseHandler(cfg.Location)
	handler := handlers.NewAuditHandler(baseHandler, cfg.Audit)

	rg.GET("/audit/:entityType/:id", middleware.RequireAccess(cfg.Policy, "audit", "read"), handler.History)
}

// registerCepRoutes registers the postal code lookup endpoint.
func registerCepRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	baseHandler := handlers.NewBaseHandler(cfg.Location)
	handler := handlers.NewCepHandler(baseHandler, cep.NewClient())

	rg.GET("/cep/:code", handler.Lookup)
}
