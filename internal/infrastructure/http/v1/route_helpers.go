// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"festa/internal/core/security"
	"festa/internal/infrastructure/http/v1/middleware"
)

// CatalogRouteHandler defines the interface for catalog handlers.
// All catalog handlers must implement these methods.
type CatalogRouteHandler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Get(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	SetDeletionMark(c *gin.Context)
}

// DocumentRouteHandler defines the interface for document handlers.
type DocumentRouteHandler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Get(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	SetDeletionMark(c *gin.Context)
}

// RegisterCatalogRoutes registers standard CRUD routes for a catalog.
// This eliminates the need to manually wire up routes for each catalog.
//
// Usage:
//
//	repo := catalog_repo.NewClientRepo(txm)
//	service := client.NewService(repo, txm)
//	handler := handlers.NewClientHandler(baseHandler, service)
//	RegisterCatalogRoutes(catalogs.Group("/clients"), handler, policy, "client")
func RegisterCatalogRoutes(group *gin.RouterGroup, handler CatalogRouteHandler, policy *security.Policy, resource string) {
	group.GET("", middleware.RequireAccess(policy, resource, "read"), handler.List)
	group.POST("", middleware.RequireAccess(policy, resource, "create"), handler.Create)
	group.GET("/:id", middleware.RequireAccess(policy, resource, "read"), handler.Get)
	group.PUT("/:id", middleware.RequireAccess(policy, resource, "update"), handler.Update)
	group.DELETE("/:id", middleware.RequireAccess(policy, resource, "delete"), handler.Delete)
	group.POST("/:id/deletion-mark", middleware.RequireAccess(policy, resource, "delete"), handler.SetDeletionMark)
}

// RegisterDocumentRoutes registers standard CRUD routes for a document.
// Document specific operations (status changes, payments, clock punches)
// are wired individually by the caller.
func RegisterDocumentRoutes(group *gin.RouterGroup, handler DocumentRouteHandler, policy *security.Policy, resource string) {
	group.GET("", middleware.RequireAccess(policy, resource, "read"), handler.List)
	group.POST("", middleware.RequireAccess(policy, resource, "create"), handler.Create)
	group.GET("/:id", middleware.RequireAccess(policy, resource, "read"), handler.Get)
	group.PUT("/:id", middleware.RequireAccess(policy, resource, "update"), handler.Update)
	group.DELETE("/:id", middleware.RequireAccess(policy, resource, "delete"), handler.Delete)
	group.POST("/:id/deletion-mark", middleware.RequireAccess(policy, resource, "delete"), handler.SetDeletionMark)
}
