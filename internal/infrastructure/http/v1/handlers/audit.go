package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"festa/internal/core/apperror"
	"festa/internal/core/id"
	"festa/internal/infrastructure/storage/postgres"
)

// AuditHandler exposes the change trail of a single record.
type AuditHandler struct {
	*BaseHandler
	audit *postgres.AuditService
}

// NewAuditHandler creates a new audit handler.
func NewAuditHandler(base *BaseHandler, audit *postgres.AuditService) *AuditHandler {
	return &AuditHandler{
		BaseHandler: base,
		audit:       audit,
	}
}

// History handles GET /audit/:entityType/:id.
func (h *AuditHandler) History(c *gin.Context) {
	entityID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	limit := h.ParseIntQuery(c, "limit", 50)
	if limit < 1 || limit > 500 {
		limit = 50
	}

	entries, err := h.audit.GetEntityHistory(c.Request.Context(), c.Param("entityType"), entityID, limit)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": entries})
}
