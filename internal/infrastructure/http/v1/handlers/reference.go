package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"festa/internal/core/apperror"
	"festa/internal/core/id"
	"festa/internal/domain/catalogs/reference"
	"festa/internal/infrastructure/http/v1/dto"
)

// ReferenceHandler serves the kind-scoped reference value lists.
// Routes are mounted under /catalog/references/:kind.
type ReferenceHandler struct {
	*BaseHandler
	service *reference.Service
}

// NewReferenceHandler creates the reference values handler.
func NewReferenceHandler(base *BaseHandler, service *reference.Service) *ReferenceHandler {
	return &ReferenceHandler{
		BaseHandler: base,
		service:     service,
	}
}

func (h *ReferenceHandler) kind(c *gin.Context) (reference.Kind, bool) {
	kind, err := reference.ParseKind(c.Param("kind"))
	if err != nil {
		h.Error(c, err)
		return "", false
	}
	return kind, true
}

// List handles GET /catalog/references/:kind.
func (h *ReferenceHandler) List(c *gin.Context) {
	kind, ok := h.kind(c)
	if !ok {
		return
	}

	filter, ok := h.ParseListFilter(c, "position")
	if !ok {
		return
	}

	result, err := h.service.ListByKind(c.Request.Context(), kind, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]any, len(result.Items))
	for i, v := range result.Items {
		items[i] = dto.FromReferenceValue(v)
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

// Get handles GET /catalog/references/:kind/:id.
func (h *ReferenceHandler) Get(c *gin.Context) {
	kind, ok := h.kind(c)
	if !ok {
		return
	}

	valueID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	value, err := h.service.GetByID(c.Request.Context(), valueID)
	if err != nil {
		h.Error(c, err)
		return
	}
	if value.Kind != kind {
		h.Error(c, apperror.NewNotFound("reference_value", valueID.String()))
		return
	}

	c.JSON(http.StatusOK, dto.FromReferenceValue(value))
}

// Create handles POST /catalog/references/:kind.
func (h *ReferenceHandler) Create(c *gin.Context) {
	kind, ok := h.kind(c)
	if !ok {
		return
	}

	var req dto.CreateReferenceValueRequest
	if !h.BindJSON(c, &req) {
		return
	}

	value := req.ToEntity(kind)
	if err := h.service.Create(c.Request.Context(), value); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromReferenceValue(value))
}

// Update handles PUT /catalog/references/:kind/:id.
func (h *ReferenceHandler) Update(c *gin.Context) {
	kind, ok := h.kind(c)
	if !ok {
		return
	}

	valueID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.UpdateReferenceValueRequest
	if !h.BindJSON(c, &req) {
		return
	}

	existing, err := h.service.GetByID(c.Request.Context(), valueID)
	if err != nil {
		h.Error(c, err)
		return
	}
	if existing.Kind != kind {
		h.Error(c, apperror.NewNotFound("reference_value", valueID.String()))
		return
	}

	req.ApplyTo(existing)
	if err := h.service.Update(c.Request.Context(), existing); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromReferenceValue(existing))
}

// SetDeletionMark handles POST /catalog/references/:kind/:id/deletion-mark.
func (h *ReferenceHandler) SetDeletionMark(c *gin.Context) {
	if _, ok := h.kind(c); !ok {
		return
	}

	valueID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.SetDeletionMarkRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.service.SetDeletionMark(c.Request.Context(), valueID, req.Marked); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "deletion mark updated")
}

// Delete handles DELETE /catalog/references/:kind/:id.
func (h *ReferenceHandler) Delete(c *gin.Context) {
	if _, ok := h.kind(c); !ok {
		return
	}

	valueID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	if err := h.service.Delete(c.Request.Context(), valueID); err != nil {
		h.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
