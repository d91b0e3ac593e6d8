package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"festa/internal/core/apperror"
	"festa/internal/core/id"
	"festa/internal/domain/documents/event"
	"festa/internal/infrastructure/http/v1/dto"
)

// EventHandler handles HTTP requests for event bookings.
type EventHandler struct {
	*BaseHandler
	service *event.Service
}

// NewEventHandler creates a new event handler.
func NewEventHandler(base *BaseHandler, service *event.Service) *EventHandler {
	return &EventHandler{
		BaseHandler: base,
		service:     service,
	}
}

// List handles GET /document/events.
func (h *EventHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	base, ok := h.ParseListFilter(c, "-date")
	if !ok {
		return
	}

	filter := event.ListFilter{ListFilter: base}

	if raw := c.Query("clientId"); raw != "" {
		clientID, err := id.Parse(raw)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid clientId format"))
			return
		}
		filter.ClientID = &clientID
	}
	if raw := c.Query("categoryId"); raw != "" {
		categoryID, err := id.Parse(raw)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid categoryId format"))
			return
		}
		filter.CategoryID = &categoryID
	}
	if raw := c.Query("status"); raw != "" {
		status := event.Status(raw)
		filter.Status = &status
	}

	result, err := h.service.List(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]any, len(result.Items))
	for i, e := range result.Items {
		items[i] = dto.FromEvent(e)
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

// Get handles GET /document/events/:id.
func (h *EventHandler) Get(c *gin.Context) {
	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	doc, err := h.service.GetByID(c.Request.Context(), docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromEvent(doc))
}

// Create handles POST /document/events.
func (h *EventHandler) Create(c *gin.Context) {
	var req dto.CreateEventRequest
	if !h.BindJSON(c, &req) {
		return
	}

	doc, err := req.ToEntity()
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid request").WithDetail("error", err.Error()))
		return
	}

	if err := h.service.Create(c.Request.Context(), doc); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromEvent(doc))
}

// Update handles PUT /document/events/:id.
func (h *EventHandler) Update(c *gin.Context) {
	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.UpdateEventRequest
	if !h.BindJSON(c, &req) {
		return
	}

	doc, err := h.service.GetByID(c.Request.Context(), docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := req.ApplyTo(doc); err != nil {
		h.Error(c, apperror.NewValidation("invalid request").WithDetail("error", err.Error()))
		return
	}

	if err := h.service.Update(c.Request.Context(), doc); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromEvent(doc))
}

// SetStatus handles PUT /document/events/:id/status.
func (h *EventHandler) SetStatus(c *gin.Context) {
	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.SetEventStatusRequest
	if !h.BindJSON(c, &req) {
		return
	}

	doc, err := h.service.SetStatus(c.Request.Context(), docID, event.Status(req.Status))
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromEvent(doc))
}

// Delete handles DELETE /document/events/:id (soft delete).
func (h *EventHandler) Delete(c *gin.Context) {
	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	if err := h.service.Delete(c.Request.Context(), docID); err != nil {
		h.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// SetDeletionMark handles POST /document/events/:id/deletion-mark.
func (h *EventHandler) SetDeletionMark(c *gin.Context) {
	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.SetDeletionMarkRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.service.SetDeletionMark(c.Request.Context(), docID, req.Marked); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "deletion mark updated")
}
