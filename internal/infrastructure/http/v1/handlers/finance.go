package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"festa/internal/core/apperror"
	"festa/internal/core/id"
	"festa/internal/domain/documents/finance"
	"festa/internal/infrastructure/http/v1/dto"
)

// FinanceHandler handles HTTP requests for financial transactions.
type FinanceHandler struct {
	*BaseHandler
	service *finance.Service
}

// NewFinanceHandler creates a new finance handler.
func NewFinanceHandler(base *BaseHandler, service *finance.Service) *FinanceHandler {
	return &FinanceHandler{
		BaseHandler: base,
		service:     service,
	}
}

// List handles GET /document/transactions.
func (h *FinanceHandler) List(c *gin.Context) {
	base, ok := h.ParseListFilter(c, "-date")
	if !ok {
		return
	}

	filter := finance.ListFilter{ListFilter: base}

	if raw := c.Query("kind"); raw != "" {
		kind := finance.Kind(raw)
		filter.Kind = &kind
	}
	if raw := c.Query("status"); raw != "" {
		status := finance.Status(raw)
		filter.Status = &status
	}
	if raw := c.Query("clientId"); raw != "" {
		clientID, err := id.Parse(raw)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid clientId format"))
			return
		}
		filter.ClientID = &clientID
	}
	if raw := c.Query("eventId"); raw != "" {
		eventID, err := id.Parse(raw)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid eventId format"))
			return
		}
		filter.EventID = &eventID
	}
	for _, q := range []struct {
		key string
		dst **time.Time
	}{
		{"dueFrom", &filter.DueFrom},
		{"dueTo", &filter.DueTo},
	} {
		if raw := c.Query(q.key); raw != "" {
			t, err := parseDateParam(raw)
			if err != nil {
				h.Error(c, apperror.NewValidation("invalid "+q.key).WithDetail("value", raw))
				return
			}
			*q.dst = &t
		}
	}

	result, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]any, len(result.Items))
	for i, t := range result.Items {
		items[i] = dto.FromTransaction(t)
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

// Get handles GET /document/transactions/:id.
func (h *FinanceHandler) Get(c *gin.Context) {
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

	c.JSON(http.StatusOK, dto.FromTransaction(doc))
}

// Create handles POST /document/transactions.
func (h *FinanceHandler) Create(c *gin.Context) {
	var req dto.CreateTransactionRequest
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

	c.JSON(http.StatusCreated, dto.FromTransaction(doc))
}

// Update handles PUT /document/transactions/:id.
func (h *FinanceHandler) Update(c *gin.Context) {
	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.UpdateTransactionRequest
	if !h.BindJSON(c, &req) {
		return
	}

	doc, err := h.service.GetByID(c.Request.Context(), docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	req.ApplyTo(doc)
	if err := h.service.Update(c.Request.Context(), doc); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromTransaction(doc))
}

// RecordPayment handles POST /document/transactions/:id/payments.
func (h *FinanceHandler) RecordPayment(c *gin.Context) {
	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.RecordPaymentRequest
	if !h.BindJSON(c, &req) {
		return
	}

	doc, err := h.service.RecordPayment(c.Request.Context(), docID, req.ToPayment())
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromTransaction(doc))
}

// Cancel handles POST /document/transactions/:id/cancel.
func (h *FinanceHandler) Cancel(c *gin.Context) {
	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	doc, err := h.service.Cancel(c.Request.Context(), docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromTransaction(doc))
}

// Delete handles DELETE /document/transactions/:id (soft delete).
func (h *FinanceHandler) Delete(c *gin.Context) {
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

// SetDeletionMark handles POST /document/transactions/:id/deletion-mark.
func (h *FinanceHandler) SetDeletionMark(c *gin.Context) {
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
