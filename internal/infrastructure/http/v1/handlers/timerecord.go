package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"festa/internal/core/apperror"
	appctx "festa/internal/core/context"
	"festa/internal/core/id"
	"festa/internal/domain/documents/timerecord"
	"festa/internal/infrastructure/http/v1/dto"
	"festa/internal/infrastructure/http/v1/middleware"
)

// TimeRecordHandler handles HTTP requests for time tracking.
type TimeRecordHandler struct {
	*BaseHandler
	service *timerecord.Service
}

// NewTimeRecordHandler creates a new time record handler.
func NewTimeRecordHandler(base *BaseHandler, service *timerecord.Service) *TimeRecordHandler {
	return &TimeRecordHandler{
		BaseHandler: base,
		service:     service,
	}
}

// ownEmployeeID resolves the employee link of the requesting user.
func (h *TimeRecordHandler) ownEmployeeID(user *appctx.UserContext) (id.ID, error) {
	if user == nil || user.EmployeeID == "" {
		return id.Nil(), apperror.NewForbidden("account is not linked to an employee record")
	}
	return id.Parse(user.EmployeeID)
}

// List handles GET /document/time-records.
func (h *TimeRecordHandler) List(c *gin.Context) {
	base, ok := h.ParseListFilter(c, "-date")
	if !ok {
		return
	}

	filter := timerecord.ListFilter{ListFilter: base}
	filter.OpenOnly = c.Query("open") == "true"

	if raw := c.Query("employeeId"); raw != "" {
		employeeID, err := id.Parse(raw)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid employeeId format"))
			return
		}
		filter.EmployeeID = &employeeID
	}

	// Employees only see their own records
	if middleware.OwnOnly(c) {
		ownID, err := h.ownEmployeeID(h.CurrentUser(c))
		if err != nil {
			h.Error(c, err)
			return
		}
		filter.EmployeeID = &ownID
	}

	result, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]any, len(result.Items))
	for i, t := range result.Items {
		items[i] = dto.FromTimeRecord(t)
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

// Get handles GET /document/time-records/:id.
func (h *TimeRecordHandler) Get(c *gin.Context) {
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

	if err := h.requireOwnership(c, doc); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromTimeRecord(doc))
}

// ClockIn handles POST /document/time-records/clock-in.
func (h *TimeRecordHandler) ClockIn(c *gin.Context) {
	var req dto.ClockInRequest
	if !h.BindJSON(c, &req) {
		return
	}

	var employeeID id.ID
	if middleware.OwnOnly(c) || req.EmployeeID == "" {
		ownID, err := h.ownEmployeeID(h.CurrentUser(c))
		if err != nil {
			h.Error(c, err)
			return
		}
		employeeID = ownID
	} else {
		parsed, err := id.Parse(req.EmployeeID)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid employeeId format"))
			return
		}
		employeeID = parsed
	}

	at := time.Now()
	if req.At != nil {
		at = *req.At
	}

	doc, err := h.service.ClockIn(c.Request.Context(), employeeID, at)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromTimeRecord(doc))
}

// ClockOut handles POST /document/time-records/:id/clock-out.
func (h *TimeRecordHandler) ClockOut(c *gin.Context) {
	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.ClockOutRequest
	if !h.BindJSON(c, &req) {
		return
	}

	existing, err := h.service.GetByID(c.Request.Context(), docID)
	if err != nil {
		h.Error(c, err)
		return
	}
	if err := h.requireOwnership(c, existing); err != nil {
		h.Error(c, err)
		return
	}

	at := time.Now()
	if req.At != nil {
		at = *req.At
	}

	doc, err := h.service.ClockOut(c.Request.Context(), docID, at)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromTimeRecord(doc))
}

// Update handles PUT /document/time-records/:id (corrections).
func (h *TimeRecordHandler) Update(c *gin.Context) {
	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.UpdateTimeRecordRequest
	if !h.BindJSON(c, &req) {
		return
	}

	doc, err := h.service.GetByID(c.Request.Context(), docID)
	if err != nil {
		h.Error(c, err)
		return
	}
	if err := h.requireOwnership(c, doc); err != nil {
		h.Error(c, err)
		return
	}

	req.ApplyTo(doc)
	if err := h.service.Update(c.Request.Context(), doc); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromTimeRecord(doc))
}

// Delete handles DELETE /document/time-records/:id (soft delete).
func (h *TimeRecordHandler) Delete(c *gin.Context) {
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
	if err := h.requireOwnership(c, doc); err != nil {
		h.Error(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), docID); err != nil {
		h.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// requireOwnership rejects access to other employees' records when the
// request is scoped to own records.
func (h *TimeRecordHandler) requireOwnership(c *gin.Context, doc *timerecord.TimeRecord) error {
	if !middleware.OwnOnly(c) {
		return nil
	}
	ownID, err := h.ownEmployeeID(h.CurrentUser(c))
	if err != nil {
		return err
	}
	if doc.EmployeeID != ownID {
		return apperror.NewForbidden("time record belongs to another employee")
	}
	return nil
}
