package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"festa/internal/core/apperror"
	"festa/internal/domain/agenda"
)

// AgendaHandler serves the calendar views and the iCalendar feed.
type AgendaHandler struct {
	*BaseHandler
	service *agenda.Service
}

// NewAgendaHandler creates a new agenda handler.
func NewAgendaHandler(base *BaseHandler, service *agenda.Service) *AgendaHandler {
	return &AgendaHandler{
		BaseHandler: base,
		service:     service,
	}
}

// View handles GET /agenda?view=month|week|year&anchor=2024-06-15.
func (h *AgendaHandler) View(c *gin.Context) {
	ctx := c.Request.Context()

	anchor := time.Now()
	if raw := c.Query("anchor"); raw != "" {
		parsed, err := parseDateParam(raw)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid anchor date").WithDetail("value", raw))
			return
		}
		anchor = parsed
	}

	switch c.DefaultQuery("view", "month") {
	case "month":
		view, err := h.service.Month(ctx, anchor)
		if err != nil {
			h.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, view)
	case "week":
		view, err := h.service.Week(ctx, anchor)
		if err != nil {
			h.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, view)
	case "year":
		view, err := h.service.Year(ctx, anchor)
		if err != nil {
			h.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, view)
	default:
		h.Error(c, apperror.NewValidation("view must be month, week or year"))
	}
}

// ExportICS handles GET /agenda/ics.
// Exports the surrounding year as an iCalendar feed.
func (h *AgendaHandler) ExportICS(c *gin.Context) {
	ctx := c.Request.Context()

	anchor := time.Now()
	if raw := c.Query("anchor"); raw != "" {
		parsed, err := parseDateParam(raw)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid anchor date").WithDetail("value", raw))
			return
		}
		anchor = parsed
	}

	from := time.Date(anchor.Year(), time.January, 1, 0, 0, 0, 0, anchor.Location())
	to := from.AddDate(1, 0, 0).Add(-time.Nanosecond)

	events, err := h.service.EventsBetween(ctx, from, to)
	if err != nil {
		h.Error(c, err)
		return
	}

	feed := agenda.ExportICS(events, time.Now())

	c.Header("Content-Disposition", `attachment; filename="agenda.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(feed))
}
