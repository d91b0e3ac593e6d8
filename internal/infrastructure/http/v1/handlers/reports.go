package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"festa/internal/domain/reports"
)

// ReportsHandler handles HTTP requests for reports.
type ReportsHandler struct {
	*BaseHandler
	service *reports.Service
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(base *BaseHandler, service *reports.Service) *ReportsHandler {
	return &ReportsHandler{
		BaseHandler: base,
		service:     service,
	}
}

// Dashboard handles GET /reports/dashboard.
func (h *ReportsHandler) Dashboard(c *gin.Context) {
	board, err := h.service.Dashboard(c.Request.Context(), time.Now())
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, board)
}

// MonthlyRevenue handles GET /reports/monthly-revenue?months=12.
func (h *ReportsHandler) MonthlyRevenue(c *gin.Context) {
	months := h.ParseIntQuery(c, "months", 12)

	series, err := h.service.MonthlyRevenue(c.Request.Context(), time.Now(), months)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"months": series})
}
