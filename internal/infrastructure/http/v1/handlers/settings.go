package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"festa/internal/domain/settings"
)

// SettingsHandler serves the system-wide key value store.
type SettingsHandler struct {
	*BaseHandler
	service *settings.Service
}

// NewSettingsHandler creates a new settings handler.
func NewSettingsHandler(base *BaseHandler, service *settings.Service) *SettingsHandler {
	return &SettingsHandler{
		BaseHandler: base,
		service:     service,
	}
}

// List handles GET /settings.
func (h *SettingsHandler) List(c *gin.Context) {
	all, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"settings": all})
}

// Get handles GET /settings/:key.
func (h *SettingsHandler) Get(c *gin.Context) {
	setting, err := h.service.Get(c.Request.Context(), c.Param("key"))
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, setting)
}

// Put handles PUT /settings/:key.
func (h *SettingsHandler) Put(c *gin.Context) {
	var req struct {
		Value string `json:"value"`
	}
	if !h.BindJSON(c, &req) {
		return
	}

	updatedBy := ""
	if user := h.CurrentUser(c); user != nil {
		updatedBy = user.Email
	}

	setting, err := h.service.Put(c.Request.Context(), c.Param("key"), req.Value, updatedBy)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, setting)
}

// Delete handles DELETE /settings/:key.
func (h *SettingsHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("key")); err != nil {
		h.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
