package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"festa/internal/infrastructure/cep"
)

// CepHandler proxies CEP lookups to ViaCEP.
type CepHandler struct {
	*BaseHandler
	client *cep.Client
}

// NewCepHandler creates a new CEP lookup handler.
func NewCepHandler(base *BaseHandler, client *cep.Client) *CepHandler {
	return &CepHandler{
		BaseHandler: base,
		client:      client,
	}
}

// Lookup handles GET /cep/:code.
func (h *CepHandler) Lookup(c *gin.Context) {
	address, err := h.client.Lookup(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, address)
}
