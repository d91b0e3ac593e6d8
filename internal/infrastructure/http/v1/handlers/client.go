package handlers

import (
	"github.com/gin-gonic/gin"

	"festa/internal/core/apperror"
	"festa/internal/domain/catalogs/client"
	"festa/internal/infrastructure/http/v1/dto"
)

// ClientHTTPHandler is the catalog handler specialized for clients.
type ClientHTTPHandler struct {
	*CatalogHandler[*client.Client, dto.CreateClientRequest, dto.UpdateClientRequest]
	service *client.Service
}

// NewClientHandler creates the client catalog handler.
func NewClientHandler(base *BaseHandler, service *client.Service) *ClientHTTPHandler {
	config := CatalogHandlerConfig[*client.Client, dto.CreateClientRequest, dto.UpdateClientRequest]{
		Service:    service.CatalogService,
		EntityName: "client",
		MapCreateDTO: func(req dto.CreateClientRequest) (*client.Client, error) {
			return req.ToEntity(), nil
		},
		MapUpdateDTO: func(req dto.UpdateClientRequest, existing *client.Client) (*client.Client, error) {
			req.ApplyTo(existing)
			return existing, nil
		},
		MapToDTO: func(c *client.Client) any {
			return dto.FromClient(c)
		},
	}

	return &ClientHTTPHandler{
		CatalogHandler: NewCatalogHandler(base, config),
		service:        service,
	}
}

// FindByTaxID handles GET /catalog/clients/by-tax-id/:taxId.
func (h *ClientHTTPHandler) FindByTaxID(c *gin.Context) {
	taxID := c.Param("taxId")
	if taxID == "" {
		h.Error(c, apperror.NewValidation("taxId is required"))
		return
	}

	found, err := h.service.FindByTaxID(c.Request.Context(), taxID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromClient(found))
}
