package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"festa/internal/core/apperror"
	"festa/internal/core/id"
	"festa/internal/domain/catalogs/client"
	"festa/internal/domain/contract"
	"festa/internal/domain/documents/event"
	"festa/internal/domain/settings"
)

// ContractHandler renders the service contract PDF for an event booking.
type ContractHandler struct {
	*BaseHandler
	events   *event.Service
	clients  *client.Service
	settings *settings.Service
}

// NewContractHandler creates a new contract handler.
func NewContractHandler(
	base *BaseHandler,
	events *event.Service,
	clients *client.Service,
	settingsSvc *settings.Service,
) *ContractHandler {
	return &ContractHandler{
		BaseHandler: base,
		events:      events,
		clients:     clients,
		settings:    settingsSvc,
	}
}

// Download handles GET /document/events/:id/contract.
// Responds with the assembled contract as a PDF attachment.
func (h *ContractHandler) Download(c *gin.Context) {
	ctx := c.Request.Context()

	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	doc, err := h.events.GetByID(ctx, docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	cli, err := h.clients.GetByID(ctx, doc.ClientID)
	if err != nil {
		h.Error(c, err)
		return
	}

	kind := contract.KindIndividual
	if cli.IsCorporate() {
		kind = contract.KindCorporate
	}

	data := contract.Data{
		CompanyName:      h.settings.StringOr(ctx, settings.KeyCompanyName, "Festa Eventos"),
		CompanyTaxID:     h.settings.StringOr(ctx, settings.KeyCompanyTaxID, ""),
		FooterNote:       h.settings.StringOr(ctx, settings.KeyContractFooter, ""),
		ClientName:       cli.Name,
		EventDate:        doc.Date,
		DurationMinutes:  doc.DurationMinutes,
		EndTime:          doc.EndsAt,
		Venue:            doc.FullAddress(),
		ContractValue:    doc.ContractValue,
		EntryPayment:     doc.EntryPayment,
		InstallmentCount: doc.InstallmentCount,
	}
	if cli.TaxID != nil {
		data.ClientTaxID = *cli.TaxID
	}
	if cli.ContactPerson != nil {
		data.ContactPerson = *cli.ContactPerson
	}
	data.ClientAddress = cli.FullAddress()
	for _, line := range doc.Lines {
		data.Items = append(data.Items, line.Description)
	}

	rendered := contract.Assemble(data, kind)

	pdf, err := contract.RenderPDF(rendered)
	if err != nil {
		h.Error(c, apperror.NewInternal(err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", rendered.Filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
