// Package client provides the Client catalog.
// Clients are the people and companies that book events.
package client

import (
	"context"
	"regexp"

	"festa/internal/core/apperror"
	"festa/internal/core/entity"
)

// Pre-compiled regex patterns for validation (performance optimization)
var (
	digitsOnlyRE = regexp.MustCompile(`\D`)
	emailRE      = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// Kind defines whether the client is a person or a company.
// The contract template is selected by this field.
type Kind string

const (
	KindIndividual Kind = "individual" // pessoa fisica, CPF
	KindCorporate  Kind = "corporate"  // pessoa juridica, CNPJ
)

// Client represents a customer booking events.
type Client struct {
	entity.Catalog
	entity.AddressAware

	// Kind selects individual (CPF) vs corporate (CNPJ) handling
	Kind Kind `db:"kind" json:"kind"`

	// TaxID is the CPF (11 digits) or CNPJ (14 digits), digits only or masked
	TaxID *string `db:"tax_id" json:"taxId,omitempty"`

	// CompanyName is the registered name for corporate clients
	CompanyName *string `db:"company_name" json:"companyName,omitempty"`

	// ContactPerson is who signs for a corporate client
	ContactPerson *string `db:"contact_person" json:"contactPerson,omitempty"`

	Phone *string `db:"phone" json:"phone,omitempty"`
	Email *string `db:"email" json:"email,omitempty"`

	// Notes is a free-form comment
	Notes *string `db:"notes" json:"notes,omitempty"`
}

// New creates a new Client with required fields.
func New(code, name string, kind Kind) *Client {
	return &Client{
		Catalog: entity.NewCatalog(code, name),
		Kind:    kind,
	}
}

// Validate implements entity.Validatable interface.
func (c *Client) Validate(ctx context.Context) error {
	if err := c.Catalog.Validate(ctx); err != nil {
		return err
	}

	if !isValidKind(c.Kind) {
		return apperror.NewValidation("invalid client kind").
			WithDetail("field", "kind").
			WithDetail("value", string(c.Kind))
	}

	if c.TaxID != nil && *c.TaxID != "" {
		if err := validateTaxID(*c.TaxID, c.Kind); err != nil {
			return err
		}
	}

	if c.Email != nil && *c.Email != "" && !emailRE.MatchString(*c.Email) {
		return apperror.NewValidation("invalid email format").
			WithDetail("field", "email")
	}

	return c.ValidateAddress(ctx)
}

// IsCorporate returns true when the corporate contract template applies.
func (c *Client) IsCorporate() bool {
	return c.Kind == KindCorporate
}

// DisplayName is the name printed on contracts: the registered company
// name for corporate clients when present, the person's name otherwise.
func (c *Client) DisplayName() string {
	if c.IsCorporate() && c.CompanyName != nil && *c.CompanyName != "" {
		return *c.CompanyName
	}
	return c.Name
}

// --- Validation Helpers ---

func isValidKind(k Kind) bool {
	return k == KindIndividual || k == KindCorporate
}

func validateTaxID(taxID string, kind Kind) error {
	cleaned := digitsOnlyRE.ReplaceAllString(taxID, "")

	switch kind {
	case KindIndividual:
		// CPF: 11 digits
		if len(cleaned) != 11 {
			return apperror.NewValidation("CPF must contain 11 digits").
				WithDetail("field", "taxId")
		}
	case KindCorporate:
		// CNPJ: 14 digits
		if len(cleaned) != 14 {
			return apperror.NewValidation("CNPJ must contain 14 digits").
				WithDetail("field", "taxId")
		}
	}

	return nil
}
