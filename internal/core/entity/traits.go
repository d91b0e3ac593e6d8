package entity

import (
	"context"
	"strings"

	"festa/internal/core/apperror"
)

// AddressAware is a trait for entities that carry a Brazilian postal address.
// Used for composition in models like Client and Event.
type AddressAware struct {
	Street   string `db:"street" json:"street,omitempty"`
	NumberEx string `db:"number_ex" json:"numberEx,omitempty"` // house number plus complement
	District string `db:"district" json:"district,omitempty"`
	City     string `db:"city" json:"city,omitempty"`
	State    string `db:"state" json:"state,omitempty"` // two-letter UF
	Cep      string `db:"cep" json:"cep,omitempty"`
}

// NormalizeCep strips the common "00000-000" mask down to digits.
func NormalizeCep(cep string) string {
	var b strings.Builder
	for _, r := range cep {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidateAddress checks the postal code format when one is present.
// Every address field is optional; a partial address is a normal state.
func (a *AddressAware) ValidateAddress(ctx context.Context) error {
	if a.Cep == "" {
		return nil
	}
	if len(NormalizeCep(a.Cep)) != 8 {
		return apperror.NewValidation("CEP must contain 8 digits").
			WithDetail("field", "cep")
	}
	return nil
}

// FullAddress renders the address as a single line for documents.
func (a *AddressAware) FullAddress() string {
	parts := make([]string, 0, 5)
	street := a.Street
	if a.NumberEx != "" {
		street = strings.TrimSpace(street + ", " + a.NumberEx)
	}
	for _, p := range []string{street, a.District, a.City, a.State} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	line := strings.Join(parts, " - ")
	if a.Cep != "" {
		line = strings.TrimSpace(line + " CEP " + a.Cep)
	}
	return line
}
