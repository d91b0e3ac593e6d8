package dto

import (
	"festa/internal/domain/catalogs/client"
)

// ClientResponse contains client fields.
type ClientResponse struct {
	BaseResponse
	Code          string     `json:"code"`
	Name          string     `json:"name"`
	Kind          string     `json:"kind"`
	TaxID         *string    `json:"taxId,omitempty"`
	CompanyName   *string    `json:"companyName,omitempty"`
	ContactPerson *string    `json:"contactPerson,omitempty"`
	Phone         *string    `json:"phone,omitempty"`
	Email         *string    `json:"email,omitempty"`
	Notes         *string    `json:"notes,omitempty"`
	Address       AddressDTO `json:"address"`
}

// FromClient creates ClientResponse from the entity.
func FromClient(c *client.Client) ClientResponse {
	return ClientResponse{
		BaseResponse:  FromBaseCatalog(c.BaseCatalog),
		Code:          c.Code,
		Name:          c.Name,
		Kind:          string(c.Kind),
		TaxID:         c.TaxID,
		CompanyName:   c.CompanyName,
		ContactPerson: c.ContactPerson,
		Phone:         c.Phone,
		Email:         c.Email,
		Notes:         c.Notes,
		Address:       FromAddress(c.AddressAware),
	}
}

// CreateClientRequest for creating clients.
type CreateClientRequest struct {
	Code          string     `json:"code"`
	Name          string     `json:"name" binding:"required"`
	Kind          string     `json:"kind" binding:"required,oneof=individual corporate"`
	TaxID         *string    `json:"taxId"`
	CompanyName   *string    `json:"companyName"`
	ContactPerson *string    `json:"contactPerson"`
	Phone         *string    `json:"phone"`
	Email         *string    `json:"email"`
	Notes         *string    `json:"notes"`
	Address       AddressDTO `json:"address"`
}

// ToEntity maps the request to a new client.
func (r CreateClientRequest) ToEntity() *client.Client {
	c := client.New(r.Code, r.Name, client.Kind(r.Kind))
	c.TaxID = r.TaxID
	c.CompanyName = r.CompanyName
	c.ContactPerson = r.ContactPerson
	c.Phone = r.Phone
	c.Email = r.Email
	c.Notes = r.Notes
	r.Address.ApplyTo(&c.AddressAware)
	return c
}

// UpdateClientRequest for updating clients.
type UpdateClientRequest struct {
	Name          *string     `json:"name"`
	Kind          *string     `json:"kind"`
	TaxID         *string     `json:"taxId"`
	CompanyName   *string     `json:"companyName"`
	ContactPerson *string     `json:"contactPerson"`
	Phone         *string     `json:"phone"`
	Email         *string     `json:"email"`
	Notes         *string     `json:"notes"`
	Address       *AddressDTO `json:"address"`
	Version       int         `json:"version" binding:"required,min=1"`
}

// ApplyTo maps changed fields onto the existing client.
func (r UpdateClientRequest) ApplyTo(c *client.Client) {
	if r.Name != nil {
		c.Name = *r.Name
	}
	if r.Kind != nil {
		c.Kind = client.Kind(*r.Kind)
	}
	if r.TaxID != nil {
		c.TaxID = r.TaxID
	}
	if r.CompanyName != nil {
		c.CompanyName = r.CompanyName
	}
	if r.ContactPerson != nil {
		c.ContactPerson = r.ContactPerson
	}
	if r.Phone != nil {
		c.Phone = r.Phone
	}
	if r.Email != nil {
		c.Email = r.Email
	}
	if r.Notes != nil {
		c.Notes = r.Notes
	}
	if r.Address != nil {
		r.Address.ApplyTo(&c.AddressAware)
	}
	c.Version = r.Version
}
