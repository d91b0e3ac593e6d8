// Package dto provides Data Transfer Objects for API requests/responses.
package dto

import (
	"time"

	"festa/internal/core/entity"
	"festa/internal/core/id"
)

// --- List Response ---

// ListResponse wraps list results with pagination.
type ListResponse struct {
	Items      any   `json:"items"`
	TotalCount int64 `json:"totalCount"`
	Limit      int   `json:"limit"`
	Offset     int   `json:"offset"`
}

// --- Base DTOs ---

// BaseResponse contains common response fields.
type BaseResponse struct {
	ID           string            `json:"id"`
	DeletionMark bool              `json:"deletionMark"`
	Version      int               `json:"version"`
	Attributes   entity.Attributes `json:"attributes,omitempty"`
}

// FromBaseCatalog creates BaseResponse from entity.BaseCatalog.
func FromBaseCatalog(b entity.BaseCatalog) BaseResponse {
	return BaseResponse{
		ID:           b.ID.String(),
		DeletionMark: b.DeletionMark,
		Version:      b.Version,
		Attributes:   b.Attributes,
	}
}

// DocumentResponse contains common document response fields.
type DocumentResponse struct {
	BaseResponse
	Number    string    `json:"number"`
	Date      time.Time `json:"date"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromDocument creates DocumentResponse from entity.Document.
func FromDocument(d entity.Document) DocumentResponse {
	return DocumentResponse{
		BaseResponse: BaseResponse{
			ID:           d.ID.String(),
			DeletionMark: d.DeletionMark,
			Version:      d.Version,
			Attributes:   d.Attributes,
		},
		Number:    d.Number,
		Date:      d.Date,
		Comment:   d.Comment,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// --- Address ---

// AddressDTO mirrors the Brazilian postal address trait.
type AddressDTO struct {
	Street   string `json:"street,omitempty"`
	NumberEx string `json:"numberEx,omitempty"`
	District string `json:"district,omitempty"`
	City     string `json:"city,omitempty"`
	State    string `json:"state,omitempty"`
	Cep      string `json:"cep,omitempty"`
}

// FromAddress creates AddressDTO from the entity trait.
func FromAddress(a entity.AddressAware) AddressDTO {
	return AddressDTO{
		Street:   a.Street,
		NumberEx: a.NumberEx,
		District: a.District,
		City:     a.City,
		State:    a.State,
		Cep:      a.Cep,
	}
}

// ApplyTo copies the DTO onto the entity trait.
func (a AddressDTO) ApplyTo(dst *entity.AddressAware) {
	dst.Street = a.Street
	dst.NumberEx = a.NumberEx
	dst.District = a.District
	dst.City = a.City
	dst.State = a.State
	dst.Cep = a.Cep
}

// --- ID Response ---

// IDResponse for create operations.
type IDResponse struct {
	ID string `json:"id"`
}

// NewIDResponse creates ID response.
func NewIDResponse(i id.ID) IDResponse {
	return IDResponse{ID: i.String()}
}

// --- Success Response ---

// SuccessResponse for operations without data.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// --- Error Response ---

// ErrorResponse for error details.
type ErrorResponse struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// --- Deletion ---

type SetDeletionMarkRequest struct {
	Marked bool `json:"marked"`
}
