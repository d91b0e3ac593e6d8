package dto

import (
	"festa/internal/domain/catalogs/reference"
)

// ReferenceValueResponse contains reference value fields.
type ReferenceValueResponse struct {
	BaseResponse
	Code     string `json:"code"`
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	Position int    `json:"position"`
}

// FromReferenceValue creates ReferenceValueResponse from the entity.
func FromReferenceValue(v *reference.Value) ReferenceValueResponse {
	return ReferenceValueResponse{
		BaseResponse: FromBaseCatalog(v.BaseCatalog),
		Code:         v.Code,
		Name:         v.Name,
		Kind:         string(v.Kind),
		Position:     v.Position,
	}
}

// CreateReferenceValueRequest for creating reference values.
type CreateReferenceValueRequest struct {
	Code     string `json:"code"`
	Name     string `json:"name" binding:"required"`
	Position int    `json:"position"`
}

// ToEntity maps the request to a new reference value of the given kind.
func (r CreateReferenceValueRequest) ToEntity(kind reference.Kind) *reference.Value {
	v := reference.New(kind, r.Code, r.Name)
	v.Position = r.Position
	return v
}

// UpdateReferenceValueRequest for updating reference values.
type UpdateReferenceValueRequest struct {
	Name     *string `json:"name"`
	Position *int    `json:"position"`
	Version  int     `json:"version" binding:"required,min=1"`
}

// ApplyTo maps changed fields onto the existing value.
func (r UpdateReferenceValueRequest) ApplyTo(v *reference.Value) {
	if r.Name != nil {
		v.Name = *r.Name
	}
	if r.Position != nil {
		v.Position = *r.Position
	}
	v.Version = r.Version
}
