// Package reference provides the consolidated settings catalog: small
// value lists (event categories, employee roles, skills) that used to be
// separate near-identical collections share one table keyed by kind.
package reference

import (
	"context"

	"festa/internal/core/apperror"
	"festa/internal/core/entity"
)

// Kind distinguishes the value lists sharing the reference table.
type Kind string

const (
	KindEventCategory Kind = "event_category"
	KindEmployeeRole  Kind = "employee_role"
	KindSkill         Kind = "skill"
)

// ValidKinds lists every accepted reference kind, in display order.
var ValidKinds = []Kind{KindEventCategory, KindEmployeeRole, KindSkill}

// Value is one entry of a reference list.
type Value struct {
	entity.Catalog

	Kind Kind `db:"kind" json:"kind"`

	// Position orders values inside their list
	Position int `db:"position" json:"position"`
}

// New creates a reference Value.
func New(kind Kind, code, name string) *Value {
	return &Value{
		Catalog: entity.NewCatalog(code, name),
		Kind:    kind,
	}
}

// ParseKind validates a kind string from the URL.
func ParseKind(s string) (Kind, error) {
	for _, k := range ValidKinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", apperror.NewValidation("unknown reference kind").
		WithDetail("kind", s)
}

// Validate implements entity.Validatable interface.
func (v *Value) Validate(ctx context.Context) error {
	if err := v.Catalog.Validate(ctx); err != nil {
		return err
	}
	if _, err := ParseKind(string(v.Kind)); err != nil {
		return err
	}
	return nil
}
