package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"festa/internal/core/entity"
	"festa/internal/core/id"
)

type MockCatalog struct {
	entity.BaseCatalog
	Code  string `db:"code" json:"code"`
	Name  string `db:"name" json:"name"`
	Notes string `db:"-" json:"notes"`
}

func TestExtractDBColumnsWalksEmbeddedStructs(t *testing.T) {
	cols := ExtractDBColumns[MockCatalog]()

	expectedCols := []string{
		"id", "deletion_mark", "version", "attributes", "code", "name",
	}
	for _, expected := range expectedCols {
		assert.Contains(t, cols, expected)
	}
	assert.NotContains(t, cols, "-")
	assert.NotContains(t, cols, "notes")
}

func TestStructToMapUsesDBTags(t *testing.T) {
	cat := MockCatalog{
		BaseCatalog: entity.BaseCatalog{
			BaseEntity: entity.BaseEntity{
				ID:           id.New(),
				DeletionMark: true,
				Version:      5,
			},
		},
		Code:  "CLI-00000001",
		Name:  "Maria Silva",
		Notes: "ignored",
	}

	m := StructToMap(cat)

	assert.Equal(t, cat.ID, m["id"])
	assert.Equal(t, true, m["deletion_mark"])
	assert.Equal(t, 5, m["version"])
	assert.Equal(t, "CLI-00000001", m["code"])
	assert.Equal(t, "Maria Silva", m["name"])
	_, hasNotes := m["notes"]
	assert.False(t, hasNotes)
}

func TestStructToMapPointerReceiver(t *testing.T) {
	cat := &MockCatalog{Code: "X"}
	m := StructToMap(cat)
	assert.Equal(t, "X", m["code"])
}
