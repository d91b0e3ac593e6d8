package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"festa/internal/core/apperror"
)

func strPtr(s string) *string { return &s }

func TestValidateTaxID(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name    string
		kind    Kind
		taxID   string
		wantErr bool
	}{
		{"cpf bare digits", KindIndividual, "52998224725", false},
		{"cpf masked", KindIndividual, "529.982.247-25", false},
		{"cpf too short", KindIndividual, "5299822472", true},
		{"cpf too long", KindIndividual, "529982247250", true},
		{"cnpj bare digits", KindCorporate, "11222333000181", false},
		{"cnpj masked", KindCorporate, "11.222.333/0001-81", false},
		{"cnpj with cpf length", KindCorporate, "52998224725", true},
		{"letters only strip to nothing", KindIndividual, "abc", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := New("CLI-001", "Cliente Teste", tc.kind)
			c.TaxID = strPtr(tc.taxID)

			err := c.Validate(ctx)
			if tc.wantErr {
				require.Error(t, err)
				appErr, ok := apperror.AsAppError(err)
				require.True(t, ok)
				assert.Equal(t, apperror.CodeValidation, appErr.Code)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateOptionalFields(t *testing.T) {
	ctx := context.Background()

	t.Run("absent tax id is fine", func(t *testing.T) {
		c := New("CLI-001", "Maria Souza", KindIndividual)
		assert.NoError(t, c.Validate(ctx))
	})

	t.Run("name required", func(t *testing.T) {
		c := New("CLI-001", "", KindIndividual)
		assert.Error(t, c.Validate(ctx))
	})

	t.Run("kind must be known", func(t *testing.T) {
		c := New("CLI-001", "Maria Souza", Kind("partnership"))
		assert.Error(t, c.Validate(ctx))
	})

	t.Run("bad email rejected", func(t *testing.T) {
		c := New("CLI-001", "Maria Souza", KindIndividual)
		c.Email = strPtr("not-an-email")
		assert.Error(t, c.Validate(ctx))

		c.Email = strPtr("maria@example.com.br")
		assert.NoError(t, c.Validate(ctx))
	})

	t.Run("cep checked when present", func(t *testing.T) {
		c := New("CLI-001", "Maria Souza", KindIndividual)
		c.Cep = "13010-111"
		assert.NoError(t, c.Validate(ctx))

		c.Cep = "13010"
		assert.Error(t, c.Validate(ctx))
	})
}

func TestDisplayName(t *testing.T) {
	individual := New("CLI-001", "Maria Souza", KindIndividual)
	assert.Equal(t, "Maria Souza", individual.DisplayName())
	assert.False(t, individual.IsCorporate())

	corporate := New("CLI-002", "Tech Brasil", KindCorporate)
	assert.Equal(t, "Tech Brasil", corporate.DisplayName())

	corporate.CompanyName = strPtr("Tech Brasil Ltda")
	assert.Equal(t, "Tech Brasil Ltda", corporate.DisplayName())
	assert.True(t, corporate.IsCorporate())
}
