package cep

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"festa/internal/core/apperror"
)

func TestLookupSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/01001000/json/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"cep": "01001-000",
			"logradouro": "Praça da Sé",
			"bairro": "Sé",
			"localidade": "São Paulo",
			"uf": "SP"
		}`))
	}))
	defer srv.Close()

	client := NewClientWithBaseURL(srv.URL)
	addr, err := client.Lookup(context.Background(), "01001000")
	require.NoError(t, err)
	assert.Equal(t, "Praça da Sé", addr.Street)
	assert.Equal(t, "São Paulo", addr.City)
	assert.Equal(t, "SP", addr.State)
	assert.Equal(t, "01001000", addr.Cep)
}

func TestLookupUnknownCode(t *testing.T) {
	// ViaCEP signals unknown codes with 200 + erro flag, quoted or not.
	for _, body := range []string{`{"erro": true}`, `{"erro": "true"}`} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		}))

		client := NewClientWithBaseURL(srv.URL)
		_, err := client.Lookup(context.Background(), "99999999")
		require.Error(t, err)
		assert.True(t, apperror.IsNotFound(err), "body %s", body)
		srv.Close()
	}
}

func TestLookupUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClientWithBaseURL(srv.URL)
	_, err := client.Lookup(context.Background(), "01001000")
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeCepLookup, appErr.Code)
	assert.Equal(t, http.StatusBadGateway, appErr.HTTPStatus)
}

func TestLookupRejectsMalformedCode(t *testing.T) {
	client := NewClient()
	for _, code := range []string{"", "1234", "12345-678", "abcdefgh"} {
		_, err := client.Lookup(context.Background(), code)
		require.Error(t, err, "code %q", code)
		appErr, ok := apperror.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeValidation, appErr.Code)
	}
}
