// Package cep looks up Brazilian postal codes against the public ViaCEP
// service. Lookups are a convenience for the address form; failures are
// surfaced as a 502-coded error the client treats as non-fatal.
package cep

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"festa/internal/core/apperror"
	"festa/pkg/logger"
)

const defaultBaseURL = "https://viacep.com.br/ws"

var cepRE = regexp.MustCompile(`^\d{8}$`)

// Address is the normalized lookup result.
type Address struct {
	Cep      string `json:"cep"`
	Street   string `json:"street"`
	District string `json:"district"`
	City     string `json:"city"`
	State    string `json:"state"`
}

// viaCepResponse mirrors the upstream payload.
type viaCepResponse struct {
	Cep        string   `json:"cep"`
	Logradouro string   `json:"logradouro"`
	Bairro     string   `json:"bairro"`
	Localidade string   `json:"localidade"`
	UF         string   `json:"uf"`
	Erro       flexBool `json:"erro"`
}

// flexBool tolerates both the bare and the quoted boolean ViaCEP has
// shipped over the years for the "erro" field.
type flexBool bool

func (b *flexBool) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	*b = s == "true"
	return nil
}

// Client queries ViaCEP.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a lookup client with a short timeout. The lookup sits
// on the interactive path of the address form, so it fails fast.
func NewClient() *Client {
	return &Client{
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 5 * time.Second},
	}
}

// NewClientWithBaseURL is used by tests to point at a stub server.
func NewClientWithBaseURL(baseURL string) *Client {
	c := NewClient()
	c.baseURL = baseURL
	return c
}

// Lookup resolves an 8-digit CEP to an address.
func (c *Client) Lookup(ctx context.Context, code string) (*Address, error) {
	if !cepRE.MatchString(code) {
		return nil, apperror.NewValidation("cep must be 8 digits").WithDetail("cep", code)
	}

	url := fmt.Sprintf("%s/%s/json/", c.baseURL, code)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperror.NewCepLookup(code, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		logger.Warn(ctx, "cep lookup failed", "cep", code, "error", err)
		return nil, apperror.NewCepLookup(code, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperror.NewCepLookup(code, fmt.Errorf("upstream status %d", resp.StatusCode))
	}

	var payload viaCepResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, apperror.NewCepLookup(code, err)
	}

	// ViaCEP answers 200 with {"erro": "true"} for unknown codes.
	if payload.Erro {
		return nil, apperror.NewNotFound("cep", code)
	}

	return &Address{
		Cep:      code,
		Street:   payload.Logradouro,
		District: payload.Bairro,
		City:     payload.Localidade,
		State:    payload.UF,
	}, nil
}
