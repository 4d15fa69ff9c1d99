// Package address looks up a street address from a Brazilian postal code
// (CEP) using the ViaCEP web service.
//
// A lookup is a single GET; there is no retry and no cache. Callers show
// the returned error as an inline message next to the CEP input.
package address

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/aanand-mishra/ong-site/internal/types"
	"github.com/aanand-mishra/ong-site/internal/validation"
)

// DefaultBaseURL is the public ViaCEP endpoint.
const DefaultBaseURL = "https://viacep.com.br"

// CEPLength is the number of digits of a complete postal code.
const CEPLength = 8

var (
	// ErrInvalidCEP means the input does not have exactly eight digits; no
	// request is made.
	ErrInvalidCEP = errors.New("cep must have 8 digits")

	// ErrNotFound means the service answered but knows no such CEP.
	ErrNotFound = errors.New("cep not found")

	// ErrLookupFailed covers transport errors, non-2xx answers and
	// undecodable bodies.
	ErrLookupFailed = errors.New("cep lookup failed")
)

// Lookuper resolves a CEP into an address.
type Lookuper interface {
	Lookup(ctx context.Context, cep string) (types.Address, error)
}

// Client is a ViaCEP Lookuper.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient returns a Client for baseURL ("" means DefaultBaseURL). A
// zero timeout leaves requests bounded only by ctx.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// viaCEPResponse mirrors the fields of the ViaCEP JSON body we use. A
// missing CEP comes back as 200 with {"erro": true}; newer deployments
// send the flag as the string "true".
type viaCEPResponse struct {
	CEP        string          `json:"cep"`
	Logradouro string          `json:"logradouro"`
	Bairro     string          `json:"bairro"`
	Localidade string          `json:"localidade"`
	UF         string          `json:"uf"`
	Erro       json.RawMessage `json:"erro"`
}

func (r viaCEPResponse) notFound() bool {
	switch strings.Trim(string(r.Erro), `"`) {
	case "true":
		return true
	default:
		return false
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Lookup fetches the address for cep. Formatting in cep is ignored.
//
// Errors:
//
//	ErrInvalidCEP      not eight digits, nothing was requested
//	ErrNotFound        the service has no such CEP
//	ErrLookupFailed    network, status or decoding failure (wrapped)
//
// ─────────────────────────────────────────────────────────────────────────────
func (c *Client) Lookup(ctx context.Context, cep string) (types.Address, error) {
	digits := validation.Digits(cep)
	if len(digits) != CEPLength {
		return types.Address{}, ErrInvalidCEP
	}

	url := fmt.Sprintf("%s/ws/%s/json/", c.BaseURL, digits)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return types.Address{}, fmt.Errorf("%w: build request: %v", ErrLookupFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	client := c.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return types.Address{}, fmt.Errorf("%w: %v", ErrLookupFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return types.Address{}, fmt.Errorf("%w: status %d", ErrLookupFailed, resp.StatusCode)
	}

	var body viaCEPResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return types.Address{}, fmt.Errorf("%w: decode: %v", ErrLookupFailed, err)
	}
	if body.notFound() {
		return types.Address{}, ErrNotFound
	}

	return types.Address{
		CEP:      validation.MaskCEP(digits),
		Street:   body.Logradouro,
		District: body.Bairro,
		City:     body.Localidade,
		State:    body.UF,
	}, nil
}
