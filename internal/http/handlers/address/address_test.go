package address

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aanand-mishra/ong-site/internal/address"
	"github.com/aanand-mishra/ong-site/internal/metrics"
	"github.com/aanand-mishra/ong-site/internal/types"
	"github.com/aanand-mishra/ong-site/internal/utils/response"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lookupFunc adapts a function to address.Lookuper.
type lookupFunc func(ctx context.Context, cep string) (types.Address, error)

func (f lookupFunc) Lookup(ctx context.Context, cep string) (types.Address, error) {
	return f(ctx, cep)
}

func TestLookup(t *testing.T) {
	paulista := types.Address{
		CEP:      "01310-100",
		Street:   "Avenida Paulista",
		District: "Bela Vista",
		City:     "São Paulo",
		State:    "SP",
	}

	tests := []struct {
		name    string
		err     error
		status  int
		message string
		result  string
	}{
		{"found", nil, http.StatusOK, "", "found"},
		{"invalid", address.ErrInvalidCEP, http.StatusBadRequest, "CEP inválido.", "invalid"},
		{"missing", address.ErrNotFound, http.StatusNotFound, "CEP não encontrado.", "not_found"},
		{"upstream", fmt.Errorf("%w: status 500", address.ErrLookupFailed), http.StatusBadGateway, "Erro ao buscar CEP.", "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := metrics.New()
			var got string
			h := Lookup(lookupFunc(func(_ context.Context, cep string) (types.Address, error) {
				got = cep
				return paulista, tt.err
			}), m, "pt-BR")

			req := httptest.NewRequest(http.MethodGet, "/api/cep/01310100", nil)
			req.SetPathValue("cep", "01310100")
			rec := httptest.NewRecorder()
			h(rec, req)

			assert.Equal(t, "01310100", got)
			require.Equal(t, tt.status, rec.Code)
			assert.Equal(t, 1.0, testutil.ToFloat64(m.AddressLookups.WithLabelValues(tt.result)))

			if tt.err == nil {
				var addr types.Address
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&addr))
				assert.Equal(t, paulista, addr)
				return
			}

			var body response.Response
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, tt.message, body.Error)
		})
	}
}

func TestLookupEnglishMessage(t *testing.T) {
	h := Lookup(lookupFunc(func(context.Context, string) (types.Address, error) {
		return types.Address{}, address.ErrNotFound
	}), metrics.New(), "pt-BR")

	req := httptest.NewRequest(http.MethodGet, "/api/cep/99999999", nil)
	req.SetPathValue("cep", "99999999")
	req.Header.Set("Accept-Language", "en")
	rec := httptest.NewRecorder()
	h(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Postal code not found.")
}
