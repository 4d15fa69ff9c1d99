package address

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aanand-mishra/ong-site/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViaCEP(t *testing.T, handler http.HandlerFunc) (*Client, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 2*time.Second), &calls
}

func TestLookupFound(t *testing.T) {
	client, _ := newViaCEP(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ws/01310100/json/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"cep":"01310-100","logradouro":"Avenida Paulista","bairro":"Bela Vista","localidade":"São Paulo","uf":"SP"}`))
	})

	addr, err := client.Lookup(context.Background(), "01310-100")
	require.NoError(t, err)
	assert.Equal(t, types.Address{
		CEP:      "01310-100",
		Street:   "Avenida Paulista",
		District: "Bela Vista",
		City:     "São Paulo",
		State:    "SP",
	}, addr)
}

func TestLookupNotFound(t *testing.T) {
	for _, body := range []string{`{"erro": true}`, `{"erro": "true"}`} {
		client, _ := newViaCEP(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		})

		_, err := client.Lookup(context.Background(), "99999999")
		assert.ErrorIs(t, err, ErrNotFound, "body %s", body)
	}
}

func TestLookupInvalidCEPMakesNoRequest(t *testing.T) {
	client, calls := newViaCEP(t, func(w http.ResponseWriter, r *http.Request) {})

	for _, cep := range []string{"", "0131010", "013101000", "abc"} {
		_, err := client.Lookup(context.Background(), cep)
		assert.ErrorIs(t, err, ErrInvalidCEP, "cep %q", cep)
	}
	assert.Equal(t, int32(0), calls.Load())
}

func TestLookupFailures(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		client, _ := newViaCEP(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		})
		_, err := client.Lookup(context.Background(), "01310100")
		assert.ErrorIs(t, err, ErrLookupFailed)
	})

	t.Run("bad body", func(t *testing.T) {
		client, _ := newViaCEP(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>`))
		})
		_, err := client.Lookup(context.Background(), "01310100")
		assert.ErrorIs(t, err, ErrLookupFailed)
	})

	t.Run("cancelled context", func(t *testing.T) {
		client, _ := newViaCEP(t, func(w http.ResponseWriter, r *http.Request) {})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := client.Lookup(ctx, "01310100")
		assert.ErrorIs(t, err, ErrLookupFailed)
	})
}
