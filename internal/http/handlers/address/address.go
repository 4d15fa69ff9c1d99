// Package address serves postal-code lookups to the registration form so
// the browser never calls the external service directly.
package address

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aanand-mishra/ong-site/internal/address"
	"github.com/aanand-mishra/ong-site/internal/i18n"
	"github.com/aanand-mishra/ong-site/internal/metrics"
	"github.com/aanand-mishra/ong-site/internal/utils/response"
)

// ─────────────────────────────────────────────────────────────────────────────
// Lookup handles GET /api/cep/{cep}
//
//	200 OK             { "cep": "01310-100", "endereco": "...", "bairro": "...",
//	                     "cidade": "...", "estado": "SP" }
//	400 Bad Request    the CEP does not have eight digits
//	404 Not Found      the service knows no such CEP
//	502 Bad Gateway    the service could not be reached or answered badly
//
// Error bodies carry the message shown under the CEP input.
// ─────────────────────────────────────────────────────────────────────────────
func Lookup(lookuper address.Lookuper, m *metrics.Metrics, fallback string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lang := i18n.FromRequest(r, fallback)
		cep := r.PathValue("cep")

		addr, err := lookuper.Lookup(r.Context(), cep)
		switch {
		case err == nil:
			m.AddressLookedUp("found")
			slog.Debug("cep found", slog.String("cep", addr.CEP))
			response.WriteJSON(w, http.StatusOK, addr)

		case errors.Is(err, address.ErrInvalidCEP):
			m.AddressLookedUp("invalid")
			response.WriteJSON(w, http.StatusBadRequest,
				response.Message(i18n.Text(lang, i18n.KeyCEP)))

		case errors.Is(err, address.ErrNotFound):
			m.AddressLookedUp("not_found")
			response.WriteJSON(w, http.StatusNotFound,
				response.Message(i18n.Text(lang, i18n.KeyCEPMissing)))

		default:
			m.AddressLookedUp("error")
			slog.Error("cep lookup failed",
				slog.String("cep", cep),
				slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusBadGateway,
				response.Message(i18n.Text(lang, i18n.KeyCEPFailed)))
		}
	}
}
