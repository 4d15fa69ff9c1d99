// Package response provides helpers for writing consistent JSON HTTP
// responses.
//
// Error responses always look like:
//
//	{ "status": "error", "error": "..." }
//
// and validation failures add the translated message of each field:
//
//	{ "status": "error", "error": "...", "fields": { "cpf": "CPF inválido. ..." } }
package response

import (
	"encoding/json"
	"net/http"

	"github.com/aanand-mishra/ong-site/internal/i18n"
	"github.com/aanand-mishra/ong-site/internal/validation"
	"golang.org/x/text/language"
)

// Response is the standard envelope returned for error cases.
type Response struct {
	Status string            `json:"status"`
	Error  string            `json:"error,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}

// Status string constants.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// WriteJSON encodes data as the body of a status response. Headers must
// be set before WriteHeader; anything set afterwards is ignored.
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// GeneralError wraps any Go error into the standard Response shape.
func GeneralError(err error) Response {
	return Response{
		Status: StatusError,
		Error:  err.Error(),
	}
}

// Message wraps an already user-facing message into the Response shape.
func Message(msg string) Response {
	return Response{
		Status: StatusError,
		Error:  msg,
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// ValidationError turns the failing fields of a form into a Response,
// translating each field's message into lang.
//
// Example output:
//
//	{ "status": "error", "error": "Formulário inválido. Verifique os erros.",
//	  "fields": { "email": "Este campo é obrigatório." } }
//
// ─────────────────────────────────────────────────────────────────────────────
func ValidationError(errs []validation.FieldError, lang language.Tag) Response {
	fields := make(map[string]string, len(errs))
	for _, e := range errs {
		fields[e.Field] = i18n.Text(lang, e.Message)
	}

	return Response{
		Status: StatusError,
		Error:  i18n.Text(lang, i18n.KeyInvalid),
		Fields: fields,
	}
}
