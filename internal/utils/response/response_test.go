package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aanand-mishra/ong-site/internal/i18n"
	"github.com/aanand-mishra/ong-site/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, WriteJSON(rec, http.StatusTeapot, GeneralError(errors.New("boom"))))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"error","error":"boom"}`, rec.Body.String())
}

func TestValidationErrorTranslates(t *testing.T) {
	errs := []validation.FieldError{
		{Field: "email", Rule: validation.RuleRequired, Message: i18n.KeyRequired},
		{Field: "cpf", Rule: validation.RuleCPF, Message: i18n.KeyCPF},
	}

	pt := ValidationError(errs, language.BrazilianPortuguese)
	assert.Equal(t, "Formulário inválido. Verifique os erros.", pt.Error)
	assert.Equal(t, "Este campo é obrigatório.", pt.Fields["email"])

	en := ValidationError(errs, language.English)
	b, err := json.Marshal(en)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"status": "error",
		"error": "The form has errors. Please review them.",
		"fields": {
			"email": "This field is required.",
			"cpf": "Invalid CPF. Check the digits."
		}
	}`, string(b))
}
