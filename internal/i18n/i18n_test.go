package i18n

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

func TestMatch(t *testing.T) {
	assert.Equal(t, language.BrazilianPortuguese, Match(""))
	assert.Equal(t, language.BrazilianPortuguese, Match("pt-BR,pt;q=0.9"))
	assert.Equal(t, language.English, Match("en-US,en;q=0.8"))
	assert.Equal(t, language.BrazilianPortuguese, Match("!!garbage"))
}

func TestText(t *testing.T) {
	assert.Equal(t, "Este campo é obrigatório.", Text(language.BrazilianPortuguese, KeyRequired))
	assert.Equal(t, "This field is required.", Text(language.English, KeyRequired))
	assert.Equal(t, "Mudar para Modo Escuro", Text(language.BrazilianPortuguese, KeyThemeTo, Text(language.BrazilianPortuguese, KeyDark)))
}

func TestFromRequest(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	assert.Equal(t, language.BrazilianPortuguese, FromRequest(r, ""))
	assert.Equal(t, language.English, FromRequest(r, "en"))

	r.Header.Set("Accept-Language", "en-GB")
	assert.Equal(t, language.English, FromRequest(r, "pt-BR"))
}

func TestRegisterFillsBothLanguages(t *testing.T) {
	b := catalog.NewBuilder()
	require.NoError(t, register(b))

	pt := message.NewPrinter(language.BrazilianPortuguese, message.Catalog(b))
	en := message.NewPrinter(language.English, message.Catalog(b))
	for _, e := range entries {
		if e.key == KeyThemeTo {
			assert.Equal(t, "Mudar para X", pt.Sprintf(e.key, "X"))
			assert.Equal(t, "Switch to X", en.Sprintf(e.key, "X"))
			continue
		}
		assert.Equal(t, e.pt, pt.Sprintf(e.key), e.key)
		assert.Equal(t, e.en, en.Sprintf(e.key), e.key)
	}
}
