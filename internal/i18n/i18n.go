// Package i18n holds the user-facing copy of the site and picks the
// language for a request.
//
// Messages are registered with golang.org/x/text/message under stable
// keys ("validation.required", "cep.not_found", ...). Brazilian
// Portuguese is the site's own language and the default; English is the
// only other supported language.
package i18n

import (
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys shared by the validation, address and theme packages.
const (
	KeyRequired   = "validation.required"
	KeyEmail      = "validation.email"
	KeyAge        = "validation.age"
	KeyCPF        = "validation.cpf"
	KeyPhone      = "validation.phone"
	KeyCEP        = "validation.cep"
	KeyCEPMissing = "cep.not_found"
	KeyCEPFailed  = "cep.failed"
	KeyPageFailed = "page.failed"
	KeyLoading    = "page.loading"
	KeyThemeTo    = "theme.switch_to"
	KeyLight      = "theme.light"
	KeyDark       = "theme.dark"
	KeyContrast   = "theme.contrast"
	KeySubmitted  = "form.submitted"
	KeyInvalid    = "form.invalid"
)

var (
	supported = []language.Tag{language.BrazilianPortuguese, language.English}
	matcher   = language.NewMatcher(supported)
)

type entry struct {
	key string
	pt  string
	en  string
}

var entries = []entry{
	{KeyRequired, "Este campo é obrigatório.", "This field is required."},
	{KeyEmail, "Por favor, insira um e-mail válido.", "Please enter a valid e-mail."},
	{KeyAge, "Você deve ter pelo menos 18 anos.", "You must be at least 18 years old."},
	{KeyCPF, "CPF inválido. Verifique os dígitos.", "Invalid CPF. Check the digits."},
	{KeyPhone, "Telefone inválido.", "Invalid phone number."},
	{KeyCEP, "CEP inválido.", "Invalid postal code."},
	{KeyCEPMissing, "CEP não encontrado.", "Postal code not found."},
	{KeyCEPFailed, "Erro ao buscar CEP.", "Could not look up the postal code."},
	{KeyPageFailed, "Erro ao carregar a página.", "Could not load the page."},
	{KeyLoading, "Carregando...", "Loading..."},
	{KeyThemeTo, "Mudar para %s", "Switch to %s"},
	{KeyLight, "Modo Claro", "Light Mode"},
	{KeyDark, "Modo Escuro", "Dark Mode"},
	{KeyContrast, "Modo Alto Contraste", "High Contrast Mode"},
	{KeySubmitted, "Cadastro enviado com sucesso!", "Registration sent successfully!"},
	{KeyInvalid, "Formulário inválido. Verifique os erros.", "The form has errors. Please review them."},
}

// messages is the site's catalog; printers never consult the global one.
var messages = catalog.NewBuilder(catalog.Fallback(language.BrazilianPortuguese))

func init() {
	if err := register(messages); err != nil {
		panic(err)
	}
}

// register adds every entry to b in both languages.
func register(b *catalog.Builder) error {
	for _, e := range entries {
		if err := b.SetString(language.BrazilianPortuguese, e.key, e.pt); err != nil {
			return fmt.Errorf("i18n: %s (pt-BR): %w", e.key, err)
		}
		if err := b.SetString(language.English, e.key, e.en); err != nil {
			return fmt.Errorf("i18n: %s (en): %w", e.key, err)
		}
	}
	return nil
}

// Default is the language used when nothing better matches.
func Default() language.Tag {
	return supported[0]
}

// Supported returns the languages that have a full catalog.
func Supported() []language.Tag {
	return append([]language.Tag(nil), supported...)
}

// Match maps an arbitrary tag string onto a supported language.
func Match(value string) language.Tag {
	value = strings.TrimSpace(value)
	if value == "" {
		return Default()
	}
	tags, _, err := language.ParseAcceptLanguage(value)
	if err != nil || len(tags) == 0 {
		return Default()
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return Default()
	}
	return supported[index]
}

// FromRequest picks the language for r from its Accept-Language header,
// falling back to fallback (or the default) when the header is missing.
func FromRequest(r *http.Request, fallback string) language.Tag {
	if r != nil {
		if accept := r.Header.Get("Accept-Language"); strings.TrimSpace(accept) != "" {
			return Match(accept)
		}
	}
	if fallback != "" {
		return Match(fallback)
	}
	return Default()
}

// Printer returns a message printer for tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(messages))
}

// Text translates key into tag's language.
func Text(tag language.Tag, key string, args ...any) string {
	return Printer(tag).Sprintf(key, args...)
}
