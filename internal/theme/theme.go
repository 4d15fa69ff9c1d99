// Package theme implements the accessibility theme switcher: three
// themes cycled in a fixed order, remembered in a cookie and applied as
// the data-theme attribute of the <html> element when the page is
// rendered, so the first paint already uses the right colours.
package theme

import (
	"net/http"
	"time"

	"github.com/aanand-mishra/ong-site/internal/i18n"
	"golang.org/x/text/language"
)

// Theme is one of the site's colour schemes.
type Theme string

const (
	Light    Theme = "light"
	Dark     Theme = "dark"
	Contrast Theme = "contrast"
)

// CookieName is the key the preference is stored under.
const CookieName = "theme-preference"

// PrefersColorSchemeHeader is the client hint carrying the system
// colour preference.
const PrefersColorSchemeHeader = "Sec-CH-Prefers-Color-Scheme"

// cycle is the order themes rotate in. The first entry is the default.
var cycle = []Theme{Light, Dark, Contrast}

var labels = map[Theme]string{
	Light:    i18n.KeyLight,
	Dark:     i18n.KeyDark,
	Contrast: i18n.KeyContrast,
}

// All returns the themes in cycle order.
func All() []Theme {
	return append([]Theme(nil), cycle...)
}

// Parse returns the theme named s, or Light when s is not a known theme.
func Parse(s string) Theme {
	if t, ok := lookup(s); ok {
		return t
	}
	return cycle[0]
}

func lookup(s string) (Theme, bool) {
	for _, t := range cycle {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

func (t Theme) index() int {
	for i, c := range cycle {
		if c == t {
			return i
		}
	}
	return 0
}

// Next returns the theme after t, wrapping around.
func (t Theme) Next() Theme {
	return cycle[(t.index()+1)%len(cycle)]
}

// Label is the translated display name of t.
func (t Theme) Label(tag language.Tag) string {
	return i18n.Text(tag, labels[Parse(string(t))])
}

// NextLabel is the accessible label of the switch button: it announces
// the theme a click will apply ("Mudar para Modo Escuro").
func (t Theme) NextLabel(tag language.Tag) string {
	return i18n.Text(tag, i18n.KeyThemeTo, t.Next().Label(tag))
}

// FromRequest resolves the theme for r: a valid saved preference first,
// then the system dark-mode hint, then the default.
func FromRequest(r *http.Request) Theme {
	if c, err := r.Cookie(CookieName); err == nil {
		if t, ok := lookup(c.Value); ok {
			return t
		}
	}
	if r.Header.Get(PrefersColorSchemeHeader) == "dark" {
		return Dark
	}
	return cycle[0]
}

// Save stores t as the visitor's preference.
func Save(w http.ResponseWriter, t Theme) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    string(Parse(string(t))),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// Cycle advances the visitor's theme, saves it and returns it.
func Cycle(w http.ResponseWriter, r *http.Request) Theme {
	next := FromRequest(r).Next()
	Save(w, next)
	return next
}
