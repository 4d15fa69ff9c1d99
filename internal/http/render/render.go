// Package render executes the site layout: the shell page that carries
// the theme attribute, the navigation, the current route's content and
// the success modal.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/aanand-mishra/ong-site/internal/i18n"
	"github.com/aanand-mishra/ong-site/internal/router"
	"github.com/aanand-mishra/ong-site/internal/theme"
	"golang.org/x/text/language"
)

// Modal is the state of the success dialog.
type Modal struct {
	Open      bool
	Title     string
	Reference string
}

// View is everything the layout needs.
type View struct {
	Lang       string
	Theme      theme.Theme
	ThemeLabel string
	Loading    string
	Page       router.Page
	Modal      Modal
}

// Features is the space-separated list the client script reads from
// data-features.
func (v View) Features() string {
	return v.Page.FeatureNames()
}

// NewView fills in the language and theme fields for a page.
func NewView(lang language.Tag, t theme.Theme, page router.Page) View {
	return View{
		Lang:       lang.String(),
		Theme:      t,
		ThemeLabel: t.NextLabel(lang),
		Loading:    i18n.Text(lang, i18n.KeyLoading),
		Page:       page,
		Modal:      Modal{Title: i18n.Text(lang, i18n.KeySubmitted)},
	}
}

// Layout renders full pages.
type Layout struct {
	tmpl *template.Template
}

// NewLayout parses layout.html from fsys.
func NewLayout(fsys fs.FS) (*Layout, error) {
	tmpl, err := template.ParseFS(fsys, "layout.html")
	if err != nil {
		return nil, fmt.Errorf("render.NewLayout: %w", err)
	}
	return &Layout{tmpl: tmpl}, nil
}

// Render writes the full page with status. The template is executed into
// a buffer first so a template error never leaves a half-written page.
func (l *Layout) Render(w http.ResponseWriter, status int, view View) error {
	var buf bytes.Buffer
	if err := l.tmpl.ExecuteTemplate(&buf, "layout.html", view); err != nil {
		return fmt.Errorf("render.Layout: %w", err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
