// Package router maps site paths to page content.
//
// A route either names a fragment file (HTML, or Markdown rendered to
// HTML) or carries a callback that synthesises its markup. Unknown paths
// resolve to the default route. Loading never fails: a fragment that
// cannot be read is replaced by an inline error message so the layout
// still renders.
package router

import (
	"context"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/aanand-mishra/ong-site/internal/i18n"
	"golang.org/x/text/language"
)

// DefaultPath is the route used for unknown paths.
const DefaultPath = "/"

// Feature is a client enhancement a page needs once it is on screen.
type Feature string

const (
	FeatureFormValidation  Feature = "form-validation"
	FeatureCEPAutocomplete Feature = "cep-autocomplete"
)

// RenderFunc synthesises a page's markup.
type RenderFunc func(ctx context.Context) (template.HTML, error)

// Route is one entry of the route table. Exactly one of Fragment and
// Render is set.
type Route struct {
	Path     string
	Title    string
	Fragment string
	Render   RenderFunc
	Features []Feature
}

// Page is a loaded route, ready to be placed in the layout or sent as a
// fragment.
// Failed is set when Content is the inline error message.
type Page struct {
	Path     string
	Anchor   string
	Title    string
	Content  template.HTML
	Failed   bool
	Features []Feature
	Nav      []NavItem
}

// ScrollTarget is the element id the client scrolls to after swapping
// the page in, or "top".
func (p Page) ScrollTarget() string {
	if p.Anchor != "" {
		return p.Anchor
	}
	return "top"
}

// Has reports whether the page needs feature f.
func (p Page) Has(f Feature) bool {
	for _, pf := range p.Features {
		if pf == f {
			return true
		}
	}
	return false
}

// FeatureNames is the space-separated list of the page's features.
func (p Page) FeatureNames() string {
	names := make([]string, len(p.Features))
	for i, f := range p.Features {
		names[i] = string(f)
	}
	return strings.Join(names, " ")
}

// Router resolves and loads routes. It is safe for concurrent use once
// built; nothing is mutated after New returns.
type Router struct {
	routes   map[string]Route
	fragment *FragmentLoader
	nav      []NavItem
	log      *slog.Logger
}

// New builds a router over routes, reading fragments from pages. The
// route table must contain DefaultPath.
func New(pages fs.FS, routes []Route, nav []NavItem, log *slog.Logger) (*Router, error) {
	if log == nil {
		log = slog.Default()
	}

	table := make(map[string]Route, len(routes))
	for _, rt := range routes {
		clean, _ := Normalize(rt.Path)
		if (rt.Fragment == "") == (rt.Render == nil) {
			return nil, fmt.Errorf("router.New: route %q needs exactly one of fragment or render", rt.Path)
		}
		if _, dup := table[clean]; dup {
			return nil, fmt.Errorf("router.New: duplicate route %q", clean)
		}
		rt.Path = clean
		table[clean] = rt
	}
	if _, ok := table[DefaultPath]; !ok {
		return nil, fmt.Errorf("router.New: missing default route %q", DefaultPath)
	}

	return &Router{
		routes:   table,
		fragment: NewFragmentLoader(pages),
		nav:      nav,
		log:      log,
	}, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Normalize splits a requested path into the route path and the anchor.
//
//	"/#sobre"     → "/", "sobre"
//	""            → "/", ""
//	"/cadastro/"  → "/cadastro", ""
//
// Query strings are dropped.
// ─────────────────────────────────────────────────────────────────────────────
func Normalize(path string) (string, string) {
	clean, anchor, _ := strings.Cut(path, "#")
	clean, _, _ = strings.Cut(clean, "?")
	clean = strings.TrimSpace(clean)

	if clean == "" {
		clean = "/"
	}
	if !strings.HasPrefix(clean, "/") {
		clean = "/" + clean
	}
	if len(clean) > 1 {
		clean = strings.TrimRight(clean, "/")
		if clean == "" {
			clean = "/"
		}
	}
	return clean, anchor
}

// Resolve returns the route for path, falling back to the default route.
func (r *Router) Resolve(path string) Route {
	clean, _ := Normalize(path)
	if rt, ok := r.routes[clean]; ok {
		return rt
	}
	return r.routes[DefaultPath]
}

// Known reports whether path names a route of its own.
func (r *Router) Known(path string) bool {
	clean, _ := Normalize(path)
	_, ok := r.routes[clean]
	return ok
}

// Load resolves path and produces its page content.
func (r *Router) Load(ctx context.Context, path string, lang language.Tag) Page {
	clean, anchor := Normalize(path)
	rt := r.Resolve(clean)

	page := Page{
		Path:     rt.Path,
		Anchor:   anchor,
		Title:    rt.Title,
		Features: rt.Features,
		Nav:      ActiveNav(r.nav, rt.Path),
	}

	var (
		html template.HTML
		err  error
	)
	if rt.Render != nil {
		html, err = rt.Render(ctx)
	} else {
		html, err = r.fragment.Load(rt.Fragment)
	}

	if err != nil {
		r.log.Error("error loading page",
			slog.String("path", rt.Path),
			slog.String("error", err.Error()))
		page.Content = ErrorContent(lang)
		page.Failed = true
		return page
	}

	r.log.Debug("page loaded", slog.String("path", rt.Path))
	page.Content = html
	return page
}

// ErrorContent is the markup shown in place of a page that failed to
// load.
func ErrorContent(lang language.Tag) template.HTML {
	return template.HTML(`<h2 class="page-error" style="text-align: center; color: var(--color-danger);">` +
		template.HTMLEscapeString(i18n.Text(lang, i18n.KeyPageFailed)) +
		`</h2>`)
}
