// Package site contains the HTTP handlers that serve pages: full
// server-rendered pages, bare fragments for client-side navigation, and
// the theme switch.
//
// Handlers are built with the same factory pattern as the rest of the
// HTTP layer: the factory receives the dependencies once at startup and
// returns the http.HandlerFunc that runs on every request.
package site

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/aanand-mishra/ong-site/internal/http/render"
	"github.com/aanand-mishra/ong-site/internal/i18n"
	"github.com/aanand-mishra/ong-site/internal/metrics"
	"github.com/aanand-mishra/ong-site/internal/router"
	"github.com/aanand-mishra/ong-site/internal/theme"
	"github.com/aanand-mishra/ong-site/internal/utils/response"
)

// Response headers that tell the client script how to place a fragment.
const (
	HeaderRoutePath    = "X-Route-Path"
	HeaderRouteTitle   = "X-Route-Title"
	HeaderScrollTarget = "X-Scroll-Target"
	HeaderFeatures     = "X-Route-Features"
)

// Deps groups what the page handlers need.
type Deps struct {
	Router   *router.Router
	Layout   *render.Layout
	Metrics  *metrics.Metrics
	Language string
}

// ─────────────────────────────────────────────────────────────────────────────
// Page handles GET for every site path and renders the full layout.
//
// Unknown paths render the home page (status 200), the same fallback the
// client-side router applies.
// ─────────────────────────────────────────────────────────────────────────────
func Page(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lang := i18n.FromRequest(r, d.Language)
		page := d.Router.Load(r.Context(), r.URL.Path, lang)

		slog.Info("serving page",
			slog.String("requested", r.URL.Path),
			slog.String("route", page.Path))
		d.Metrics.PageLoaded(page.Path, "page", page.Failed)

		view := render.NewView(lang, theme.FromRequest(r), page)
		if err := d.Layout.Render(w, http.StatusOK, view); err != nil {
			slog.Error("error rendering layout",
				slog.String("route", page.Path),
				slog.String("error", err.Error()))
			http.Error(w, i18n.Text(lang, i18n.KeyPageFailed), http.StatusInternalServerError)
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Fragment handles GET /fragments?path=/cadastro#x
//
// It returns only the route's content. The placement hints travel in
// headers:
//
//	X-Route-Path      the resolved route ("/" for unknown paths)
//	X-Scroll-Target   anchor id to scroll to, or "top"
//	X-Route-Features  space-separated client features to start
//
// The client pushes X-Route-Path into history and swaps #app-root.
// ─────────────────────────────────────────────────────────────────────────────
func Fragment(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lang := i18n.FromRequest(r, d.Language)
		requested := r.URL.Query().Get("path")
		page := d.Router.Load(r.Context(), requested, lang)

		slog.Debug("serving fragment",
			slog.String("requested", requested),
			slog.String("route", page.Path))
		d.Metrics.PageLoaded(page.Path, "fragment", page.Failed)

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set(HeaderRoutePath, page.Path)
		w.Header().Set(HeaderRouteTitle, page.Title)
		w.Header().Set(HeaderScrollTarget, page.ScrollTarget())
		w.Header().Set(HeaderFeatures, page.FeatureNames())
		w.Header().Set("Vary", "Accept-Language")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(page.Content))
	}
}

// themeResponse is the JSON answer of the theme switch.
type themeResponse struct {
	Theme string `json:"theme"`
	Label string `json:"label"`
}

// ─────────────────────────────────────────────────────────────────────────────
// CycleTheme handles POST /theme/cycle
//
// It moves the visitor to the next theme (light → dark → contrast →
// light) and stores it in the theme-preference cookie. Script callers
// sending Accept: application/json get { "theme": "...", "label": "..." };
// plain form posts are redirected back to the page they came from.
// ─────────────────────────────────────────────────────────────────────────────
func CycleTheme(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		next := theme.Cycle(w, r)
		d.Metrics.ThemeChanged(string(next))
		slog.Debug("theme changed", slog.String("theme", string(next)))

		if strings.Contains(r.Header.Get("Accept"), "application/json") {
			lang := i18n.FromRequest(r, d.Language)
			response.WriteJSON(w, http.StatusOK, themeResponse{
				Theme: string(next),
				Label: next.NextLabel(lang),
			})
			return
		}

		http.Redirect(w, r, backTo(r), http.StatusSeeOther)
	}
}

// backTo returns the path of the Referer when it points at this host,
// or "/".
func backTo(r *http.Request) string {
	u, err := url.Parse(r.Referer())
	if err != nil || u.Path == "" || !strings.HasPrefix(u.Path, "/") {
		return "/"
	}
	if u.Host != "" && u.Host != r.Host {
		return "/"
	}
	if strings.HasPrefix(u.Path, "//") {
		return "/"
	}
	return u.RequestURI()
}
