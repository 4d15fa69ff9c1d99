// Package server wires the HTTP handlers into a chi router.
//
// Route table:
//
//	GET    /static/*               embedded CSS and JavaScript
//	GET    /metrics                Prometheus metrics
//	GET    /healthz                liveness probe
//	GET    /fragments?path=        route content for client-side navigation
//	POST   /theme/cycle            switch to the next theme
//	POST   /cadastro               registration form (no JavaScript)
//	POST   /api/validate           live field validation
//	GET    /api/cep/{cep}          postal-code lookup
//	POST   /api/volunteers         create a registration
//	GET    /api/volunteers         list registrations
//	GET    /api/volunteers/{id}    get one registration
//	DELETE /api/volunteers/{id}    delete a registration
//	GET    /*                      full page for any other path
package server

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/aanand-mishra/ong-site/internal/address"
	addresshandler "github.com/aanand-mishra/ong-site/internal/http/handlers/address"
	"github.com/aanand-mishra/ong-site/internal/http/handlers/site"
	"github.com/aanand-mishra/ong-site/internal/http/handlers/volunteer"
	"github.com/aanand-mishra/ong-site/internal/http/render"
	"github.com/aanand-mishra/ong-site/internal/metrics"
	"github.com/aanand-mishra/ong-site/internal/router"
	"github.com/aanand-mishra/ong-site/internal/storage"
	"github.com/aanand-mishra/ong-site/internal/utils/response"
	"github.com/aanand-mishra/ong-site/internal/validation"
)

// Deps holds everything the handlers need.
type Deps struct {
	Router         *router.Router
	Layout         *render.Layout
	Storage        storage.Storage
	Validator      *validation.Validator
	Address        address.Lookuper
	Metrics        *metrics.Metrics
	Static         fs.FS
	Language       string
	AllowedOrigins []string
	RequestTimeout time.Duration
}

// NewRouter builds the site's handler.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if d.RequestTimeout > 0 {
		r.Use(middleware.Timeout(d.RequestTimeout))
	}

	siteDeps := site.Deps{
		Router:   d.Router,
		Layout:   d.Layout,
		Metrics:  d.Metrics,
		Language: d.Language,
	}
	volunteerDeps := volunteer.Deps{
		Storage:   d.Storage,
		Validator: d.Validator,
		Router:    d.Router,
		Layout:    d.Layout,
		Metrics:   d.Metrics,
		Language:  d.Language,
	}

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(d.Static)))
	r.Handle("/metrics", d.Metrics.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		response.WriteJSON(w, http.StatusOK, map[string]string{"status": response.StatusOK})
	})

	r.Get("/fragments", site.Fragment(siteDeps))
	r.Post("/theme/cycle", site.CycleTheme(siteDeps))
	r.Post(volunteer.FormPath, volunteer.Submit(volunteerDeps))

	r.Route("/api", func(r chi.Router) {
		if len(d.AllowedOrigins) > 0 {
			r.Use(cors.Handler(cors.Options{
				AllowedOrigins: d.AllowedOrigins,
				AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
				AllowedHeaders: []string{"Accept", "Accept-Language", "Content-Type"},
				MaxAge:         300,
			}))
		}

		r.Post("/validate", volunteer.Validate(volunteerDeps))
		r.Get("/cep/{cep}", addresshandler.Lookup(d.Address, d.Metrics, d.Language))

		r.Post("/volunteers", volunteer.New(volunteerDeps))
		r.Get("/volunteers", volunteer.GetList(volunteerDeps))
		r.Get("/volunteers/{id}", volunteer.GetByID(volunteerDeps))
		r.Delete("/volunteers/{id}", volunteer.Delete(volunteerDeps))
	})

	r.Get("/*", site.Page(siteDeps))

	return r
}
