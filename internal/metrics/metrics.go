// Package metrics defines the Prometheus counters the site records:
// page loads, form submissions, address lookups and theme switches. They
// live on their own registry, served at /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the site.
type Metrics struct {
	registry *prometheus.Registry

	PageLoads      *prometheus.CounterVec
	FormSubmits    *prometheus.CounterVec
	AddressLookups *prometheus.CounterVec
	ThemeChanges   *prometheus.CounterVec
}

// New creates and registers all metrics on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		PageLoads: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ong_site_page_loads_total",
			Help: "Pages served, by route and whether the content failed to load",
		}, []string{"route", "mode", "failed"}),
		FormSubmits: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ong_site_form_submissions_total",
			Help: "Volunteer form submissions, by outcome",
		}, []string{"result"}),
		AddressLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ong_site_address_lookups_total",
			Help: "Postal-code lookups, by outcome",
		}, []string{"result"}),
		ThemeChanges: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ong_site_theme_changes_total",
			Help: "Theme switches, by the theme selected",
		}, []string{"theme"}),
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry (tests gather from it).
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// PageLoaded counts a served page. mode is "page" or "fragment".
func (m *Metrics) PageLoaded(route, mode string, failed bool) {
	f := "false"
	if failed {
		f = "true"
	}
	m.PageLoads.WithLabelValues(route, mode, f).Inc()
}

// FormSubmitted counts a form submission: "valid", "invalid" or "error".
func (m *Metrics) FormSubmitted(result string) {
	m.FormSubmits.WithLabelValues(result).Inc()
}

// AddressLookedUp counts a CEP lookup: "found", "not_found", "invalid"
// or "error".
func (m *Metrics) AddressLookedUp(result string) {
	m.AddressLookups.WithLabelValues(result).Inc()
}

// ThemeChanged counts a theme switch.
func (m *Metrics) ThemeChanged(theme string) {
	m.ThemeChanges.WithLabelValues(theme).Inc()
}
