// Package metrics exposes the service's Prometheus collectors.
package metrics

import (
	"net/http"
	"runtime"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Reload results recorded by ReloadsTotal.
const (
	ResultChanged   = "changed"
	ResultUnchanged = "unchanged"
	ResultInvalid   = "invalid"
	ResultError     = "error"
)

// Metrics holds the sitenav collectors on an isolated registry so tests and
// embedded servers never collide with the global default registry.
type Metrics struct {
	Registry *prometheus.Registry

	ReloadsTotal          *prometheus.CounterVec
	ReloadDurationSeconds prometheus.Histogram
	SnapshotTimestamp     prometheus.Gauge
	SidebarKeys           prometheus.Gauge
	NavLinks              prometheus.Gauge

	RequestsTotal          *prometheus.CounterVec
	RequestDurationSeconds *prometheus.HistogramVec

	CacheLookupsTotal *prometheus.CounterVec

	BuildInfo *prometheus.GaugeVec
}

// New creates a Metrics instance with every collector registered.
func New(version string) *Metrics {
	reg := prometheus.NewRegistry()

	// Standard Go runtime + process metrics
	reg.MustRegister(prometheus.NewGoCollector())
	reg.MustRegister(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))

	m := &Metrics{
		Registry: reg,

		ReloadsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sitenav_reloads_total",
				Help: "Total number of document reloads by result.",
			},
			[]string{"result"},
		),
		ReloadDurationSeconds: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "sitenav_reload_duration_seconds",
				Help:    "Duration of document reloads in seconds.",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~2s
			},
		),
		SnapshotTimestamp: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "sitenav_snapshot_timestamp_seconds",
				Help: "Unix time the published snapshot was loaded.",
			},
		),
		SidebarKeys: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "sitenav_sidebar_sections",
				Help: "Number of sidebar sections in the published snapshot.",
			},
		),
		NavLinks: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "sitenav_links",
				Help: "Number of navigable links in the published snapshot.",
			},
		),

		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sitenav_http_requests_total",
				Help: "Total number of HTTP requests.",
			},
			[]string{"method", "route", "status"},
		),
		RequestDurationSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sitenav_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),

		CacheLookupsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sitenav_resolution_cache_lookups_total",
				Help: "Sidebar resolution cache lookups by outcome.",
			},
			[]string{"outcome"},
		),

		BuildInfo: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "sitenav_info",
				Help: "Build information.",
			},
			[]string{"version", "go_version"},
		),
	}

	reg.MustRegister(
		m.ReloadsTotal,
		m.ReloadDurationSeconds,
		m.SnapshotTimestamp,
		m.SidebarKeys,
		m.NavLinks,
		m.RequestsTotal,
		m.RequestDurationSeconds,
		m.CacheLookupsTotal,
		m.BuildInfo,
	)

	m.BuildInfo.WithLabelValues(version, runtime.Version()).Set(1)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
