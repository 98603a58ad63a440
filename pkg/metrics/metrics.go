// Package metrics collects the counters of a build run and exports them in
// the Prometheus text format, for node_exporter's textfile collector.
package metrics

import (
	"time"

	"github.com/go-faster/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

const namespace = "pulse"

// Recorder holds the metrics of a single run on its own registry, so that
// separate runs (and tests) never share state.
type Recorder struct {
	registry *prometheus.Registry

	Domains   prometheus.Gauge
	Agencies  prometheus.Gauge
	Skipped   *prometheus.GaugeVec
	Malformed prometheus.Gauge
	Rows      *prometheus.GaugeVec
	Active    *prometheus.GaugeVec
	Duration  *prometheus.HistogramVec
	LastRun   prometheus.Gauge
}

// NewRecorder creates a Recorder with all collectors registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		Domains: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "registry_domains",
			Help:      "Number of admitted federal domains.",
		}),
		Agencies: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "registry_agencies",
			Help:      "Number of agencies with at least one admitted domain.",
		}),
		Skipped: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "registry_skipped_rows",
			Help:      "Input rows left out of the registry.",
		}, []string{"source", "reason"}),
		Malformed: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "registry_malformed_values",
			Help:      "Numeric cells that could not be parsed and were treated as absent.",
		}),
		Rows: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "track_rows",
			Help:      "Rows produced per track and table.",
		}, []string{"track", "table"}),
		Active: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "track_active_percent",
			Help:      "Active share of eligible domains per track.",
		}, []string{"track"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Time spent in each stage of the run.",
			Buckets:   DefaultBuckets,
		}, []string{"stage"}),
		LastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time of the last completed run.",
		}),
	}

	r.registry.MustRegister(r.Domains, r.Agencies, r.Skipped, r.Malformed, r.Rows, r.Active, r.Duration, r.LastRun)

	return r
}

// Registry returns the underlying registry, mainly for tests.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Stage starts timing a stage; calling the returned func records it.
func (r *Recorder) Stage(name string) func() {
	start := time.Now()

	return func() {
		r.Duration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	}
}

// Finish stamps the completion time of the run.
func (r *Recorder) Finish(now time.Time) {
	r.LastRun.Set(float64(now.Unix()))
}

// WriteTextfile writes all metrics to path atomically.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return errors.Wrapf(err, "write metrics to %s", path)
	}

	return nil
}
