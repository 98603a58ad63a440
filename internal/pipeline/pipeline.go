// Package pipeline runs a full build: join the inputs, classify and roll up
// every domain, summarize both tracks and hand the tables to a sink.
package pipeline

import (
	"context"
	"fmt"
	"pulse/internal/aggregator"
	"pulse/internal/registry"
	"pulse/internal/summary"
	"pulse/pkg/domain"
	"pulse/pkg/logger"
	"pulse/pkg/metrics"
	"pulse/pkg/output"
	"pulse/pkg/source"

	"go.uber.org/zap"
)

// Report is everything a run produced.
type Report struct {
	Stats     registry.BuildStats
	Result    *aggregator.Result
	HTTPS     domain.Split
	Analytics domain.Split
}

// Pipeline holds the run-wide collaborators.
type Pipeline struct {
	branches registry.BranchTable
	recorder *metrics.Recorder
}

// New creates a Pipeline. A nil recorder gets a private one.
func New(branches registry.BranchTable, recorder *metrics.Recorder) *Pipeline {
	if recorder == nil {
		recorder = metrics.NewRecorder()
	}

	return &Pipeline{branches: branches, recorder: recorder}
}

// Recorder returns the metrics recorder of the pipeline.
func (p *Pipeline) Recorder() *metrics.Recorder {
	return p.recorder
}

// Registry joins the inputs and records the load statistics.
func (p *Pipeline) Registry(ctx context.Context, in source.Input) (*registry.Registry, registry.BuildStats) {
	done := p.recorder.Stage("registry")
	reg, stats := registry.Build(ctx, p.branches, in)
	done()

	p.recorder.Domains.Set(float64(reg.Len()))
	p.recorder.Agencies.Set(float64(stats.Agencies))
	p.recorder.Malformed.Set(float64(stats.Malformed))
	for skip, n := range stats.Skipped {
		p.recorder.Skipped.WithLabelValues(skip.Source, skip.Reason).Set(float64(n))
	}

	skipped := 0
	for _, n := range stats.Skipped {
		skipped += n
	}
	fields := []zap.Field{
		zap.Int("domains", reg.Len()),
		zap.Int("agencies", stats.Agencies),
		zap.Int("skipped", skipped),
		zap.Int("malformed", stats.Malformed),
		zap.Int("tlsReplaced", stats.TLSReplaced),
	}
	if logger.IsDebug(ctx) {
		for skip, n := range stats.Skipped {
			fields = append(fields, zap.Int("skipped."+skip.Source+"."+skip.Reason, n))
		}
	}
	logger.Info(ctx, "registry built", fields...)

	return reg, stats
}

// Run computes every table from the inputs without writing anything.
func (p *Pipeline) Run(ctx context.Context, in source.Input) (*Report, error) {
	reg, stats := p.Registry(ctx, in)

	done := p.recorder.Stage("aggregate")
	res, err := aggregator.Aggregate(ctx, reg)
	done()
	if err != nil {
		return nil, fmt.Errorf("could not aggregate: %w", err)
	}

	done = p.recorder.Stage("summarize")
	defer done()

	httpsSplit, err := summary.HTTPS(res.HTTPSDomains)
	if err != nil {
		return nil, fmt.Errorf("could not summarize https: %w", err)
	}
	analyticsSplit, err := summary.Analytics(res.AnalyticsDomains)
	if err != nil {
		return nil, fmt.Errorf("could not summarize analytics: %w", err)
	}

	p.observe(output.TrackHTTPS, len(res.HTTPSDomains), len(res.HTTPSAgencies), httpsSplit)
	p.observe(output.TrackAnalytics, len(res.AnalyticsDomains), len(res.AnalyticsAgencies), analyticsSplit)

	logger.Info(ctx, "tracks summarized",
		zap.Int("httpsActive", httpsSplit.Active),
		zap.Int("analyticsActive", analyticsSplit.Active))

	return &Report{
		Stats:     stats,
		Result:    res,
		HTTPS:     httpsSplit,
		Analytics: analyticsSplit,
	}, nil
}

func (p *Pipeline) observe(track output.Track, domains, agencies int, split domain.Split) {
	p.recorder.Rows.WithLabelValues(string(track), "domains").Set(float64(domains))
	p.recorder.Rows.WithLabelValues(string(track), "agencies").Set(float64(agencies))
	p.recorder.Active.WithLabelValues(string(track)).Set(float64(split.Active))
}

// Publish writes every table of the report to the sink, stopping at the
// first failure.
func (p *Pipeline) Publish(ctx context.Context, sink output.Sink, report *Report) error {
	done := p.recorder.Stage("publish")
	defer done()

	res := report.Result
	steps := []struct {
		name string
		fn   func() error
	}{
		{"https domains", func() error { return sink.WriteHTTPSDomains(ctx, res.HTTPSDomains) }},
		{"https agencies", func() error { return sink.WriteHTTPSAgencies(ctx, res.HTTPSAgencies) }},
		{"analytics domains", func() error { return sink.WriteAnalyticsDomains(ctx, res.AnalyticsDomains) }},
		{"analytics agencies", func() error { return sink.WriteAnalyticsAgencies(ctx, res.AnalyticsAgencies) }},
		{"https stats", func() error { return sink.WriteStats(ctx, output.TrackHTTPS, report.HTTPS) }},
		{"analytics stats", func() error { return sink.WriteStats(ctx, output.TrackAnalytics, report.Analytics) }},
	}
	for _, step := range steps {
		if err := step.fn(); err != nil {
			return fmt.Errorf("could not write %s: %w", step.name, err)
		}
	}

	logger.Info(ctx, "tables published")

	return nil
}
