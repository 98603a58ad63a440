// Package fsdir provides an output.Sink that writes tables into the static
// site's asset directories.
package fsdir

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"pulse/pkg/domain"
	"pulse/pkg/logger"
	"pulse/pkg/output"

	"github.com/go-faster/errors"
	"github.com/google/renameio/v2"
	"go.uber.org/zap"
)

// Options defines where tables and stats are written.
type Options struct {
	// TablesDir receives https/{domains,agencies}.json and analytics/{domains,agencies}.json.
	TablesDir string
	// StatsDir receives https.csv and analytics.csv.
	StatsDir string
	// Indent is the JSON indentation width; zero writes compact JSON.
	Indent int
}

// Writer implements output.Sink on the local filesystem. Files are replaced
// atomically, so readers never observe a partially written table.
type Writer struct {
	opts Options
}

// New constructs a Writer.
func New(opts Options) *Writer {
	return &Writer{opts: opts}
}

// WriteHTTPSDomains writes https/domains.json under the tables directory.
func (w *Writer) WriteHTTPSDomains(ctx context.Context, rows []domain.HTTPSRow) error {
	return w.write(ctx, filepath.Join(w.opts.TablesDir, "https", "domains.json"),
		output.EncodeHTTPSDomains(rows, w.opts.Indent))
}

// WriteHTTPSAgencies writes https/agencies.json under the tables directory.
func (w *Writer) WriteHTTPSAgencies(ctx context.Context, rows []domain.HTTPSAgencyRow) error {
	return w.write(ctx, filepath.Join(w.opts.TablesDir, "https", "agencies.json"),
		output.EncodeHTTPSAgencies(rows, w.opts.Indent))
}

// WriteAnalyticsDomains writes analytics/domains.json under the tables directory.
func (w *Writer) WriteAnalyticsDomains(ctx context.Context, rows []domain.AnalyticsRow) error {
	return w.write(ctx, filepath.Join(w.opts.TablesDir, "analytics", "domains.json"),
		output.EncodeAnalyticsDomains(rows, w.opts.Indent))
}

// WriteAnalyticsAgencies writes analytics/agencies.json under the tables directory.
func (w *Writer) WriteAnalyticsAgencies(ctx context.Context, rows []domain.AnalyticsAgencyRow) error {
	return w.write(ctx, filepath.Join(w.opts.TablesDir, "analytics", "agencies.json"),
		output.EncodeAnalyticsAgencies(rows, w.opts.Indent))
}

// WriteStats writes <track>.csv under the stats directory.
func (w *Writer) WriteStats(ctx context.Context, track output.Track, split domain.Split) error {
	var buf bytes.Buffer
	if err := output.EncodeStats(&buf, split); err != nil {
		return errors.Wrapf(err, "encode %s stats", track)
	}

	return w.write(ctx, filepath.Join(w.opts.StatsDir, string(track)+".csv"), buf.Bytes())
}

func (w *Writer) write(ctx context.Context, path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "create %s", dir)
	}

	if err := renameio.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}

	logger.Debug(ctx, "table written", zap.String("path", path), zap.Int("bytes", len(data)))

	return nil
}

// Ensure Writer conforms to the output.Sink interface at compile time.
var _ output.Sink = (*Writer)(nil)
