// Package output defines where the pipeline's tables go and how they are
// encoded. Sink abstracts the destination so the publish step can be tested
// without touching disk; fsdir provides the on-disk implementation.
//
//go:generate mockgen -package mockoutput -source=interface.go -destination=mock/mockoutput.go *
package output

import (
	"context"
	"pulse/pkg/domain"
)

// Track names one of the two scored tracks.
type Track string

const (
	TrackHTTPS     Track = "https"
	TrackAnalytics Track = "analytics"
)

// Sink receives every table a run produces.
type Sink interface {
	// WriteHTTPSDomains stores the per-domain HTTPS/TLS rows.
	WriteHTTPSDomains(ctx context.Context, rows []domain.HTTPSRow) error
	// WriteHTTPSAgencies stores the HTTPS/TLS agency rollups.
	WriteHTTPSAgencies(ctx context.Context, rows []domain.HTTPSAgencyRow) error
	// WriteAnalyticsDomains stores the per-domain analytics rows.
	WriteAnalyticsDomains(ctx context.Context, rows []domain.AnalyticsRow) error
	// WriteAnalyticsAgencies stores the analytics agency rollups.
	WriteAnalyticsAgencies(ctx context.Context, rows []domain.AnalyticsAgencyRow) error
	// WriteStats stores the active/inactive split of a track.
	WriteStats(ctx context.Context, track Track, split domain.Split) error
}
