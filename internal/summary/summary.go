// Package summary reduces the per-domain rows of each track to the
// active/inactive split rendered by the donut charts.
package summary

import (
	"fmt"
	"pulse/internal/aggregator"
	"pulse/pkg/domain"
	"pulse/pkg/serrors"
)

// HTTPS returns the share of rows where HTTPS is present (bad chains
// included, downgrades not) and enforced at least nominally.
func HTTPS(rows []domain.HTTPSRow) (domain.Split, error) {
	if len(rows) == 0 {
		return domain.Split{}, serrors.With(serrors.ErrEmptyDenominator, "no https rows to summarize")
	}

	active := 0
	for _, r := range rows {
		if r.HTTPS >= domain.HTTPSBadChain && r.Enforcement >= domain.EnforcementPresent {
			active++
		}
	}

	return split(active, len(rows))
}

// Analytics returns the share of rows that participate in analytics.
func Analytics(rows []domain.AnalyticsRow) (domain.Split, error) {
	if len(rows) == 0 {
		return domain.Split{}, serrors.With(serrors.ErrEmptyDenominator, "no analytics rows to summarize")
	}

	active := 0
	for _, r := range rows {
		if r.Participates >= domain.ParticipationYes {
			active++
		}
	}

	return split(active, len(rows))
}

func split(active, total int) (domain.Split, error) {
	pct, err := aggregator.Percent(active, total)
	if err != nil {
		return domain.Split{}, fmt.Errorf("could not compute split: %w", err)
	}

	return domain.Split{Active: pct, Inactive: 100 - pct}, nil
}
