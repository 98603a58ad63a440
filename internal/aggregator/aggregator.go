// Package aggregator drives the classifier over a whole registry and rolls
// the per-domain rows up per agency.
package aggregator

import (
	"context"
	"fmt"
	"pulse/internal/classifier"
	"pulse/pkg/domain"
	"pulse/pkg/logger"

	"go.uber.org/zap"
)

// Registry is the read-only view of the joined records the aggregator needs.
// Domains and Agencies must be sorted; output order follows them.
type Registry interface {
	Domains() []string
	Agencies() []string
	Domain(name string) (*domain.Domain, bool)
	AgencyDomains(agency string) []string
}

// Result holds the per-domain rows and agency rollups of both tracks.
type Result struct {
	HTTPSDomains      []domain.HTTPSRow
	AnalyticsDomains  []domain.AnalyticsRow
	HTTPSAgencies     []domain.HTTPSAgencyRow
	AnalyticsAgencies []domain.AnalyticsAgencyRow
}

type scored struct {
	https     *domain.HTTPSRow
	analytics *domain.AnalyticsRow
}

// Aggregate classifies every domain in registry order, then walks every
// agency's raw member list to build the rollups. Only eligible domains count
// toward a track, and agencies without eligible domains are left out of it.
// A classification error aborts the run.
func Aggregate(ctx context.Context, reg Registry) (*Result, error) {
	res := &Result{}
	rows := make(map[string]scored)

	for _, name := range reg.Domains() {
		d, ok := reg.Domain(name)
		if !ok {
			continue
		}

		var s scored
		if classifier.EligibleForHTTPS(d) {
			row, err := classifier.HTTPSRow(d)
			if err != nil {
				return nil, fmt.Errorf("could not classify %s: %w", name, err)
			}
			s.https = &row
			res.HTTPSDomains = append(res.HTTPSDomains, row)
		}
		if classifier.EligibleForAnalytics(d) {
			row, err := classifier.AnalyticsRow(d)
			if err != nil {
				return nil, fmt.Errorf("could not classify %s: %w", name, err)
			}
			s.analytics = &row
			res.AnalyticsDomains = append(res.AnalyticsDomains, row)
		}
		rows[name] = s
	}

	for _, agency := range reg.Agencies() {
		var (
			https     httpsCounter
			analytics analyticsCounter
		)
		for _, name := range reg.AgencyDomains(agency) {
			s := rows[name]
			if s.https != nil {
				https.add(s.https)
			}
			if s.analytics != nil {
				analytics.add(s.analytics)
			}
		}

		if https.total > 0 {
			row, err := https.row(agency)
			if err != nil {
				return nil, fmt.Errorf("could not roll up %s: %w", agency, err)
			}
			res.HTTPSAgencies = append(res.HTTPSAgencies, row)
		}
		if analytics.total > 0 {
			row, err := analytics.row(agency)
			if err != nil {
				return nil, fmt.Errorf("could not roll up %s: %w", agency, err)
			}
			res.AnalyticsAgencies = append(res.AnalyticsAgencies, row)
		}
	}

	logger.Info(ctx, "domains aggregated",
		zap.Int("httpsDomains", len(res.HTTPSDomains)),
		zap.Int("analyticsDomains", len(res.AnalyticsDomains)),
		zap.Int("httpsAgencies", len(res.HTTPSAgencies)),
		zap.Int("analyticsAgencies", len(res.AnalyticsAgencies)))

	return res, nil
}

type httpsCounter struct {
	total    int
	https    int
	enforced int
	hsts     int
	grade    int
}

func (c *httpsCounter) add(row *domain.HTTPSRow) {
	c.total++
	// bad chains count
	if row.HTTPS >= domain.HTTPSBadChain {
		c.https++
	}
	// Yes or Strict
	if row.Enforcement >= domain.EnforcementYes {
		c.enforced++
	}
	if row.HSTS >= domain.HSTSOwnHost {
		c.hsts++
	}
	if row.Grade >= domain.GradeAMinus {
		c.grade++
	}
}

func (c *httpsCounter) row(agency string) (domain.HTTPSAgencyRow, error) {
	out := domain.HTTPSAgencyRow{Agency: agency, Domains: c.total}

	for _, p := range []struct {
		dst *int
		n   int
	}{
		{&out.HTTPS, c.https},
		{&out.Enforced, c.enforced},
		{&out.HSTS, c.hsts},
		{&out.Grade, c.grade},
	} {
		v, err := Percent(p.n, c.total)
		if err != nil {
			return domain.HTTPSAgencyRow{}, err
		}
		*p.dst = v
	}

	return out, nil
}

type analyticsCounter struct {
	total        int
	participates int
}

func (c *analyticsCounter) add(row *domain.AnalyticsRow) {
	c.total++
	if row.Participates >= domain.ParticipationYes {
		c.participates++
	}
}

func (c *analyticsCounter) row(agency string) (domain.AnalyticsAgencyRow, error) {
	pct, err := Percent(c.participates, c.total)
	if err != nil {
		return domain.AnalyticsAgencyRow{}, err
	}

	return domain.AnalyticsAgencyRow{Agency: agency, Domains: c.total, Participates: pct}, nil
}
