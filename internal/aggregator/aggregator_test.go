package aggregator_test

import (
	"context"
	"pulse/internal/aggregator"
	"pulse/internal/registry"
	"pulse/pkg/domain"
	"pulse/pkg/serrors"
	"pulse/pkg/source"
	"testing"

	"github.com/stretchr/testify/require"
)

func federal(name, agency string) source.DomainRow {
	return source.DomainRow{Domain: name, Type: registry.FederalAgencyType, Agency: agency}
}

// inspect returns a live, valid, strictly enforced domain with preload-ready
// HSTS; overrides replace individual cells.
func inspect(name string, overrides map[string]string) source.Record {
	fields := map[string]string{
		"Domain":                name,
		"Canonical":             "https://" + name,
		"Live":                  "True",
		"Redirect":              "False",
		"Downgrades HTTPS":      "False",
		"Valid HTTPS":           "True",
		"HTTPS Bad Chain":       "False",
		"Strictly Forces HTTPS": "True",
		"Defaults to HTTPS":     "True",
		"HSTS":                  "True",
		"HSTS Preload Ready":    "True",
		"HSTS All Subdomains":   "True",
		"HSTS Max Age":          "31536000",
	}
	for k, v := range overrides {
		fields[k] = v
	}

	return source.Record{Domain: name, Fields: fields}
}

func tls(name, grade string) source.Record {
	return source.Record{Domain: name, Fields: map[string]string{
		"Grade":               grade,
		"Forward Secrecy":     "2",
		"Signature Algorithm": "SHA256withRSA",
		"RC4":                 "False",
		"SSLv3":               "False",
		"TLSv1.2":             "True",
	}}
}

func analytics(name, participates string) source.Record {
	return source.Record{Domain: name, Fields: map[string]string{"Participates in Analytics": participates}}
}

func aggregate(t *testing.T, in source.Input) *aggregator.Result {
	t.Helper()

	reg, _ := registry.Build(context.Background(), registry.DefaultBranches(), in)
	res, err := aggregator.Aggregate(context.Background(), reg)
	require.NoError(t, err)

	return res
}

func domainsOf(rows []domain.HTTPSRow) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Domain)
	}

	return out
}

func TestAggregate_SortedDomainOrder(t *testing.T) {
	res := aggregate(t, source.Input{
		Domains: []source.DomainRow{federal("c.gov", "Dept"), federal("a.gov", "Dept"), federal("b.gov", "Dept")},
		Inspect: []source.Record{inspect("c.gov", nil), inspect("b.gov", nil), inspect("a.gov", nil)},
	})

	require.Equal(t, []string{"a.gov", "b.gov", "c.gov"}, domainsOf(res.HTTPSDomains))
}

func TestAggregate_ScenarioE_GradeCounter(t *testing.T) {
	res := aggregate(t, source.Input{
		Domains: []source.DomainRow{federal("a.gov", "Dept"), federal("b.gov", "Dept")},
		Inspect: []source.Record{inspect("a.gov", nil), inspect("b.gov", nil)},
		TLS:     []source.Record{tls("a.gov", "A-"), tls("b.gov", "B")},
	})

	require.Len(t, res.HTTPSDomains, 2)
	require.Equal(t, domain.GradeAMinus, res.HTTPSDomains[0].Grade)
	require.Equal(t, domain.GradeB, res.HTTPSDomains[1].Grade)

	require.Equal(t, []domain.HTTPSAgencyRow{
		{Agency: "Dept", Domains: 2, HTTPS: 100, Enforced: 100, HSTS: 100, Grade: 50},
	}, res.HTTPSAgencies)
}

func TestAggregate_ScenarioF_NotInspected(t *testing.T) {
	res := aggregate(t, source.Input{
		Domains: []source.DomainRow{
			federal("a.gov", "Dept A"),
			federal("ghost.gov", "Dept A"),
			federal("ghost2.gov", "Dept Ghost"),
		},
		Inspect:   []source.Record{inspect("a.gov", nil)},
		TLS:       []source.Record{tls("ghost.gov", "A+")},
		Analytics: []source.Record{analytics("a.gov", "True"), analytics("ghost.gov", "True")},
	})

	require.Equal(t, []string{"a.gov"}, domainsOf(res.HTTPSDomains))
	require.Len(t, res.AnalyticsDomains, 1)
	require.Equal(t, "a.gov", res.AnalyticsDomains[0].Domain)

	require.Len(t, res.HTTPSAgencies, 1)
	require.Equal(t, "Dept A", res.HTTPSAgencies[0].Agency)
	require.Equal(t, 1, res.HTTPSAgencies[0].Domains)
	require.Len(t, res.AnalyticsAgencies, 1)
	require.Equal(t, 1, res.AnalyticsAgencies[0].Domains)
}

func TestAggregate_OmitsAgenciesWithoutEligibleDomains(t *testing.T) {
	res := aggregate(t, source.Input{
		Domains: []source.DomainRow{
			federal("dead.gov", "Dept Dead"),
			federal("loc.gov", "Library of Congress"),
			federal("exec.gov", "Dept Exec"),
		},
		Inspect: []source.Record{
			inspect("dead.gov", map[string]string{"Live": "False"}),
			inspect("loc.gov", nil),
			inspect("exec.gov", nil),
		},
		Analytics: []source.Record{
			analytics("dead.gov", "True"),
			analytics("loc.gov", "True"),
			analytics("exec.gov", "False"),
		},
	})

	var httpsAgencies, analyticsAgencies []string
	for _, r := range res.HTTPSAgencies {
		require.Positive(t, r.Domains)
		httpsAgencies = append(httpsAgencies, r.Agency)
	}
	for _, r := range res.AnalyticsAgencies {
		require.Positive(t, r.Domains)
		analyticsAgencies = append(analyticsAgencies, r.Agency)
	}

	require.Equal(t, []string{"Dept Exec", "Library of Congress"}, httpsAgencies)
	require.Equal(t, []string{"Dept Exec"}, analyticsAgencies, "legislative domains are not scored for analytics")
	require.Equal(t, []domain.AnalyticsAgencyRow{{Agency: "Dept Exec", Domains: 1, Participates: 0}}, res.AnalyticsAgencies)
}

// A domain listed twice for an agency in the base list is counted twice in
// that agency's rollup, while appearing once in the per-domain rows.
func TestAggregate_DuplicateMembershipCountsTwice(t *testing.T) {
	res := aggregate(t, source.Input{
		Domains: []source.DomainRow{
			federal("a.gov", "Dept"),
			federal("b.gov", "Dept"),
			federal("a.gov", "Dept"),
		},
		Inspect: []source.Record{
			inspect("a.gov", nil),
			inspect("b.gov", map[string]string{"Valid HTTPS": "False"}),
		},
	})

	require.Equal(t, []string{"a.gov", "b.gov"}, domainsOf(res.HTTPSDomains))
	require.Len(t, res.HTTPSAgencies, 1)
	require.Equal(t, 3, res.HTTPSAgencies[0].Domains)
	require.Equal(t, 67, res.HTTPSAgencies[0].HTTPS)
}

func TestAggregate_Counters(t *testing.T) {
	res := aggregate(t, source.Input{
		Domains: []source.DomainRow{
			federal("a.gov", "Dept"),
			federal("b.gov", "Dept"),
			federal("c.gov", "Dept"),
		},
		Inspect: []source.Record{
			// bad chain, present but unenforced, HSTS too weak
			inspect("a.gov", map[string]string{
				"Valid HTTPS":           "False",
				"HTTPS Bad Chain":       "True",
				"Strictly Forces HTTPS": "False",
				"Defaults to HTTPS":     "False",
				"HSTS Preload Ready":    "False",
				"HSTS Max Age":          "100",
			}),
			// defaults to HTTPS, HSTS on own host
			inspect("b.gov", map[string]string{
				"Strictly Forces HTTPS": "False",
				"HSTS Preload Ready":    "False",
				"HSTS All Subdomains":   "False",
			}),
			// downgrade
			inspect("c.gov", map[string]string{"Downgrades HTTPS": "True"}),
		},
	})

	require.Equal(t, []domain.HTTPSAgencyRow{
		{Agency: "Dept", Domains: 3, HTTPS: 67, Enforced: 33, HSTS: 33, Grade: 0},
	}, res.HTTPSAgencies)
}

func TestAggregate_Idempotent(t *testing.T) {
	in := source.Input{
		Domains:   []source.DomainRow{federal("a.gov", "Dept A"), federal("b.gov", "Dept B")},
		Inspect:   []source.Record{inspect("a.gov", nil), inspect("b.gov", map[string]string{"HSTS": "False"})},
		TLS:       []source.Record{tls("a.gov", "A+")},
		Analytics: []source.Record{analytics("a.gov", "True"), analytics("b.gov", "")},
	}

	require.Equal(t, aggregate(t, in), aggregate(t, in))
}

func TestAggregate_UnrecognizedGradeFails(t *testing.T) {
	reg, _ := registry.Build(context.Background(), registry.DefaultBranches(), source.Input{
		Domains: []source.DomainRow{federal("a.gov", "Dept")},
		Inspect: []source.Record{inspect("a.gov", nil)},
		TLS:     []source.Record{tls("a.gov", "Z")},
	})

	_, err := aggregator.Aggregate(context.Background(), reg)
	require.ErrorIs(t, err, serrors.ErrUnrecognizedGrade)
	require.Contains(t, err.Error(), "a.gov")
}

func TestPercent(t *testing.T) {
	cases := []struct {
		n, d int
		want int
	}{
		{0, 1, 0},
		{1, 1, 100},
		{1, 2, 50},
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 13},
		{3, 8, 38},
		{5, 8, 63},
		{1, 200, 1},
		{1, 201, 0},
		{199, 200, 100},
	}

	for _, tc := range cases {
		got, err := aggregator.Percent(tc.n, tc.d)
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "%d/%d", tc.n, tc.d)
	}
}

func TestPercent_ComplementsNearlySumToHundred(t *testing.T) {
	for d := 1; d <= 60; d++ {
		for n := 0; n <= d; n++ {
			a, err := aggregator.Percent(n, d)
			require.NoError(t, err)
			b, err := aggregator.Percent(d-n, d)
			require.NoError(t, err)
			require.Contains(t, []int{99, 100, 101}, a+b, "%d/%d", n, d)
		}
	}
}

func TestPercent_Errors(t *testing.T) {
	_, err := aggregator.Percent(0, 0)
	require.ErrorIs(t, err, serrors.ErrEmptyDenominator)

	_, err = aggregator.Percent(1, -1)
	require.ErrorIs(t, err, serrors.ErrEmptyDenominator)

	_, err = aggregator.Percent(3, 2)
	require.ErrorIs(t, err, serrors.ErrInternal)
}
