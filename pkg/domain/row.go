package domain

import "strconv"

// HTTPSRow is the per-domain record of the HTTPS/TLS track.
type HTTPSRow struct {
	Domain    string
	Canonical string
	Agency    string

	HTTPS       HTTPSScore
	Enforcement EnforcementScore
	HSTS        HSTSScore
	HSTSMaxAge  *int64

	// Grade is GradeNA when there is no HTTPS or no TLS scan; all TLS
	// attributes below are nil in that case.
	Grade              GradeScore
	ForwardSecrecy     *int
	SignatureAlgorithm *string
	RC4                *bool
	SSLv3              *bool
	TLSv12             *bool
}

// AnalyticsRow is the per-domain record of the analytics track.
type AnalyticsRow struct {
	Domain       string
	Canonical    string
	Agency       string
	Participates Participation
}

// HTTPSAgencyRow is an agency rollup of the HTTPS/TLS track. Percentages are
// whole numbers in [0, 100].
type HTTPSAgencyRow struct {
	Agency  string
	Domains int

	HTTPS    int
	Enforced int
	HSTS     int
	Grade    int
}

// AnalyticsAgencyRow is an agency rollup of the analytics track.
type AnalyticsAgencyRow struct {
	Agency       string
	Domains      int
	Participates int
}

// Split is a two bucket percentage; Active+Inactive is always 100.
type Split struct {
	Active   int
	Inactive int
}

// Table renders the split as the status/value table consumed by the charts.
func (s Split) Table() [][]string {
	return [][]string{
		{"status", "value"},
		{"active", strconv.Itoa(s.Active)},
		{"inactive", strconv.Itoa(s.Inactive)},
	}
}
