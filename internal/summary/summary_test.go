package summary_test

import (
	"pulse/internal/summary"
	"pulse/pkg/domain"
	"pulse/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

func httpsRow(presence domain.HTTPSScore, enforcement domain.EnforcementScore) domain.HTTPSRow {
	return domain.HTTPSRow{HTTPS: presence, Enforcement: enforcement}
}

func TestHTTPS(t *testing.T) {
	rows := []domain.HTTPSRow{
		httpsRow(domain.HTTPSValid, domain.EnforcementStrict),
		httpsRow(domain.HTTPSBadChain, domain.EnforcementPresent),
		httpsRow(domain.HTTPSDowngraded, domain.EnforcementNA),
		httpsRow(domain.HTTPSNo, domain.EnforcementNA),
	}

	got, err := summary.HTTPS(rows)
	require.NoError(t, err)
	require.Equal(t, domain.Split{Active: 50, Inactive: 50}, got)
}

func TestHTTPS_Rounding(t *testing.T) {
	rows := []domain.HTTPSRow{
		httpsRow(domain.HTTPSValid, domain.EnforcementYes),
		httpsRow(domain.HTTPSValid, domain.EnforcementYes),
		httpsRow(domain.HTTPSNo, domain.EnforcementNA),
	}

	got, err := summary.HTTPS(rows)
	require.NoError(t, err)
	require.Equal(t, domain.Split{Active: 67, Inactive: 33}, got)
	require.Equal(t, [][]string{{"status", "value"}, {"active", "67"}, {"inactive", "33"}}, got.Table())
}

func TestAnalytics(t *testing.T) {
	rows := []domain.AnalyticsRow{
		{Participates: domain.ParticipationYes},
		{Participates: domain.ParticipationNo},
		{Participates: domain.ParticipationUnknown},
	}

	got, err := summary.Analytics(rows)
	require.NoError(t, err)
	require.Equal(t, domain.Split{Active: 33, Inactive: 67}, got)
}

func TestEmptyRowsFail(t *testing.T) {
	_, err := summary.HTTPS(nil)
	require.ErrorIs(t, err, serrors.ErrEmptyDenominator)

	_, err = summary.Analytics([]domain.AnalyticsRow{})
	require.ErrorIs(t, err, serrors.ErrEmptyDenominator)
}
