package source_test

import (
	"context"
	"os"
	"path/filepath"
	"pulse/pkg/serrors"
	"pulse/pkg/source"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeHost(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  string
	}{
		{name: "lowercase", in: "WWW.Example.GOV", out: "www.example.gov"},
		{name: "trim whitespace", in: "  example.gov\t", out: "example.gov"},
		{name: "subdomains kept", in: "www.example.gov", out: "www.example.gov"},
		{name: "already normalized", in: "example.gov", out: "example.gov"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.out, source.NormalizeHost(tc.in))
		})
	}
}

func TestReadDomains(t *testing.T) {
	in := strings.Join([]string{
		"Domain Name,Domain Type,Agency",
		"EXAMPLE.GOV,Federal Agency,Department of Examples",
		"city.gov,City,Non-Federal Agency",
		"DOMAIN NAME,Domain Type,Agency",
		"loc.gov,Federal Agency,Library of Congress,extra",
	}, "\n")

	rows, err := source.ReadDomains(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, []source.DomainRow{
		{Domain: "example.gov", Type: "Federal Agency", Agency: "Department of Examples"},
		{Domain: "city.gov", Type: "City", Agency: "Non-Federal Agency"},
		{Domain: "loc.gov", Type: "Federal Agency", Agency: "Library of Congress"},
	}, rows)
}

func TestReadDomains_ShortRow(t *testing.T) {
	_, err := source.ReadDomains(strings.NewReader("example.gov,Federal Agency\n"))
	require.ErrorIs(t, err, serrors.ErrMalformedInput)
}

func TestReadRecords(t *testing.T) {
	in := strings.Join([]string{
		"Domain,Canonical,Live",
		"Example.gov,https://example.gov,True",
		"short.gov",
		"domain,Grade",
		"other.gov,A+",
	}, "\n")

	recs, err := source.ReadRecords(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, recs, 3)

	require.Equal(t, "example.gov", recs[0].Domain)
	require.Equal(t, "https://example.gov", recs[0].Get("Canonical"))
	require.Equal(t, "True", recs[0].Get("Live"))

	require.Equal(t, "short.gov", recs[1].Domain)
	require.Equal(t, "", recs[1].Get("Live"), "missing trailing cells read as empty")

	// second header row replaces the columns
	require.Equal(t, "A+", recs[2].Get("Grade"))
	require.Equal(t, "", recs[2].Get("Canonical"))
}

func TestReadRecords_Malformed(t *testing.T) {
	cases := map[string]string{
		"data before header": "example.gov,True\n",
		"too many cells":     "Domain,Live\nexample.gov,True,extra\n",
		"bad quoting":        "Domain,Live\n\"example.gov,True\n",
	}

	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := source.ReadRecords(strings.NewReader(in))
			require.ErrorIs(t, err, serrors.ErrMalformedInput)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(content), 0o600))

		return p
	}

	paths := source.Paths{
		Domains:   write("domains.csv", "Domain Name,Domain Type,Agency\na.gov,Federal Agency,Dept A\n"),
		Inspect:   write("inspect.csv", "Domain,Live\na.gov,True\n"),
		TLS:       write("tls.csv", "Domain,Grade\na.gov,A\na.gov,B\n"),
		Analytics: write("analytics.csv", "Domain,Participates in Analytics\n"),
	}

	in, err := source.Load(context.Background(), paths)
	require.NoError(t, err)
	require.Len(t, in.Domains, 1)
	require.Len(t, in.Inspect, 1)
	require.Len(t, in.TLS, 2)
	require.Empty(t, in.Analytics)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := source.Load(context.Background(), source.Paths{Domains: filepath.Join(t.TempDir(), "nope.csv")})
	require.Error(t, err)
	require.Contains(t, err.Error(), "nope.csv")
}
