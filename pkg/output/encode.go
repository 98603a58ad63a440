package output

import (
	"encoding/csv"
	"io"
	"pulse/pkg/domain"
	"slices"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// field is one key of a JSON object and the function writing its value.
type field struct {
	name  string
	value func(e *jx.Encoder)
}

func str(s string) func(e *jx.Encoder) { return func(e *jx.Encoder) { e.Str(s) } }
func num(n int) func(e *jx.Encoder)    { return func(e *jx.Encoder) { e.Int(n) } }

func optInt(v *int) func(e *jx.Encoder) {
	return func(e *jx.Encoder) {
		if v == nil {
			e.Null()

			return
		}
		e.Int(*v)
	}
}

func optInt64(v *int64) func(e *jx.Encoder) {
	return func(e *jx.Encoder) {
		if v == nil {
			e.Null()

			return
		}
		e.Int64(*v)
	}
}

func optStr(v *string) func(e *jx.Encoder) {
	return func(e *jx.Encoder) {
		if v == nil {
			e.Null()

			return
		}
		e.Str(*v)
	}
}

func optBool(v *bool) func(e *jx.Encoder) {
	return func(e *jx.Encoder) {
		if v == nil {
			e.Null()

			return
		}
		e.Bool(*v)
	}
}

// object writes fields with keys in byte order, so output is stable no
// matter how a row type lists its columns.
func object(e *jx.Encoder, fields []field) {
	slices.SortFunc(fields, func(a, b field) int { return strings.Compare(a.name, b.name) })

	e.ObjStart()
	for _, f := range fields {
		e.FieldStart(f.name)
		f.value(e)
	}
	e.ObjEnd()
}

// table writes {"data": [...]} with one object per row.
func table[T any](rows []T, indent int, fields func(T) []field) []byte {
	e := &jx.Encoder{}
	e.SetIdent(indent)

	e.ObjStart()
	e.FieldStart("data")
	if len(rows) == 0 {
		// keep empty tables on one line: "data": []
		e.ArrEmpty()
	} else {
		e.ArrStart()
		for _, r := range rows {
			object(e, fields(r))
		}
		e.ArrEnd()
	}
	e.ObjEnd()

	return e.Bytes()
}

func httpsDomainFields(r domain.HTTPSRow) []field {
	return []field{
		{domain.LabelDomain, str(r.Domain)},
		{domain.LabelCanonical, str(r.Canonical)},
		{domain.LabelAgency, str(r.Agency)},
		{domain.LabelHTTPS, num(int(r.HTTPS))},
		{domain.LabelHTTPSForced, num(int(r.Enforcement))},
		{domain.LabelHSTS, num(int(r.HSTS))},
		{domain.LabelHSTSAge, optInt64(r.HSTSMaxAge)},
		{domain.LabelGrade, num(int(r.Grade))},
		{domain.LabelFS, optInt(r.ForwardSecrecy)},
		{domain.LabelSig, optStr(r.SignatureAlgorithm)},
		{domain.LabelRC4, optBool(r.RC4)},
		{domain.LabelSSL3, optBool(r.SSLv3)},
		{domain.LabelTLS12, optBool(r.TLSv12)},
	}
}

func httpsAgencyFields(r domain.HTTPSAgencyRow) []field {
	return []field{
		{domain.LabelAgency, str(r.Agency)},
		{domain.LabelNumberOfDomain, num(r.Domains)},
		{domain.LabelHTTPS, num(r.HTTPS)},
		{domain.LabelHTTPSForced, num(r.Enforced)},
		{domain.LabelHSTS, num(r.HSTS)},
		{domain.LabelGradeAgencies, num(r.Grade)},
	}
}

func analyticsDomainFields(r domain.AnalyticsRow) []field {
	return []field{
		{domain.LabelDomain, str(r.Domain)},
		{domain.LabelCanonical, str(r.Canonical)},
		{domain.LabelAgency, str(r.Agency)},
		{domain.LabelDAP, num(int(r.Participates))},
	}
}

func analyticsAgencyFields(r domain.AnalyticsAgencyRow) []field {
	return []field{
		{domain.LabelAgency, str(r.Agency)},
		{domain.LabelNumberOfDomain, num(r.Domains)},
		{domain.LabelDAP, num(r.Participates)},
	}
}

// EncodeHTTPSDomains renders the per-domain HTTPS/TLS table.
func EncodeHTTPSDomains(rows []domain.HTTPSRow, indent int) []byte {
	return table(rows, indent, httpsDomainFields)
}

// EncodeHTTPSAgencies renders the HTTPS/TLS agency table.
func EncodeHTTPSAgencies(rows []domain.HTTPSAgencyRow, indent int) []byte {
	return table(rows, indent, httpsAgencyFields)
}

// EncodeAnalyticsDomains renders the per-domain analytics table.
func EncodeAnalyticsDomains(rows []domain.AnalyticsRow, indent int) []byte {
	return table(rows, indent, analyticsDomainFields)
}

// EncodeAnalyticsAgencies renders the analytics agency table.
func EncodeAnalyticsAgencies(rows []domain.AnalyticsAgencyRow, indent int) []byte {
	return table(rows, indent, analyticsAgencyFields)
}

// EncodeStats writes the split as a status/value CSV with CRLF line endings.
func EncodeStats(w io.Writer, s domain.Split) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	if err := cw.WriteAll(s.Table()); err != nil {
		return errors.Wrap(err, "write stats csv")
	}

	return nil
}
