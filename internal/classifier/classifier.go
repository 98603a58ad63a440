// Package classifier turns one joined domain record into the scored rows of
// the HTTPS/TLS and analytics tracks. Every function here is pure: the result
// depends only on the record passed in and the static tables in pkg/domain.
package classifier

import (
	"pulse/pkg/domain"
	"pulse/pkg/serrors"
)

// EligibleForHTTPS reports whether d belongs in the HTTPS/TLS track: it was
// inspected and found live.
func EligibleForHTTPS(d *domain.Domain) bool {
	return d.Inspect != nil && d.Inspect.Live.IsTrue()
}

// EligibleForAnalytics reports whether d belongs in the analytics track: a
// live, non-redirecting executive branch domain with an analytics scan.
func EligibleForAnalytics(d *domain.Domain) bool {
	return d.Inspect != nil &&
		d.Analytics != nil &&
		d.Inspect.Live.IsTrue() &&
		d.Inspect.Redirect.IsFalse() &&
		d.Branch == domain.BranchExecutive
}

// HTTPSRow scores d for the HTTPS/TLS track. It fails with
// serrors.ErrIncompleteRecord when d was never inspected and with
// serrors.ErrUnrecognizedGrade when its TLS grade is not a known letter.
func HTTPSRow(d *domain.Domain) (domain.HTTPSRow, error) {
	in := d.Inspect
	if in == nil {
		return domain.HTTPSRow{}, serrors.With(serrors.ErrIncompleteRecord, "domain %s has no inspect record", d.Name)
	}

	row := domain.HTTPSRow{
		Domain:     d.Name,
		Canonical:  in.Canonical,
		Agency:     d.Agency,
		HTTPS:      Presence(in),
		HSTSMaxAge: in.HSTSMaxAge,
	}
	row.Enforcement = Enforcement(in, row.HTTPS)
	row.HSTS = HSTS(in, row.HTTPS)

	row.Grade = domain.GradeNA
	if row.HTTPS <= 0 || d.TLS == nil {
		return row, nil
	}

	grade, err := Grade(d.TLS.Grade)
	if err != nil {
		return domain.HTTPSRow{}, serrors.Wrap(serrors.ErrUnrecognizedGrade, err, "domain %s", d.Name)
	}
	sig := d.TLS.SignatureAlgorithm
	row.Grade = grade
	row.ForwardSecrecy = d.TLS.ForwardSecrecy
	row.SignatureAlgorithm = &sig
	row.RC4 = d.TLS.RC4.Bool()
	row.SSLv3 = d.TLS.SSLv3.Bool()
	row.TLSv12 = d.TLS.TLSv12.Bool()

	return row, nil
}

// AnalyticsRow scores d for the analytics track. A domain without an
// analytics scan scores ParticipationUnknown.
func AnalyticsRow(d *domain.Domain) (domain.AnalyticsRow, error) {
	if d.Inspect == nil {
		return domain.AnalyticsRow{}, serrors.With(serrors.ErrIncompleteRecord, "domain %s has no inspect record", d.Name)
	}

	row := domain.AnalyticsRow{
		Domain:       d.Name,
		Canonical:    d.Inspect.Canonical,
		Agency:       d.Agency,
		Participates: domain.ParticipationUnknown,
	}
	if d.Analytics != nil {
		row.Participates = domain.ParticipationOf(d.Analytics.Participates)
	}

	return row, nil
}
