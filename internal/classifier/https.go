package classifier

import (
	"pulse/pkg/domain"
	"pulse/pkg/serrors"
)

// Presence scores whether HTTPS is there at all. A downgrade to HTTP beats
// every other signal; a bad chain still counts as present.
func Presence(in *domain.Inspect) domain.HTTPSScore {
	switch {
	case in.DowngradesHTTPS.IsTrue():
		return domain.HTTPSDowngraded
	case in.ValidHTTPS.IsTrue():
		return domain.HTTPSValid
	case in.HTTPSBadChain.IsTrue():
		return domain.HTTPSBadChain
	default:
		return domain.HTTPSNo
	}
}

// Enforcement scores how HTTP traffic is pushed to HTTPS.
//
// Strict means HTTP immediately redirects to HTTPS and the host either
// defaults to HTTPS or is itself a redirector (which cannot "default" to
// anything). Yes means HTTP eventually lands on HTTPS. Strict forcing alone,
// without a default, is only Present.
func Enforcement(in *domain.Inspect, presence domain.HTTPSScore) domain.EnforcementScore {
	if presence <= 0 {
		return domain.EnforcementNA
	}

	switch {
	case in.StrictlyForcesHTTPS.IsTrue() && (in.DefaultsToHTTPS.IsTrue() || in.Redirect.IsTrue()):
		return domain.EnforcementStrict
	case in.StrictlyForcesHTTPS.IsFalse() && in.DefaultsToHTTPS.IsTrue():
		return domain.EnforcementYes
	default:
		return domain.EnforcementPresent
	}
}

// HSTS scores the completeness of the HSTS policy.
//
// Preload readiness already implies an adequate max-age and may hold on the
// root even when the canonical host is weak, so it wins over the max-age
// check. Otherwise a max-age under 18 weeks (or none at all) is a No; between
// 18 weeks and a year is accepted.
func HSTS(in *domain.Inspect, presence domain.HTTPSScore) domain.HSTSScore {
	switch {
	case presence <= 0:
		return domain.HSTSNotApplicable
	case in.HSTS.IsFalse():
		return domain.HSTSNo
	case in.HSTSPreloadReady.IsTrue():
		return domain.HSTSPreloadReady
	case in.HSTSMaxAge == nil || *in.HSTSMaxAge < domain.HSTSMinMaxAge:
		return domain.HSTSNo
	case in.HSTSAllSubdomains.IsTrue():
		return domain.HSTSSubdomains
	default:
		return domain.HSTSOwnHost
	}
}

// Grade maps an SSL Labs letter onto its score.
func Grade(letter string) (domain.GradeScore, error) {
	g, ok := domain.Grades[letter]
	if !ok {
		return domain.GradeNA, serrors.With(serrors.ErrUnrecognizedGrade, "unrecognized grade %q", letter)
	}

	return g, nil
}
