package domain

// HTTPSScore describes whether HTTPS is available at all.
type HTTPSScore int

const (
	HTTPSNo         HTTPSScore = -1
	HTTPSDowngraded HTTPSScore = 0
	HTTPSBadChain   HTTPSScore = 1
	HTTPSValid      HTTPSScore = 2
)

// EnforcementScore describes how strongly a host pushes clients onto HTTPS.
type EnforcementScore int

const (
	EnforcementNA      EnforcementScore = 0
	EnforcementPresent EnforcementScore = 1
	EnforcementYes     EnforcementScore = 2
	EnforcementStrict  EnforcementScore = 3
)

// HSTSScore describes the completeness of a host's HSTS policy.
type HSTSScore int

const (
	HSTSNotApplicable HSTSScore = -1
	HSTSNo            HSTSScore = 0
	HSTSOwnHost       HSTSScore = 1
	HSTSSubdomains    HSTSScore = 2
	HSTSPreloadReady  HSTSScore = 3
)

// HSTSMinMaxAge is the 18 week max-age required by the HSTS preload list.
// Policies below it do not count, even though OMB asks for a full year.
const HSTSMinMaxAge int64 = 10886400

// GradeScore is the ordinal form of an SSL Labs letter grade.
type GradeScore int

const (
	GradeNA     GradeScore = -1
	GradeF      GradeScore = 0
	GradeT      GradeScore = 1
	GradeC      GradeScore = 2
	GradeB      GradeScore = 3
	GradeAMinus GradeScore = 4
	GradeA      GradeScore = 5
	GradeAPlus  GradeScore = 6
)

// Grades maps every recognized letter grade to its score.
var Grades = map[string]GradeScore{ //nolint: gochecknoglobals
	"F":  GradeF,
	"T":  GradeT,
	"C":  GradeC,
	"B":  GradeB,
	"A-": GradeAMinus,
	"A":  GradeA,
	"A+": GradeAPlus,
}

// Participation is the tri-state analytics participation score.
type Participation int

const (
	ParticipationUnknown Participation = -1
	ParticipationNo      Participation = 0
	ParticipationYes     Participation = 1
)

// ParticipationOf maps a Flag onto the participation scale.
func ParticipationOf(f Flag) Participation {
	switch f {
	case FlagTrue:
		return ParticipationYes
	case FlagFalse:
		return ParticipationNo
	default:
		return ParticipationUnknown
	}
}
