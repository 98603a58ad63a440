package domain

// Branch is the government branch owning a domain's agency.
type Branch string

const (
	BranchExecutive   Branch = "executive"
	BranchLegislative Branch = "legislative"
	BranchJudicial    Branch = "judicial"
	BranchNonFederal  Branch = "non-federal"
)

// Inspect holds the liveness, redirect and HTTPS/HSTS observations for a
// domain's canonical endpoint.
type Inspect struct {
	// Canonical is the endpoint the scanner settled on, e.g. "https://www.example.gov".
	Canonical string

	Live                Flag
	Redirect            Flag
	DowngradesHTTPS     Flag
	ValidHTTPS          Flag
	HTTPSBadChain       Flag
	StrictlyForcesHTTPS Flag
	DefaultsToHTTPS     Flag

	HSTS              Flag
	HSTSPreloadReady  Flag
	HSTSAllSubdomains Flag
	// HSTSMaxAge is nil when the header carried no parseable max-age.
	HSTSMaxAge *int64
}

// TLS holds the grading of a domain's TLS configuration.
type TLS struct {
	// Grade is kept as read; it is validated when the domain is classified.
	Grade string
	// ForwardSecrecy is nil when the source cell was not an integer.
	ForwardSecrecy     *int
	SignatureAlgorithm string
	RC4                Flag
	SSLv3              Flag
	TLSv12             Flag
}

// Analytics holds a domain's web analytics participation.
type Analytics struct {
	Participates Flag
}

// Domain is the joined record for one federal hostname. Inspect, TLS and
// Analytics are nil when the corresponding scan produced no row for the host.
type Domain struct {
	// Name is the lowercased hostname and the registry key.
	Name   string
	Branch Branch
	Agency string

	Inspect   *Inspect
	TLS       *TLS
	Analytics *Analytics
}
