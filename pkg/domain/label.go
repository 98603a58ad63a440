package domain

// Column labels used by the published tables.
const (
	LabelDomain         = "Domain"
	LabelCanonical      = "Canonical"
	LabelAgency         = "Agency"
	LabelNumberOfDomain = "Number of Domains"

	LabelHTTPS         = "Uses HTTPS"
	LabelHTTPSForced   = "Enforces HTTPS"
	LabelHSTS          = "Strict Transport Security (HSTS)"
	LabelHSTSAge       = "HSTS max-age"
	LabelGrade         = "SSL Labs Grade"
	LabelGradeAgencies = "SSL Labs (A- or higher)"
	LabelDAP           = "Participates in DAP?"
	LabelFS            = "Forward Secrecy"
	LabelRC4           = "RC4"
	LabelSig           = "Signature Algorithm"
	LabelSSL3          = "SSLv3"
	LabelTLS12         = "TLSv1.2"
)
