// Package registry joins the base domain list with the inspect, tls and
// analytics scans into one record per federal domain.
//
// A Registry is built once per run by Build and never mutated afterwards, so
// it can be shared by reference with every consumer. Domains() and Agencies()
// are deduplicated and sorted; downstream processing iterates in that order.
package registry

import (
	"pulse/pkg/domain"
	"slices"
)

// Registry is the immutable set of joined domain records.
type Registry struct {
	domains       map[string]*domain.Domain
	agencyDomains map[string][]string

	domainNames []string
	agencyNames []string
}

// Domains returns the sorted, deduplicated domain keys.
func (r *Registry) Domains() []string {
	return slices.Clone(r.domainNames)
}

// Agencies returns the sorted, deduplicated agency names.
func (r *Registry) Agencies() []string {
	return slices.Clone(r.agencyNames)
}

// Domain looks a domain up by its normalized key. The returned record must
// be treated as read-only.
func (r *Registry) Domain(name string) (*domain.Domain, bool) {
	d, ok := r.domains[name]

	return d, ok
}

// AgencyDomains returns the agency's member keys in base-list order. The list
// is not deduplicated: a domain listed twice for an agency appears twice.
func (r *Registry) AgencyDomains(agency string) []string {
	return slices.Clone(r.agencyDomains[agency])
}

// Len returns the number of unique domains.
func (r *Registry) Len() int {
	return len(r.domainNames)
}
