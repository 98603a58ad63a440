package registry

import (
	"context"
	"pulse/pkg/domain"
	"pulse/pkg/logger"
	"pulse/pkg/source"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// FederalAgencyType is the base-list domain type admitted to the registry.
const FederalAgencyType = "Federal Agency"

// Sources name the inputs a row can come from.
const (
	SourceDomains   = "domains"
	SourceInspect   = "inspect"
	SourceTLS       = "tls"
	SourceAnalytics = "analytics"
)

// Reasons a row is left out of the registry.
const (
	ReasonNotFederal    = "not_federal"
	ReasonNonFederal    = "non_federal_branch"
	ReasonUnknownDomain = "unknown_domain"
	ReasonNoInspect     = "no_inspect"
)

// Skip identifies a class of dropped input rows.
type Skip struct {
	Source string
	Reason string
}

// BuildStats summarizes what happened to the input rows.
type BuildStats struct {
	Domains  int
	Agencies int
	// Skipped counts dropped rows per source and reason.
	Skipped map[Skip]int
	// Malformed counts numeric cells that could not be parsed and were
	// treated as absent.
	Malformed int
	// TLSReplaced counts tls rows that superseded an earlier row for the same domain.
	TLSReplaced int
}

type builder struct {
	ctx      context.Context
	branches BranchTable
	reg      *Registry
	stats    BuildStats
}

// Build joins the inputs into a Registry. Inputs are applied in order: the
// base list first, then inspect, tls and analytics. Rows referring to domains
// that were not admitted are dropped, and analytics rows are only attached
// to domains that already have an inspect record.
//
// When the base list repeats a domain the last row defines its agency and
// branch. When tls repeats a domain the last row wins.
func Build(ctx context.Context, branches BranchTable, in source.Input) (*Registry, BuildStats) {
	b := &builder{
		ctx:      ctx,
		branches: branches,
		reg: &Registry{
			domains:       make(map[string]*domain.Domain),
			agencyDomains: make(map[string][]string),
		},
		stats: BuildStats{Skipped: make(map[Skip]int)},
	}

	for _, row := range in.Domains {
		b.addDomain(row)
	}
	slices.Sort(b.reg.domainNames)
	slices.Sort(b.reg.agencyNames)

	for _, rec := range in.Inspect {
		if d := b.lookup(SourceInspect, rec.Domain); d != nil {
			d.Inspect = b.parseInspect(rec)
		}
	}
	for _, rec := range in.TLS {
		if d := b.lookup(SourceTLS, rec.Domain); d != nil {
			if d.TLS != nil {
				b.stats.TLSReplaced++
			}
			d.TLS = b.parseTLS(rec)
		}
	}
	for _, rec := range in.Analytics {
		d := b.lookup(SourceAnalytics, rec.Domain)
		if d == nil {
			continue
		}
		if d.Inspect == nil {
			b.skip(SourceAnalytics, ReasonNoInspect, rec.Domain)

			continue
		}
		d.Analytics = &domain.Analytics{
			Participates: domain.ParseFlag(rec.Get("Participates in Analytics")),
		}
	}

	b.stats.Domains = len(b.reg.domainNames)
	b.stats.Agencies = len(b.reg.agencyNames)

	return b.reg, b.stats
}

func (b *builder) addDomain(row source.DomainRow) {
	if row.Type != FederalAgencyType {
		b.skip(SourceDomains, ReasonNotFederal, row.Domain)

		return
	}
	branch := b.branches.For(row.Agency)
	if branch == domain.BranchNonFederal {
		b.skip(SourceDomains, ReasonNonFederal, row.Domain)

		return
	}

	if _, seen := b.reg.domains[row.Domain]; !seen {
		b.reg.domainNames = append(b.reg.domainNames, row.Domain)
	}
	if _, seen := b.reg.agencyDomains[row.Agency]; !seen {
		b.reg.agencyNames = append(b.reg.agencyNames, row.Agency)
	}
	b.reg.agencyDomains[row.Agency] = append(b.reg.agencyDomains[row.Agency], row.Domain)

	b.reg.domains[row.Domain] = &domain.Domain{
		Name:   row.Domain,
		Branch: branch,
		Agency: row.Agency,
	}
}

func (b *builder) lookup(src, name string) *domain.Domain {
	d, ok := b.reg.domains[name]
	if !ok {
		b.skip(src, ReasonUnknownDomain, name)

		return nil
	}

	return d
}

func (b *builder) skip(src, reason, name string) {
	b.stats.Skipped[Skip{Source: src, Reason: reason}]++
	logger.Debug(b.ctx, "skipping row",
		zap.String("source", src),
		zap.String("domain", name),
		zap.String("reason", reason))
}

func (b *builder) parseInspect(rec source.Record) *domain.Inspect {
	flag := func(name string) domain.Flag { return domain.ParseFlag(rec.Get(name)) }

	in := &domain.Inspect{
		Canonical:           rec.Get("Canonical"),
		Live:                flag("Live"),
		Redirect:            flag("Redirect"),
		DowngradesHTTPS:     flag("Downgrades HTTPS"),
		ValidHTTPS:          flag("Valid HTTPS"),
		HTTPSBadChain:       flag("HTTPS Bad Chain"),
		StrictlyForcesHTTPS: flag("Strictly Forces HTTPS"),
		DefaultsToHTTPS:     flag("Defaults to HTTPS"),
		HSTS:                flag("HSTS"),
		HSTSPreloadReady:    flag("HSTS Preload Ready"),
		HSTSAllSubdomains:   flag("HSTS All Subdomains"),
	}
	if age, ok := b.parseInt(rec, "HSTS Max Age", 64); ok {
		in.HSTSMaxAge = &age
	}

	return in
}

func (b *builder) parseTLS(rec source.Record) *domain.TLS {
	t := &domain.TLS{
		Grade:              rec.Get("Grade"),
		SignatureAlgorithm: rec.Get("Signature Algorithm"),
		RC4:                domain.ParseFlag(rec.Get("RC4")),
		SSLv3:              domain.ParseFlag(rec.Get("SSLv3")),
		TLSv12:             domain.ParseFlag(rec.Get("TLSv1.2")),
	}
	if fs, ok := b.parseInt(rec, "Forward Secrecy", strconv.IntSize); ok {
		v := int(fs)
		t.ForwardSecrecy = &v
	}

	return t
}

// parseInt reads an optional integer cell that must fit in bits. Empty cells
// are absent; anything unparseable is absent too and counted as malformed.
func (b *builder) parseInt(rec source.Record, name string, bits int) (int64, bool) {
	raw := strings.TrimSpace(rec.Get(name))
	if raw == "" {
		return 0, false
	}

	v, err := strconv.ParseInt(raw, 10, bits)
	if err != nil {
		b.stats.Malformed++
		logger.Debug(b.ctx, "treating malformed number as absent",
			zap.String("domain", rec.Domain),
			zap.String("field", name),
			zap.String("value", raw))

		return 0, false
	}

	return v, true
}
