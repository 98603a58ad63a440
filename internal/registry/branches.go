package registry

import (
	_ "embed"
	"fmt"
	"os"
	"pulse/pkg/domain"

	"github.com/BurntSushi/toml"
)

//go:embed branches.toml
var defaultBranches []byte

// BranchTable resolves an agency name to its government branch.
type BranchTable struct {
	fallback domain.Branch
	agencies map[string]domain.Branch
}

type branchFile struct {
	Default  string            `toml:"default"`
	Agencies map[string]string `toml:"agencies"`
}

// DefaultBranches returns the built-in agency table.
func DefaultBranches() BranchTable {
	t, err := ParseBranches(defaultBranches)
	if err != nil {
		panic(fmt.Sprintf("embedded branch table is invalid: %v", err))
	}

	return t
}

// LoadBranches reads a branch table from a TOML file. An empty path yields
// the built-in table.
func LoadBranches(path string) (BranchTable, error) {
	if path == "" {
		return DefaultBranches(), nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return BranchTable{}, fmt.Errorf("could not read branch table: %w", err)
	}

	return ParseBranches(b)
}

// ParseBranches decodes a TOML branch table and validates every branch name.
func ParseBranches(data []byte) (BranchTable, error) {
	var f branchFile
	if _, err := toml.Decode(string(data), &f); err != nil {
		return BranchTable{}, fmt.Errorf("could not decode branch table: %w", err)
	}

	t := BranchTable{
		fallback: domain.BranchExecutive,
		agencies: make(map[string]domain.Branch, len(f.Agencies)),
	}
	if f.Default != "" {
		b, err := parseBranch(f.Default)
		if err != nil {
			return BranchTable{}, err
		}
		t.fallback = b
	}
	for agency, name := range f.Agencies {
		b, err := parseBranch(name)
		if err != nil {
			return BranchTable{}, fmt.Errorf("agency %q: %w", agency, err)
		}
		t.agencies[agency] = b
	}

	return t, nil
}

func parseBranch(s string) (domain.Branch, error) {
	switch b := domain.Branch(s); b {
	case domain.BranchExecutive, domain.BranchLegislative, domain.BranchJudicial, domain.BranchNonFederal:
		return b, nil
	default:
		return "", fmt.Errorf("unknown branch %q", s)
	}
}

// For returns the branch of agency.
func (t BranchTable) For(agency string) domain.Branch {
	if b, ok := t.agencies[agency]; ok {
		return b
	}
	if t.fallback == "" {
		return domain.BranchExecutive
	}

	return t.fallback
}
