package source

import "strings"

// NormalizeHost returns the registry key for a hostname cell: surrounding
// whitespace is dropped and the host is lower-cased. Nothing else is touched,
// so "www.example.gov" and "example.gov" stay distinct keys.
func NormalizeHost(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// isHeader reports whether a row's first cell marks a header row.
func isHeader(first string, prefix bool) bool {
	cell := strings.ToLower(strings.TrimSpace(first))
	if prefix {
		return strings.HasPrefix(cell, "domain")
	}

	return cell == "domain"
}
