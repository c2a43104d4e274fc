package normalize

import (
	"strings"

	"golang.org/x/text/cases"
)

// Name canonicalizes a player handle for lookups: surrounding space and
// a leading "@" are stripped, the rest is Unicode case folded.
func Name(s string) string {
	s = strings.TrimPrefix(strings.TrimSpace(s), "@")
	return cases.Fold().String(s)
}

// Handle cleans a player handle for storage, keeping its original case.
func Handle(s string) string {
	return strings.TrimPrefix(strings.TrimSpace(s), "@")
}
