package entry

import (
	"strconv"
	"strings"

	"github.com/thoreinstein/dotcli/internal/errors"
)

const (
	aliasKeyword = "alias"
	pathKeyword  = "export PATH="
)

// ParseAliases returns every alias line in text, in file order.
//
// The first space-delimited token (normally "alias") is dropped and the
// remainder is split on the first "=". A matching line without "=" fails
// the whole parse with ErrMalformedEntry.
func ParseAliases(text string) ([]Alias, error) {
	var aliases []Alias

	for lineNo, line := range lines(text) {
		if !strings.Contains(line, aliasKeyword) {
			continue
		}

		rest := dropFirstToken(line)
		name, value, ok := strings.Cut(rest, "=")
		if !ok {
			return nil, errors.Mark(
				errors.Newf("line %d: alias without '=': %q", lineNo+1, line),
				errors.ErrMalformedEntry,
			)
		}

		aliases = append(aliases, Alias{
			ID:    strconv.Itoa(len(aliases) + 1),
			Name:  name,
			Value: value,
		})
	}

	return aliases, nil
}

// ParsePaths returns every PATH export line in text, in file order.
// The path is everything after the first "=".
func ParsePaths(text string) []PathEntry {
	var entries []PathEntry

	for _, line := range lines(text) {
		if !strings.Contains(line, pathKeyword) {
			continue
		}
		_, rhs, _ := strings.Cut(line, "=")
		entries = append(entries, PathEntry{
			ID:   strconv.Itoa(len(entries) + 1),
			Path: rhs,
		})
	}

	return entries
}

// HasAlias reports whether name is among aliases. Comparison is exact.
func HasAlias(aliases []Alias, name string) bool {
	for _, a := range aliases {
		if a.Name == name {
			return true
		}
	}
	return false
}

// dropFirstToken removes everything up to and including the first space.
func dropFirstToken(line string) string {
	_, rest, found := strings.Cut(line, " ")
	if !found {
		return ""
	}
	return rest
}

// lines splits text on "\n" or "\r\n" with no trailing empty line.
func lines(text string) []string {
	var out []string
	for line := range strings.Lines(text) {
		out = append(out, strings.TrimRight(line, "\r\n"))
	}
	return out
}
