package analyzer

import (
	"strings"

	"github.com/mgirard/crechestat/internal/survey"
)

// ManagerResolver resolves a facility name to its operating organization.
type ManagerResolver interface {
	Resolve(facility string) (string, bool)
}

// ManagerLookup resolves facilities against an external facility → manager
// mapping table. Matching degrades from exact to fuzzy:
//
//  1. exact name match
//  2. accent/case-insensitive substring containment, either direction
//  3. at least two shared words longer than two characters
//
// The fuzzy tiers can over-match on short or common facility names; they
// are kept loose on purpose, since survey spellings rarely match the
// mapping file byte for byte.
type ManagerLookup struct {
	entries []survey.FacilityManager
}

// NewManagerLookup builds a lookup from mapping-file rows.
func NewManagerLookup(entries []survey.FacilityManager) *ManagerLookup {
	return &ManagerLookup{entries: entries}
}

// Len returns the number of mapping entries.
func (l *ManagerLookup) Len() int {
	if l == nil {
		return 0
	}
	return len(l.entries)
}

// Resolve returns the manager for a facility name, or false when no tier
// matches.
func (l *ManagerLookup) Resolve(facility string) (string, bool) {
	if l == nil || facility == "" {
		return "", false
	}

	for _, e := range l.entries {
		if e.Facility == facility {
			return e.Manager, true
		}
	}

	folded := Fold(facility)
	for _, e := range l.entries {
		ef := Fold(e.Facility)
		if ef == folded || strings.Contains(ef, folded) || strings.Contains(folded, ef) {
			return e.Manager, true
		}
	}

	words := significantWords(folded)
	for _, e := range l.entries {
		if sharedWords(words, significantWords(Fold(e.Facility))) >= 2 {
			return e.Manager, true
		}
	}

	return "", false
}

// significantWords splits a folded name into words longer than two
// characters.
func significantWords(folded string) []string {
	fields := strings.FieldsFunc(folded, func(r rune) bool {
		return !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'))
	})
	var words []string
	for _, w := range fields {
		if len(w) > 2 {
			words = append(words, w)
		}
	}
	return words
}

func sharedWords(a, b []string) int {
	set := make(map[string]bool, len(a))
	for _, w := range a {
		set[w] = true
	}
	count := 0
	for _, w := range b {
		if set[w] {
			count++
			set[w] = false
		}
	}
	return count
}
