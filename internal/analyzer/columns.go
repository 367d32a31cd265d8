package analyzer

import (
	"regexp"
	"sort"
	"strings"
)

// checkboxPattern matches "<stem> : [<option>]" headers produced by
// checkbox-grid exports.
var checkboxPattern = regexp.MustCompile(`^(.+?)\s*:\s*\[(.+)\]$`)

// headerRule inspects one header and claims it for the mapping. Returns
// true when the header was consumed; rules run in a fixed order and the
// first match wins, so no header is claimed twice.
type headerRule func(m *ColumnMapping, idx int, header string, vocab Vocabulary) bool

var headerRules = []headerRule{
	matchDateColumn,
	matchFacilityColumn,
	matchManagerColumn,
	matchGenderColumn,
	matchAgeColumn,
	matchCSPColumn,
	matchSatisfactionColumn,
	matchCheckboxOption,
	matchNoReasonPrefix,
}

// IdentifyColumns scans the header row once and produces the column
// mapping. Headers that no rule claims are carried through later as
// ad-hoc single-column questions.
func IdentifyColumns(headers []string, vocab Vocabulary) ColumnMapping {
	m := newColumnMapping()
	for idx, header := range headers {
		if strings.TrimSpace(header) == "" {
			continue
		}
		for _, rule := range headerRules {
			if rule(&m, idx, header, vocab) {
				break
			}
		}
	}
	for _, g := range m.Groups {
		sort.Slice(g.Options, func(i, j int) bool {
			return g.Options[i].Index < g.Options[j].Index
		})
	}
	return m
}

// foldedEqualsAny compares a header to prompt labels accent- and
// case-insensitively. Real exports spell the same prompt with and without
// accents, so byte equality would lose columns.
func foldedEqualsAny(header string, labels []string) bool {
	h := Fold(header)
	for _, label := range labels {
		if h == Fold(label) {
			return true
		}
	}
	return false
}

func matchDateColumn(m *ColumnMapping, idx int, header string, vocab Vocabulary) bool {
	if m.Date >= 0 || !foldedEqualsAny(header, vocab.DateLabels) {
		return false
	}
	m.Date = idx
	return true
}

func matchFacilityColumn(m *ColumnMapping, idx int, header string, vocab Vocabulary) bool {
	if m.Facility >= 0 || !foldedEqualsAny(header, vocab.FacilityLabels) {
		return false
	}
	m.Facility = idx
	return true
}

func matchManagerColumn(m *ColumnMapping, idx int, header string, vocab Vocabulary) bool {
	h := Fold(header)
	for _, name := range vocab.ManagerNames {
		if h == Fold(name) {
			m.Managers = append(m.Managers, ManagerColumn{Index: idx, Name: name})
			return true
		}
	}
	return false
}

func matchGenderColumn(m *ColumnMapping, idx int, header string, vocab Vocabulary) bool {
	if m.Gender >= 0 || !foldedEqualsAny(header, vocab.GenderLabels) {
		return false
	}
	m.Gender = idx
	return true
}

func matchAgeColumn(m *ColumnMapping, idx int, header string, vocab Vocabulary) bool {
	if m.Age >= 0 || !foldedEqualsAny(header, vocab.AgeLabels) {
		return false
	}
	m.Age = idx
	return true
}

func matchCSPColumn(m *ColumnMapping, idx int, header string, vocab Vocabulary) bool {
	if m.CSP >= 0 || !foldedEqualsAny(header, vocab.CSPLabels) {
		return false
	}
	m.CSP = idx
	return true
}

// matchSatisfactionColumn tries the exact prompt first, then falls back to
// a substring heuristic: a header mentioning satisfaction together with the
// crèche or the welcome. First candidate wins; later ones are ignored.
func matchSatisfactionColumn(m *ColumnMapping, idx int, header string, vocab Vocabulary) bool {
	if m.Satisfaction >= 0 {
		return false
	}
	if foldedEqualsAny(header, vocab.SatisfactionLabels) {
		m.Satisfaction = idx
		return true
	}
	h := Fold(header)
	if strings.Contains(h, "satisfait") && (strings.Contains(h, "creche") || strings.Contains(h, "accueil")) {
		m.Satisfaction = idx
		return true
	}
	return false
}

func matchCheckboxOption(m *ColumnMapping, idx int, header string, vocab Vocabulary) bool {
	groups := checkboxPattern.FindStringSubmatch(strings.TrimSpace(header))
	if groups == nil {
		return false
	}
	stem := strings.TrimSpace(groups[1])
	option := strings.TrimSpace(groups[2])
	addGroupOption(m, stem, option, idx)
	return true
}

// matchNoReasonPrefix groups every "Si non, pourquoi ?" column into one
// checkbox-style question keyed by the literal prefix.
func matchNoReasonPrefix(m *ColumnMapping, idx int, header string, vocab Vocabulary) bool {
	if vocab.NoReasonPrefix == "" {
		return false
	}
	trimmed := strings.TrimSpace(header)
	if !strings.HasPrefix(trimmed, vocab.NoReasonPrefix) {
		return false
	}
	option := strings.TrimSpace(strings.TrimPrefix(trimmed, vocab.NoReasonPrefix))
	if option == "" {
		option = trimmed
	}
	addGroupOption(m, vocab.NoReasonPrefix, option, idx)
	return true
}

func addGroupOption(m *ColumnMapping, stem, option string, idx int) {
	key := Slug(stem)
	g, ok := m.Groups[key]
	if !ok {
		g = &CheckboxGroup{Stem: stem, Key: key}
		m.Groups[key] = g
	}
	g.Options = append(g.Options, GroupOption{Index: idx, Label: option})
}
