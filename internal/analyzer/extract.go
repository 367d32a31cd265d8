package analyzer

import (
	"sort"
	"strings"

	"github.com/mgirard/crechestat/internal/survey"
)

// noAnswerValues are cell contents that count as "no answer" for generic
// question columns.
var noAnswerValues = map[string]bool{
	"sans reponse": true,
	"n/a":          true,
	"na":           true,
}

// affirmationMarks are checkbox cell values that mean "checked" without
// carrying any text of their own.
var affirmationMarks = map[string]bool{
	"oui":  true,
	"yes":  true,
	"x":    true,
	"✓":    true,
	"1":    true,
	"vrai": true,
	"true": true,
}

// ExtractResponse turns one data row into a normalized Response. The row
// must already have passed the row-validity check (at least one non-empty
// cell). id is the 1-based data-row ordinal.
func ExtractResponse(row []survey.Cell, m ColumnMapping, headers []string, lookup ManagerResolver, vocab Vocabulary, id int) Response {
	r := Response{
		ID:           id,
		Facility:     vocab.Unidentified,
		Manager:      vocab.Unspecified,
		Gender:       vocab.Unspecified,
		Age:          vocab.Unspecified,
		CSP:          vocab.Unspecified,
		Satisfaction: vocab.Unspecified,
		Answers:      make(map[string]Answer),
	}

	facility := cellText(row, m.Facility)
	if foldedEqualsAny(facility, vocab.FacilityLabels) {
		// Some exports repeat the selector prompt in unanswered cells.
		facility = ""
	}
	if facility != "" {
		r.Facility = facility
		if lookup != nil {
			if manager, ok := lookup.Resolve(facility); ok {
				r.Manager = manager
			}
		}
	}

	// Fallback: first manager column with a non-empty cell.
	if r.Manager == vocab.Unspecified {
		for _, mc := range m.Managers {
			if cellText(row, mc.Index) != "" {
				r.Manager = mc.Name
				break
			}
		}
	}

	if gender := cellText(row, m.Gender); gender != "" {
		r.Gender = classifyGender(gender, vocab)
	}
	if age := cellText(row, m.Age); age != "" {
		r.Age = age
	}
	if csp := cellText(row, m.CSP); csp != "" {
		r.CSP = csp
	}
	if sat := cellText(row, m.Satisfaction); sat != "" {
		r.Satisfaction = sat
	}
	if m.Date >= 0 && m.Date < len(row) {
		r.Date = survey.ParseDate(row[m.Date])
	}

	extractAnswers(&r, row, m, headers)
	return r
}

// classifyGender buckets the raw cell by substring. Unrecognized values
// degrade to the unspecified sentinel.
func classifyGender(raw string, vocab Vocabulary) string {
	folded := Fold(raw)
	if strings.Contains(folded, "femme") {
		return "Femme"
	}
	if strings.Contains(folded, "homme") {
		return "Homme"
	}
	return vocab.Unspecified
}

// extractAnswers fills Answers and ColumnOrder: one entry per checkbox
// group (semicolon-joined selected options) plus one entry per remaining
// non-empty generic cell.
func extractAnswers(r *Response, row []survey.Cell, m ColumnMapping, headers []string) {
	claimed := m.claimed()

	for _, g := range m.orderedGroups() {
		value := mergeGroupCells(row, g)
		r.ColumnOrder = append(r.ColumnOrder, ColumnRef{Key: g.Key, Index: g.FirstIndex(), Header: g.Stem})
		if value == "" {
			continue
		}
		r.Answers[g.Key] = Answer{
			Value:          value,
			OriginalHeader: g.Stem,
			ColumnIndex:    g.FirstIndex(),
		}
	}

	for idx, header := range headers {
		if claimed[idx] || strings.TrimSpace(header) == "" {
			continue
		}
		key := Slug(header)
		if key == "" {
			continue
		}
		r.ColumnOrder = append(r.ColumnOrder, ColumnRef{Key: key, Index: idx, Header: header})

		value := cellText(row, idx)
		if value == "" || noAnswerValues[Fold(value)] {
			continue
		}
		r.Answers[key] = Answer{
			Value:          value,
			OriginalHeader: header,
			ColumnIndex:    idx,
		}
	}

	sort.Slice(r.ColumnOrder, func(i, j int) bool {
		return r.ColumnOrder[i].Index < r.ColumnOrder[j].Index
	})
}

// mergeGroupCells joins a group's checked options with "; ". A cell that
// carries a bare affirmation mark, or that repeats the option label (both
// checkbox export styles exist), contributes the option label alone; any
// other text contributes "<option> : <value>".
func mergeGroupCells(row []survey.Cell, g *CheckboxGroup) string {
	var parts []string
	for _, opt := range g.Options {
		value := cellText(row, opt.Index)
		if value == "" || Fold(value) == "n/a" {
			continue
		}
		if affirmationMarks[Fold(value)] || Fold(value) == Fold(opt.Label) {
			parts = append(parts, opt.Label)
		} else {
			parts = append(parts, opt.Label+" : "+value)
		}
	}
	return strings.Join(parts, "; ")
}

func cellText(row []survey.Cell, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx].String()
}
