package analyzer

import (
	"sort"
	"time"
)

// ManagerColumn marks a header that exactly matches a known manager name.
type ManagerColumn struct {
	Index int
	Name  string
}

// GroupOption is one selectable option of a checkbox group, tied to the
// column that carries it.
type GroupOption struct {
	Index int
	Label string
}

// CheckboxGroup is a set of columns sharing a question stem, each column
// representing one selectable option.
type CheckboxGroup struct {
	Stem    string
	Key     string
	Options []GroupOption
}

// FirstIndex returns the column index of the group's first option.
func (g *CheckboxGroup) FirstIndex() int {
	if len(g.Options) == 0 {
		return 0
	}
	return g.Options[0].Index
}

// ColumnMapping is the result of one pass over the header row. Indexes are
// -1 when the column was not found. A column index appears in at most one
// field; everything unclaimed becomes an ad-hoc single-column question.
type ColumnMapping struct {
	Facility     int
	Date         int
	Gender       int
	Age          int
	CSP          int
	Satisfaction int
	Managers     []ManagerColumn
	Groups       map[string]*CheckboxGroup
}

func newColumnMapping() ColumnMapping {
	return ColumnMapping{
		Facility:     -1,
		Date:         -1,
		Gender:       -1,
		Age:          -1,
		CSP:          -1,
		Satisfaction: -1,
		Groups:       make(map[string]*CheckboxGroup),
	}
}

// claimed returns the set of column indexes consumed by fixed fields,
// manager columns, and checkbox groups.
func (m *ColumnMapping) claimed() map[int]bool {
	set := make(map[int]bool)
	for _, idx := range []int{m.Facility, m.Date, m.Gender, m.Age, m.CSP, m.Satisfaction} {
		if idx >= 0 {
			set[idx] = true
		}
	}
	for _, mc := range m.Managers {
		set[mc.Index] = true
	}
	for _, g := range m.Groups {
		for _, opt := range g.Options {
			set[opt.Index] = true
		}
	}
	return set
}

// orderedGroups returns the checkbox groups sorted by first column index.
func (m *ColumnMapping) orderedGroups() []*CheckboxGroup {
	groups := make([]*CheckboxGroup, 0, len(m.Groups))
	for _, g := range m.Groups {
		groups = append(groups, g)
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].FirstIndex() < groups[j].FirstIndex()
	})
	return groups
}

// Answer is one extracted answer: a checkbox group contributes a single
// semicolon-joined entry, every other non-empty cell contributes one entry.
type Answer struct {
	Value          string `json:"value"`
	OriginalHeader string `json:"originalHeader"`
	ColumnIndex    int    `json:"columnIndex"`
}

// ColumnRef preserves original column order for downstream rendering.
// Checkbox groups contribute once, at their first column's index.
type ColumnRef struct {
	Key    string `json:"key"`
	Index  int    `json:"index"`
	Header string `json:"header"`
}

// Response is one valid survey row, normalized.
type Response struct {
	ID           int               `json:"id"`
	Facility     string            `json:"facility"`
	Manager      string            `json:"manager"`
	Gender       string            `json:"gender"`
	Age          string            `json:"age"`
	CSP          string            `json:"csp"`
	Satisfaction string            `json:"satisfaction"`
	Date         *time.Time        `json:"date,omitempty"`
	Answers      map[string]Answer `json:"answers"`
	ColumnOrder  []ColumnRef       `json:"columnOrder"`
}

// OpenResponse is one verbatim free-text answer with respondent context.
// Manager and Facility are filled in by the global merge.
type OpenResponse struct {
	Answer       string `json:"answer"`
	RespondentID int    `json:"respondentId"`
	Gender       string `json:"gender"`
	CSP          string `json:"csp"`
	Manager      string `json:"manager,omitempty"`
	Facility     string `json:"facility,omitempty"`
}

// QuestionStats holds one question's aggregated answers. Closed and
// multi-option questions tally into Answers; open questions collect
// verbatim entries in ResponsesList. Exactly one of the two is populated.
type QuestionStats struct {
	Key            string         `json:"key"`
	Question       string         `json:"question"`
	ColumnIndex    int            `json:"columnIndex"`
	Answers        map[string]int `json:"answers,omitempty"`
	TotalResponses int            `json:"totalResponses"`
	ResponsesList  []OpenResponse `json:"responsesList,omitempty"`
	IsOpenQuestion bool           `json:"isOpenQuestion"`
	IsMultiOptions bool           `json:"isMultiOptions"`
}

// FacilityStats aggregates every response of one establishment.
type FacilityStats struct {
	Facility       string                    `json:"facility"`
	TotalResponses int                       `json:"totalResponses"`
	Satisfaction   map[string]int            `json:"satisfaction"`
	Managers       map[string]int            `json:"managers"`
	Genders        map[string]int            `json:"genders"`
	CSP            map[string]int            `json:"csp"`
	CSPPercentages map[string]int            `json:"cspPercentages"`
	Questions      map[string]*QuestionStats `json:"questionStats"`
}

// SatisfactionScore is the facility's satisfaction percentage.
func (fs *FacilityStats) SatisfactionScore() int {
	return SatisfactionPercent(fs.Satisfaction)
}

// OrderedQuestions returns all questions sorted by column index.
func (fs *FacilityStats) OrderedQuestions() []*QuestionStats {
	return sortQuestions(fs.Questions, nil)
}

// OpenQuestions returns the free-text questions in column order.
// Multi-option classification wins when both flags are set.
func (fs *FacilityStats) OpenQuestions() []*QuestionStats {
	return sortQuestions(fs.Questions, func(q *QuestionStats) bool {
		return q.IsOpenQuestion && !q.IsMultiOptions
	})
}

// ClosedQuestions returns the single-valued tallied questions in column order.
func (fs *FacilityStats) ClosedQuestions() []*QuestionStats {
	return sortQuestions(fs.Questions, func(q *QuestionStats) bool {
		return !q.IsOpenQuestion && !q.IsMultiOptions
	})
}

// MultiOptionQuestions returns the checkbox-style questions in column order.
func (fs *FacilityStats) MultiOptionQuestions() []*QuestionStats {
	return sortQuestions(fs.Questions, func(q *QuestionStats) bool {
		return q.IsMultiOptions
	})
}

func sortQuestions(questions map[string]*QuestionStats, keep func(*QuestionStats) bool) []*QuestionStats {
	var out []*QuestionStats
	for _, q := range questions {
		if keep == nil || keep(q) {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ColumnIndex != out[j].ColumnIndex {
			return out[i].ColumnIndex < out[j].ColumnIndex
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// Result is the output of one full pipeline run: a fresh, unshared object
// graph that wholly replaces any previous run.
type Result struct {
	Facilities map[string]*FacilityStats `json:"etablissements"`
	Responses  []Response                `json:"rawResponses"`

	// Mapping and DroppedUnidentified are diagnostics for quality rules;
	// they are not part of the export shape.
	Mapping             ColumnMapping `json:"-"`
	DroppedUnidentified int           `json:"-"`
}

// OrderedFacilities returns facility names sorted alphabetically.
func (r *Result) OrderedFacilities() []string {
	names := make([]string, 0, len(r.Facilities))
	for name := range r.Facilities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
