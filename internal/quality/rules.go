package quality

import (
	"fmt"

	"github.com/mgirard/crechestat/internal/analyzer"
)

// Context carries everything the rules inspect.
type Context struct {
	Result      *analyzer.Result
	Vocabulary  analyzer.Vocabulary
	LookupSize  int
	LookupError error
}

// MissingSatisfactionColumn fires when no satisfaction column was
// identified; every satisfaction figure in the report is zero in that case.
func MissingSatisfactionColumn(ctx *Context) []Warning {
	if ctx.Result.Mapping.Satisfaction >= 0 {
		return nil
	}
	return []Warning{{
		Category: "columns",
		Severity: SeverityHigh,
		Message: "no satisfaction column identified in the header row; " +
			"all satisfaction figures will be zero",
	}}
}

// DroppedUnidentified reports rows discarded because their establishment
// could not be resolved while others could.
func DroppedUnidentified(ctx *Context) []Warning {
	n := ctx.Result.DroppedUnidentified
	if n == 0 {
		return nil
	}
	return []Warning{{
		Category: "rows",
		Severity: SeverityMedium,
		Message:  fmt.Sprintf("%d response(s) dropped: establishment could not be identified", n),
	}}
}

// LookupUnavailable reports a lookup file that could not be used; managers
// then resolve from manager columns only.
func LookupUnavailable(ctx *Context) []Warning {
	if ctx.LookupError == nil {
		return nil
	}
	return []Warning{{
		Category: "lookup",
		Severity: SeverityMedium,
		Message: fmt.Sprintf("facility/manager lookup unusable (%v); "+
			"managers resolved from spreadsheet columns only", ctx.LookupError),
	}}
}

// UnresolvedManagers flags facilities whose responses all carry the
// unspecified manager.
func UnresolvedManagers(ctx *Context) []Warning {
	var warnings []Warning
	for _, name := range ctx.Result.OrderedFacilities() {
		fs := ctx.Result.Facilities[name]
		if len(fs.Managers) == 1 && fs.Managers[ctx.Vocabulary.Unspecified] == fs.TotalResponses {
			warnings = append(warnings, Warning{
				Category: "lookup",
				Severity: SeverityLow,
				Message:  fmt.Sprintf("no manager resolved for %q (%d responses)", name, fs.TotalResponses),
			})
		}
	}
	return warnings
}

// LowResponseQuestions flags questions answered by fewer than three
// respondents; their tallies are too thin to read as trends.
func LowResponseQuestions(ctx *Context) []Warning {
	var warnings []Warning
	for _, name := range ctx.Result.OrderedFacilities() {
		fs := ctx.Result.Facilities[name]
		low := 0
		for _, qs := range fs.Questions {
			if qs.TotalResponses < 3 {
				low++
			}
		}
		if low > 0 {
			warnings = append(warnings, Warning{
				Category: "questions",
				Severity: SeverityLow,
				Message:  fmt.Sprintf("%s: %d question(s) with fewer than 3 answers", name, low),
			})
		}
	}
	return warnings
}
