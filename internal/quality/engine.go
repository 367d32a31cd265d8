package quality

import "sort"

// Engine runs all registered rules against a context and collects the
// resulting warnings.
type Engine struct {
	rules []Rule
}

// NewEngine creates an engine with all built-in rules registered.
func NewEngine() *Engine {
	return &Engine{
		rules: []Rule{
			MissingSatisfactionColumn,
			DroppedUnidentified,
			LookupUnavailable,
			UnresolvedManagers,
			LowResponseQuestions,
		},
	}
}

// Run executes every rule and returns the warnings sorted by severity
// (highest first), then category.
func (e *Engine) Run(ctx *Context) []Warning {
	var all []Warning
	for _, rule := range e.rules {
		all = append(all, rule(ctx)...)
	}
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Severity != all[j].Severity {
			return all[i].Severity > all[j].Severity
		}
		return all[i].Category < all[j].Category
	})
	return all
}
