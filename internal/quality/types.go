// Package quality inspects a pipeline result for dataset problems worth
// surfacing: missing columns, dropped rows, unresolved managers. Warnings
// never abort an analysis; they are rendered after the report.
package quality

// Severity orders warnings in the rendered output.
type Severity int

const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
)

// String returns the display label for the severity.
func (s Severity) String() string {
	switch s {
	case SeverityHigh:
		return "high"
	case SeverityMedium:
		return "medium"
	default:
		return "low"
	}
}

// Warning is one dataset-quality finding.
type Warning struct {
	Category string   `json:"category"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// Rule inspects the analysis context and emits zero or more warnings.
type Rule func(ctx *Context) []Warning
