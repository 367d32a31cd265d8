package analyzer

import "errors"

// Dataset-level failures. Heuristics never return errors; an unrecognized
// header, ambiguous answer, or unparsable date degrades to a sentinel
// value instead of failing the run.
var (
	// ErrEmptyInput means the dataset had no data rows at all.
	ErrEmptyInput = errors.New("no data rows in input")

	// ErrNoValidResponses means every row was blank.
	ErrNoValidResponses = errors.New("no valid responses: every row is empty")
)
