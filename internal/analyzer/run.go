package analyzer

import (
	"github.com/mgirard/crechestat/internal/survey"
)

// Run executes the full pipeline on a decoded dataset: identify columns,
// extract responses, aggregate per facility. The lookup may be nil, in
// which case managers resolve from manager columns only. The returned
// Result is a fresh object graph; nothing is shared with previous runs.
func Run(ds *survey.Dataset, lookup ManagerResolver, vocab Vocabulary) (*Result, error) {
	if ds == nil || len(ds.Rows) == 0 {
		return nil, ErrEmptyInput
	}

	mapping := IdentifyColumns(ds.Headers, vocab)

	var responses []Response
	for i, row := range ds.Rows {
		if !survey.RowHasContent(row) {
			continue
		}
		responses = append(responses, ExtractResponse(row, mapping, ds.Headers, lookup, vocab, i+1))
	}
	if len(responses) == 0 {
		return nil, ErrNoValidResponses
	}

	facilities := Aggregate(responses, vocab)

	res := &Result{
		Facilities: facilities,
		Responses:  responses,
		Mapping:    mapping,
	}
	if identified, unidentified := splitUnidentified(responses, vocab); len(identified) > 0 {
		res.DroppedUnidentified = len(unidentified)
	}
	return res, nil
}
