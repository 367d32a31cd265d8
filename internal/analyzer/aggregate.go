package analyzer

import (
	"math"
	"sort"
)

// Aggregate groups responses by facility and builds per-facility
// statistics. Rows whose facility could not be identified are kept only
// when they make up the entire dataset; as soon as one row resolves a
// facility, unresolved rows are dropped so they do not pollute real
// establishments.
func Aggregate(responses []Response, vocab Vocabulary) map[string]*FacilityStats {
	kept := responses
	if identified, unidentified := splitUnidentified(responses, vocab); len(identified) > 0 {
		kept = identified
		_ = unidentified
	}

	groups := make(map[string][]Response)
	for _, r := range kept {
		groups[r.Facility] = append(groups[r.Facility], r)
	}

	facilities := make(map[string]*FacilityStats, len(groups))
	for facility, group := range groups {
		facilities[facility] = aggregateFacility(facility, group, vocab)
	}
	return facilities
}

// splitUnidentified partitions responses on the unidentified sentinel.
func splitUnidentified(responses []Response, vocab Vocabulary) (identified, unidentified []Response) {
	for _, r := range responses {
		if r.Facility == vocab.Unidentified {
			unidentified = append(unidentified, r)
		} else {
			identified = append(identified, r)
		}
	}
	return identified, unidentified
}

func aggregateFacility(facility string, group []Response, vocab Vocabulary) *FacilityStats {
	fs := &FacilityStats{
		Facility:       facility,
		TotalResponses: len(group),
		Satisfaction:   make(map[string]int),
		Managers:       make(map[string]int),
		Genders:        make(map[string]int),
		CSP:            make(map[string]int),
		Questions:      make(map[string]*QuestionStats),
	}

	for _, r := range group {
		fs.Satisfaction[r.Satisfaction]++
		fs.Managers[r.Manager]++
		fs.Genders[r.Gender]++
		fs.CSP[r.CSP]++
	}
	fs.CSPPercentages = cspPercentages(fs.CSP, vocab)

	for _, key := range questionKeys(group, vocab) {
		qs := ClassifyQuestion(key, group)
		if qs.TotalResponses == 0 {
			continue
		}
		fs.Questions[key] = qs
	}

	return fs
}

// cspPercentages derives the socio-professional distribution, excluding
// the unspecified bucket from both numerator and denominator.
func cspPercentages(tally map[string]int, vocab Vocabulary) map[string]int {
	total := 0
	for csp, count := range tally {
		if csp == vocab.Unspecified {
			continue
		}
		total += count
	}
	percentages := make(map[string]int)
	if total == 0 {
		return percentages
	}
	for csp, count := range tally {
		if csp == vocab.Unspecified {
			continue
		}
		percentages[csp] = int(math.Round(float64(count) / float64(total) * 100))
	}
	return percentages
}

// questionKeys collects the union of answer keys across the group, tagged
// with the column index of their first occurrence, drops keys inside the
// reserved demographic range, and orders the rest by column index. The
// reserved columns are already tallied as fixed fields and must not be
// double-counted as generic questions.
func questionKeys(group []Response, vocab Vocabulary) []string {
	firstIndex := make(map[string]int)
	for _, r := range group {
		for key, a := range r.Answers {
			if _, seen := firstIndex[key]; !seen {
				firstIndex[key] = a.ColumnIndex
			}
		}
	}

	var keys []string
	for key, idx := range firstIndex {
		if idx >= vocab.ReservedMin && idx <= vocab.ReservedMax {
			continue
		}
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if firstIndex[keys[i]] != firstIndex[keys[j]] {
			return firstIndex[keys[i]] < firstIndex[keys[j]]
		}
		return keys[i] < keys[j]
	})
	return keys
}
