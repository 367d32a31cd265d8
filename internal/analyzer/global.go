package analyzer

import "sort"

// ManagerStats rolls up the facilities operated by one manager.
type ManagerStats struct {
	Manager        string         `json:"manager"`
	Facilities     int            `json:"facilities"`
	TotalResponses int            `json:"totalResponses"`
	Satisfaction   map[string]int `json:"satisfaction"`
}

// SatisfactionScore is the manager's satisfaction percentage.
func (ms *ManagerStats) SatisfactionScore() int {
	return SatisfactionPercent(ms.Satisfaction)
}

// GlobalQuestionStats is a question's statistics merged across facilities.
type GlobalQuestionStats struct {
	QuestionStats
	EstablishmentCount int `json:"establishmentCount"`
}

// GlobalStats merges every facility's statistics into cross-facility
// figures, additionally bucketed by each facility's resolved manager.
type GlobalStats struct {
	TotalResponses int                             `json:"totalResponses"`
	FacilityCount  int                             `json:"facilityCount"`
	Satisfaction   map[string]int                  `json:"satisfaction"`
	Genders        map[string]int                  `json:"genders"`
	CSP            map[string]int                  `json:"csp"`
	Managers       map[string]int                  `json:"managers"`
	ByManager      map[string]*ManagerStats        `json:"byManager"`
	Questions      map[string]*GlobalQuestionStats `json:"questions"`
}

// SatisfactionScore is the overall satisfaction percentage.
func (gs *GlobalStats) SatisfactionScore() int {
	return SatisfactionPercent(gs.Satisfaction)
}

// OrderedQuestions returns merged questions sorted by column index.
func (gs *GlobalStats) OrderedQuestions() []*GlobalQuestionStats {
	out := make([]*GlobalQuestionStats, 0, len(gs.Questions))
	for _, q := range gs.Questions {
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ColumnIndex != out[j].ColumnIndex {
			return out[i].ColumnIndex < out[j].ColumnIndex
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// OrderedManagers returns manager roll-ups sorted by response count
// descending, name ascending on ties.
func (gs *GlobalStats) OrderedManagers() []*ManagerStats {
	out := make([]*ManagerStats, 0, len(gs.ByManager))
	for _, ms := range gs.ByManager {
		out = append(out, ms)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalResponses != out[j].TotalResponses {
			return out[i].TotalResponses > out[j].TotalResponses
		}
		return out[i].Manager < out[j].Manager
	})
	return out
}

// AggregateGlobal merges per-facility statistics into global figures.
// Question tallies add up, open-response lists concatenate with each entry
// tagged by its source facility's manager, and each question tracks how
// many establishments contributed at least one answer. Question text and
// column index are first-seen; the key encodes the header, so facilities
// agree on them.
func AggregateGlobal(facilities map[string]*FacilityStats, vocab Vocabulary) *GlobalStats {
	gs := &GlobalStats{
		FacilityCount: len(facilities),
		Satisfaction:  make(map[string]int),
		Genders:       make(map[string]int),
		CSP:           make(map[string]int),
		Managers:      make(map[string]int),
		ByManager:     make(map[string]*ManagerStats),
		Questions:     make(map[string]*GlobalQuestionStats),
	}

	// Deterministic merge order keeps first-seen fields stable.
	names := make([]string, 0, len(facilities))
	for name := range facilities {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fs := facilities[name]
		manager := dominantManager(fs, vocab)

		gs.TotalResponses += fs.TotalResponses
		mergeTally(gs.Satisfaction, fs.Satisfaction)
		mergeTally(gs.Genders, fs.Genders)
		mergeTally(gs.CSP, fs.CSP)
		mergeTally(gs.Managers, fs.Managers)

		ms, ok := gs.ByManager[manager]
		if !ok {
			ms = &ManagerStats{Manager: manager, Satisfaction: make(map[string]int)}
			gs.ByManager[manager] = ms
		}
		ms.Facilities++
		ms.TotalResponses += fs.TotalResponses
		mergeTally(ms.Satisfaction, fs.Satisfaction)

		for key, qs := range fs.Questions {
			gq, ok := gs.Questions[key]
			if !ok {
				gq = &GlobalQuestionStats{
					QuestionStats: QuestionStats{
						Key:         key,
						Question:    qs.Question,
						ColumnIndex: qs.ColumnIndex,
						Answers:     make(map[string]int),
					},
				}
				gs.Questions[key] = gq
			}
			gq.TotalResponses += qs.TotalResponses
			gq.IsOpenQuestion = gq.IsOpenQuestion || qs.IsOpenQuestion
			gq.IsMultiOptions = gq.IsMultiOptions || qs.IsMultiOptions
			mergeTally(gq.Answers, qs.Answers)
			for _, entry := range qs.ResponsesList {
				entry.Manager = manager
				entry.Facility = fs.Facility
				gq.ResponsesList = append(gq.ResponsesList, entry)
			}
			if qs.TotalResponses > 0 {
				gq.EstablishmentCount++
			}
		}
	}

	for _, gq := range gs.Questions {
		if len(gq.Answers) == 0 {
			gq.Answers = nil
		}
	}
	return gs
}

// dominantManager picks the facility's manager as the most frequent
// resolved manager across its responses, ignoring the unspecified bucket
// unless it is the only one.
func dominantManager(fs *FacilityStats, vocab Vocabulary) string {
	best, bestCount := vocab.Unspecified, 0
	for manager, count := range fs.Managers {
		if manager == vocab.Unspecified {
			continue
		}
		if count > bestCount || (count == bestCount && manager < best) {
			best, bestCount = manager, count
		}
	}
	if bestCount == 0 {
		return vocab.Unspecified
	}
	return best
}

func mergeTally(dst, src map[string]int) {
	for k, v := range src {
		dst[k] += v
	}
}
