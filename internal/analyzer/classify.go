package analyzer

import (
	"strings"
	"unicode/utf8"
)

// forcedOpenKeywords force a question open from its header text alone,
// bypassing per-answer inspection.
var forcedOpenKeywords = []string{
	"remarques",
	"suggestions",
	"complémentaires",
	"commentaire",
	"préciser",
	"pourquoi",
	"avez-vous des remarques",
}

// closedConnectives are French connectives whose presence marks prose.
// The surrounding spaces are part of the contract.
var closedConnectives = []string{
	" et ", " ou ", " mais ", " car ", " pour ", " avec ", " dans ",
	" sur ", " par ", " donc ", " alors ", " ainsi ", " cette ",
}

// proseNouns are domain nouns that only show up in free-text answers.
var proseNouns = []string{
	"équipe", "creche", "crèche", "enfant", "directeur", "directrice",
	"personnel", "éducatrice", "merci", "problème", "suggestion",
	"amélioration",
}

// closedVocabulary is the enumerable answer vocabulary. An answer equal to
// or containing one of these is closed.
var closedVocabulary = []string{
	"oui", "non", "yes", "no",
	"très satisfait", "plutôt satisfait", "peu satisfait", "pas satisfait",
	"toujours", "souvent", "parfois", "rarement", "jamais",
	"excellent", "très bien", "bien", "moyen", "mauvais",
	"x", "✓", "1", "0",
}

// ClassifyQuestion aggregates every response's answer for one question key
// and decides whether the question is closed, multi-option, or open.
// Classification happens once per question and is stable thereafter.
func ClassifyQuestion(key string, responses []Response) *QuestionStats {
	stats := &QuestionStats{
		Key:     key,
		Answers: make(map[string]int),
	}

	// Question text and column index come from the first response that
	// carries this key.
	for _, r := range responses {
		if a, ok := r.Answers[key]; ok {
			stats.Question = a.OriginalHeader
			stats.ColumnIndex = a.ColumnIndex
			break
		}
	}

	forcedOpen := isForcedOpenQuestion(stats.Question)
	if forcedOpen {
		stats.IsOpenQuestion = true
	}

	for _, r := range responses {
		a, ok := r.Answers[key]
		if !ok {
			continue
		}
		value := strings.TrimSpace(a.Value)
		if value == "" {
			continue
		}
		stats.TotalResponses++

		if forcedOpen {
			stats.ResponsesList = append(stats.ResponsesList, openEntry(value, r))
			continue
		}

		switch {
		case strings.Contains(value, ";"):
			stats.IsMultiOptions = true
			tallyOptions(stats.Answers, value)
		case isClosedAnswer(value):
			stats.Answers[NormalizeClosedAnswer(value)]++
		default:
			stats.IsOpenQuestion = true
			stats.ResponsesList = append(stats.ResponsesList, openEntry(value, r))
		}
	}

	if len(stats.Answers) == 0 {
		stats.Answers = nil
	}
	return stats
}

func openEntry(value string, r Response) OpenResponse {
	return OpenResponse{
		Answer:       value,
		RespondentID: r.ID,
		Gender:       r.Gender,
		CSP:          r.CSP,
	}
}

// tallyOptions splits a semicolon-joined answer and tallies each distinct
// option. Deduplication is per response only; the same option from two
// respondents counts twice.
func tallyOptions(answers map[string]int, value string) {
	seen := make(map[string]bool)
	for _, part := range strings.Split(value, ";") {
		option := strings.TrimSpace(part)
		if option == "" || seen[option] {
			continue
		}
		seen[option] = true
		answers[option]++
	}
}

// isForcedOpenQuestion checks the header text for free-text markers.
func isForcedOpenQuestion(question string) bool {
	lowered := strings.ToLower(question)
	for _, kw := range forcedOpenKeywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

// isClosedAnswer decides whether a single answer value looks enumerable.
// The checks short-circuit in order; the 30 and 15 character thresholds are
// behavioral contract. The <15 fallback knowingly misclassifies short free
// text (a first name tallies as a closed answer).
func isClosedAnswer(text string) bool {
	lowered := strings.ToLower(strings.TrimSpace(text))

	if utf8.RuneCountInString(lowered) > 30 {
		return false
	}
	for _, connective := range closedConnectives {
		if strings.Contains(lowered, connective) {
			return false
		}
	}
	for _, noun := range proseNouns {
		if strings.Contains(lowered, noun) {
			return false
		}
	}
	for _, known := range closedVocabulary {
		if lowered == known || strings.Contains(lowered, known) {
			return true
		}
	}
	return utf8.RuneCountInString(lowered) < 15
}
