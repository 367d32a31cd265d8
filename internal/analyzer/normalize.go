package analyzer

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripAccents removes combining marks, so "Très" folds to "Tres".
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// FoldAccents strips diacritics from s ("établissement" -> "etablissement").
func FoldAccents(s string) string {
	result, _, err := transform.String(stripAccents, s)
	if err != nil {
		return s
	}
	return result
}

// Fold lowercases, strips accents, and trims. This is the comparison form
// used for header and label matching throughout the pipeline.
func Fold(s string) string {
	return strings.TrimSpace(FoldAccents(strings.ToLower(s)))
}

// normalizeLabel reduces a satisfaction label to letters and single spaces:
// lowercased, accents folded, every non-letter run collapsed to one space.
// "Très satisfait !" and "tres   satisfait" normalize identically.
func normalizeLabel(s string) string {
	folded := FoldAccents(strings.ToLower(s))
	var b strings.Builder
	lastSpace := true
	for _, r := range folded {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
			lastSpace = false
		} else if !lastSpace {
			b.WriteByte(' ')
			lastSpace = true
		}
	}
	return strings.TrimSpace(b.String())
}

// Slug turns a header into a stable question key: lowercased, accents
// folded, every non-alphanumeric run replaced by a single underscore.
func Slug(s string) string {
	folded := FoldAccents(strings.ToLower(s))
	var b strings.Builder
	lastUnderscore := true
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastUnderscore = false
		} else if !lastUnderscore {
			b.WriteByte('_')
			lastUnderscore = true
		}
	}
	return strings.Trim(b.String(), "_")
}

// closedAnswerVariants maps common answer spellings to their canonical
// label. Lookup is on the folded form.
var closedAnswerVariants = map[string]string{
	"oui": "Oui",
	"yes": "Oui",
	"x":   "Oui",
	"✓":   "Oui",
	"1":   "Oui",
	"non": "Non",
	"no":  "Non",
	"0":   "Non",

	"tres satisfait":   "Très satisfait",
	"plutot satisfait": "Plutôt satisfait",
	"peu satisfait":    "Peu satisfait",
	"pas satisfait":    "Pas satisfait",
	"toujours":         "Toujours",
	"souvent":          "Souvent",
	"parfois":          "Parfois",
	"jamais":           "Jamais",
}

// NormalizeClosedAnswer maps an answer to its canonical tally label.
// Unrecognized answers keep their text with only the first letter
// capitalized.
func NormalizeClosedAnswer(s string) string {
	if canonical, ok := closedAnswerVariants[Fold(s)]; ok {
		return canonical
	}
	return capitalizeFirst(strings.TrimSpace(s))
}

// capitalizeFirst uppercases the first rune only.
func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
