// Package analyzer implements the response-aggregation pipeline: column
// identification, response extraction, question classification, per-facility
// and cross-facility aggregation, and satisfaction scoring. Everything here
// is a pure pass over in-memory data; the package never does I/O.
package analyzer

// Vocabulary holds the survey header prompts and sentinel labels the column
// heuristics match against. Matching is accent- and case-insensitive, so a
// single spelling per prompt is enough.
type Vocabulary struct {
	// FacilityLabels are the known facility-selector header texts.
	FacilityLabels []string

	// DateLabels identify the response timestamp column.
	DateLabels []string

	// GenderLabels, AgeLabels, CSPLabels and SatisfactionLabels are the
	// demographic prompt headers, matched exactly (after folding).
	GenderLabels       []string
	AgeLabels          []string
	CSPLabels          []string
	SatisfactionLabels []string

	// ManagerNames are the known operating organizations. A header equal to
	// one of these marks a manager column; a non-empty cell there signals
	// that manager.
	ManagerNames []string

	// NoReasonPrefix groups all columns starting with this literal prefix
	// into one checkbox-style question.
	NoReasonPrefix string

	// Unspecified is the sentinel for blank demographic fields.
	Unspecified string

	// Unidentified is the sentinel facility for rows whose establishment
	// could not be resolved.
	Unidentified string

	// ReservedMin and ReservedMax bound the column range (inclusive)
	// reserved for the fixed demographic/satisfaction columns. Question
	// keys first seen inside this range are never aggregated as generic
	// questions.
	ReservedMin int
	ReservedMax int
}

// DefaultVocabulary returns the French survey vocabulary the heuristics
// were built for.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		FacilityLabels: []string{
			"Sélectionnez votre établissement :",
			"Sélectionnez votre établissement",
		},
		DateLabels: []string{"Horodateur"},
		GenderLabels: []string{
			"Vous êtes ?",
			"Vous êtes",
		},
		AgeLabels: []string{
			"Quel âge a votre enfant ?",
			"Âge de votre enfant",
		},
		CSPLabels: []string{
			"Quelle est votre catégorie socio-professionnelle ?",
			"Catégorie socio-professionnelle",
		},
		SatisfactionLabels: []string{
			"Je suis satisfait.e de l'accueil de mon enfant à la crèche ?",
			"Je suis satisfait.e de l'accueil de mon enfant à la crèche",
		},
		ManagerNames: []string{
			"Ville de Strasbourg",
			"AASBR",
			"AGES",
			"ALEF",
			"APEDI Alsace",
			"Fondation d'Auteuil",
			"Fossé des Treize",
		},
		NoReasonPrefix: "Si non, pourquoi ?",
		Unspecified:    "Non spécifié",
		Unidentified:   "Non identifié",
		ReservedMin:    1,
		ReservedMax:    8,
	}
}
