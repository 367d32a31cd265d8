package analyzer

import (
	"errors"
	"testing"

	"github.com/mgirard/crechestat/internal/survey"
)

func scenarioDataset() *survey.Dataset {
	headers := []string{
		"Horodateur",
		"Sélectionnez votre établissement :",
		"Vous êtes ?",
		"Quel âge a votre enfant ?",
		"Quelle est votre catégorie socio-professionnelle ?",
		"Je suis satisfait.e de l'accueil de mon enfant à la crèche ?",
		"Colonne reservee six",
		"Colonne reservee sept",
		"Colonne reservee huit",
		"Les horaires conviennent ?",
	}
	mkRow := func(facility, gender, sat, horaires string) []survey.Cell {
		return []survey.Cell{
			survey.TextCell("01/03/2024 09:15:00"),
			survey.TextCell(facility),
			survey.TextCell(gender),
			survey.TextCell("18-24 mois"),
			survey.TextCell("Cadres"),
			survey.TextCell(sat),
			{}, {}, {},
			survey.TextCell(horaires),
		}
	}
	return &survey.Dataset{
		Path:    "scenario.csv",
		Headers: headers,
		Rows: [][]survey.Cell{
			mkRow("Crèche Alpha", "Une femme", "Très satisfait", "Oui"),
			mkRow("Crèche Alpha", "Un homme", "Plutôt satisfait", "Non"),
			mkRow("Crèche Alpha", "Une femme", "Très satisfait", "Oui"),
			{},
		},
	}
}

func TestRun_EndToEnd(t *testing.T) {
	vocab := DefaultVocabulary()
	res, err := Run(scenarioDataset(), nil, vocab)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	// The blank row never becomes a response.
	if len(res.Responses) != 3 {
		t.Fatalf("responses = %d, want 3", len(res.Responses))
	}
	if res.Responses[0].ID != 1 || res.Responses[2].ID != 3 {
		t.Errorf("ids = %d, %d, %d", res.Responses[0].ID, res.Responses[1].ID, res.Responses[2].ID)
	}
	if res.Responses[0].Date == nil {
		t.Error("expected a decoded timestamp")
	}

	fs := res.Facilities["Crèche Alpha"]
	if fs == nil {
		t.Fatalf("facilities = %v", res.Facilities)
	}
	if fs.TotalResponses != 3 {
		t.Errorf("responses = %d, want 3", fs.TotalResponses)
	}
	if fs.SatisfactionScore() != 100 {
		t.Errorf("score = %d, want 100", fs.SatisfactionScore())
	}
	if fs.Genders["Femme"] != 2 || fs.Genders["Homme"] != 1 {
		t.Errorf("genders = %v", fs.Genders)
	}

	// Reserved demographic columns never reappear as generic questions.
	for _, forbidden := range []string{"colonne_reservee_six", "colonne_reservee_sept", "colonne_reservee_huit"} {
		if _, ok := fs.Questions[forbidden]; ok {
			t.Errorf("reserved column %q surfaced as a question", forbidden)
		}
	}
	qs := fs.Questions["les_horaires_conviennent"]
	if qs == nil {
		t.Fatalf("questions = %v", fs.Questions)
	}
	if qs.Answers["Oui"] != 2 || qs.Answers["Non"] != 1 {
		t.Errorf("horaires tally = %v", qs.Answers)
	}
}

func TestRun_ReRunIsIndependent(t *testing.T) {
	vocab := DefaultVocabulary()
	first, err := Run(scenarioDataset(), nil, vocab)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Run(scenarioDataset(), nil, vocab)
	if err != nil {
		t.Fatal(err)
	}

	// Mutating one run's tallies must not leak into the other.
	first.Facilities["Crèche Alpha"].Satisfaction["Très satisfait"] = 99
	if second.Facilities["Crèche Alpha"].Satisfaction["Très satisfait"] != 2 {
		t.Error("runs share state")
	}
}

func TestRun_EmptyInput(t *testing.T) {
	if _, err := Run(nil, nil, DefaultVocabulary()); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("err = %v, want ErrEmptyInput", err)
	}
	if _, err := Run(&survey.Dataset{Headers: []string{"a"}}, nil, DefaultVocabulary()); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("err = %v, want ErrEmptyInput", err)
	}
}

func TestRun_NoValidResponses(t *testing.T) {
	ds := &survey.Dataset{
		Headers: []string{"Horodateur", "Question"},
		Rows:    [][]survey.Cell{{}, {survey.TextCell(""), survey.TextCell("  ")}},
	}
	if _, err := Run(ds, nil, DefaultVocabulary()); !errors.Is(err, ErrNoValidResponses) {
		t.Errorf("err = %v, want ErrNoValidResponses", err)
	}
}

func TestRun_DroppedUnidentifiedCount(t *testing.T) {
	ds := scenarioDataset()
	ds.Rows[3] = []survey.Cell{
		survey.TextCell(""),
		survey.TextCell(""),
		survey.TextCell("Une femme"),
		survey.TextCell("18-24 mois"),
	}

	res, err := Run(ds, nil, DefaultVocabulary())
	if err != nil {
		t.Fatal(err)
	}
	if res.DroppedUnidentified != 1 {
		t.Errorf("dropped = %d, want 1", res.DroppedUnidentified)
	}
	if _, ok := res.Facilities[DefaultVocabulary().Unidentified]; ok {
		t.Error("unidentified bucket kept alongside real facilities")
	}
}
