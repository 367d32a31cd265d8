package analyzer

import (
	"reflect"
	"testing"
)

func sampleResponses() []Response {
	return []Response{
		{
			ID:           1,
			Facility:     "Crèche Alpha",
			Manager:      "AGES",
			Gender:       "Femme",
			CSP:          "Cadres",
			Satisfaction: "Très satisfait",
			Answers: map[string]Answer{
				"horaires": {Value: "Oui", OriginalHeader: "Les horaires conviennent ?", ColumnIndex: 9},
			},
		},
		{
			ID:           2,
			Facility:     "Crèche Alpha",
			Manager:      "AGES",
			Gender:       "Homme",
			CSP:          "Employés",
			Satisfaction: "Peu satisfait",
			Answers: map[string]Answer{
				"horaires": {Value: "Non", OriginalHeader: "Les horaires conviennent ?", ColumnIndex: 9},
			},
		},
		{
			ID:           3,
			Facility:     "Crèche Beta",
			Manager:      "ALEF",
			Gender:       "Femme",
			CSP:          "Non spécifié",
			Satisfaction: "Plutôt satisfait",
			Answers:      map[string]Answer{},
		},
	}
}

func TestAggregate_GroupsByFacility(t *testing.T) {
	vocab := DefaultVocabulary()
	facilities := Aggregate(sampleResponses(), vocab)

	if len(facilities) != 2 {
		t.Fatalf("facilities = %d, want 2", len(facilities))
	}
	alpha := facilities["Crèche Alpha"]
	if alpha == nil {
		t.Fatal("missing Crèche Alpha")
	}
	if alpha.TotalResponses != 2 {
		t.Errorf("alpha responses = %d, want 2", alpha.TotalResponses)
	}
	if alpha.Satisfaction["Très satisfait"] != 1 || alpha.Satisfaction["Peu satisfait"] != 1 {
		t.Errorf("alpha satisfaction = %v", alpha.Satisfaction)
	}
	if alpha.SatisfactionScore() != 50 {
		t.Errorf("alpha score = %d, want 50", alpha.SatisfactionScore())
	}
	if alpha.Managers["AGES"] != 2 {
		t.Errorf("alpha managers = %v", alpha.Managers)
	}

	qs, ok := alpha.Questions["horaires"]
	if !ok {
		t.Fatalf("alpha questions = %v", alpha.Questions)
	}
	if qs.Answers["Oui"] != 1 || qs.Answers["Non"] != 1 {
		t.Errorf("horaires tally = %v", qs.Answers)
	}
}

func TestAggregate_DropsUnidentifiedWhenOthersExist(t *testing.T) {
	vocab := DefaultVocabulary()
	responses := append(sampleResponses(), Response{
		ID:           4,
		Facility:     vocab.Unidentified,
		Manager:      vocab.Unspecified,
		Satisfaction: "Très satisfait",
	})

	facilities := Aggregate(responses, vocab)

	if _, ok := facilities[vocab.Unidentified]; ok {
		t.Errorf("unidentified bucket kept alongside real facilities: %v", facilities)
	}
	if len(facilities) != 2 {
		t.Errorf("facilities = %d, want 2", len(facilities))
	}
}

func TestAggregate_KeepsUnidentifiedWhenAlone(t *testing.T) {
	vocab := DefaultVocabulary()
	responses := []Response{
		{ID: 1, Facility: vocab.Unidentified, Satisfaction: "Très satisfait"},
		{ID: 2, Facility: vocab.Unidentified, Satisfaction: "Peu satisfait"},
	}

	facilities := Aggregate(responses, vocab)

	fs, ok := facilities[vocab.Unidentified]
	if !ok {
		t.Fatalf("expected the unidentified bucket, got %v", facilities)
	}
	if fs.TotalResponses != 2 {
		t.Errorf("responses = %d, want 2", fs.TotalResponses)
	}
}

func TestAggregate_Deterministic(t *testing.T) {
	vocab := DefaultVocabulary()
	first := Aggregate(sampleResponses(), vocab)
	second := Aggregate(sampleResponses(), vocab)

	if !reflect.DeepEqual(first, second) {
		t.Error("two aggregations of the same input differ")
	}
}

func TestCSPPercentages(t *testing.T) {
	vocab := DefaultVocabulary()
	got := cspPercentages(map[string]int{
		"Cadres":       2,
		"Employés":     1,
		"Ouvriers":     1,
		"Non spécifié": 6,
	}, vocab)

	want := map[string]int{"Cadres": 50, "Employés": 25, "Ouvriers": 25}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("cspPercentages = %v, want %v", got, want)
	}
}

func TestCSPPercentages_AllUnspecified(t *testing.T) {
	vocab := DefaultVocabulary()
	got := cspPercentages(map[string]int{"Non spécifié": 4}, vocab)
	if len(got) != 0 {
		t.Errorf("cspPercentages = %v, want empty", got)
	}
}

func TestQuestionKeys_ReservedRangeExcluded(t *testing.T) {
	vocab := DefaultVocabulary()
	group := []Response{
		{
			ID: 1,
			Answers: map[string]Answer{
				"inside_reserved": {Value: "x", ColumnIndex: 4},
				"question_b":      {Value: "x", ColumnIndex: 12},
				"question_a":      {Value: "x", ColumnIndex: 9},
				"column_zero":     {Value: "x", ColumnIndex: 0},
			},
		},
	}

	got := questionKeys(group, vocab)

	want := []string{"column_zero", "question_a", "question_b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("questionKeys = %v, want %v", got, want)
	}
}
