package analyzer

import "testing"

func TestIdentifyColumns_FixedFields(t *testing.T) {
	headers := []string{
		"Horodateur",
		"Selectionnez votre établissement :",
		"Ville de Strasbourg",
		"AGES",
		"Vous êtes ?",
		"Quel âge a votre enfant ?",
		"Quelle est votre catégorie socio-professionnelle ?",
		"Je suis satisfait.e de l'accueil de mon enfant à la crèche ?",
	}

	m := IdentifyColumns(headers, DefaultVocabulary())

	if m.Date != 0 {
		t.Errorf("date column = %d, want 0", m.Date)
	}
	if m.Facility != 1 {
		t.Errorf("facility column = %d, want 1", m.Facility)
	}
	if len(m.Managers) != 2 {
		t.Fatalf("manager columns = %d, want 2", len(m.Managers))
	}
	if m.Managers[0].Name != "Ville de Strasbourg" || m.Managers[0].Index != 2 {
		t.Errorf("first manager = %+v", m.Managers[0])
	}
	if m.Gender != 4 || m.Age != 5 || m.CSP != 6 || m.Satisfaction != 7 {
		t.Errorf("demographics = gender %d, age %d, csp %d, satisfaction %d",
			m.Gender, m.Age, m.CSP, m.Satisfaction)
	}
}

func TestIdentifyColumns_SatisfactionFallback(t *testing.T) {
	headers := []string{
		"Êtes-vous satisfait de l'accueil ?",
		"Êtes-vous satisfait de la crèche ?",
	}

	m := IdentifyColumns(headers, DefaultVocabulary())

	// First candidate wins; later ones are ignored.
	if m.Satisfaction != 0 {
		t.Errorf("satisfaction column = %d, want 0", m.Satisfaction)
	}
}

func TestIdentifyColumns_NoSatisfactionColumn(t *testing.T) {
	m := IdentifyColumns([]string{"Une question quelconque"}, DefaultVocabulary())
	if m.Satisfaction != -1 {
		t.Errorf("satisfaction column = %d, want -1", m.Satisfaction)
	}
}

func TestIdentifyColumns_CheckboxGroups(t *testing.T) {
	headers := []string{
		"Age : [Moins de 18 mois]",
		"Quelle question",
		"Age : [Plus de 18 mois]",
	}

	m := IdentifyColumns(headers, DefaultVocabulary())

	g, ok := m.Groups["age"]
	if !ok {
		t.Fatalf("missing checkbox group %q, got %v", "age", m.Groups)
	}
	if g.Stem != "Age" {
		t.Errorf("stem = %q, want %q", g.Stem, "Age")
	}
	if len(g.Options) != 2 {
		t.Fatalf("options = %d, want 2", len(g.Options))
	}
	// Options sorted by column index.
	if g.Options[0].Index != 0 || g.Options[0].Label != "Moins de 18 mois" {
		t.Errorf("first option = %+v", g.Options[0])
	}
	if g.Options[1].Index != 2 || g.Options[1].Label != "Plus de 18 mois" {
		t.Errorf("second option = %+v", g.Options[1])
	}
}

func TestIdentifyColumns_NoReasonPrefixGroup(t *testing.T) {
	headers := []string{
		"Si non, pourquoi ? Horaires",
		"Si non, pourquoi ? Tarifs",
	}

	m := IdentifyColumns(headers, DefaultVocabulary())

	g, ok := m.Groups["si_non_pourquoi"]
	if !ok {
		t.Fatalf("missing no-reason group, got %v", m.Groups)
	}
	if len(g.Options) != 2 {
		t.Fatalf("options = %d, want 2", len(g.Options))
	}
	if g.Options[0].Label != "Horaires" || g.Options[1].Label != "Tarifs" {
		t.Errorf("options = %+v", g.Options)
	}
}

func TestIdentifyColumns_EachColumnClaimedOnce(t *testing.T) {
	// "Vous êtes ?" must land on gender, not become a generic question,
	// and the checkbox rule must not see claimed headers.
	headers := []string{
		"Vous êtes ?",
		"Ville de Strasbourg",
	}

	m := IdentifyColumns(headers, DefaultVocabulary())

	claimed := m.claimed()
	if !claimed[0] || !claimed[1] {
		t.Errorf("claimed set = %v, want columns 0 and 1", claimed)
	}
	if len(m.Groups) != 0 {
		t.Errorf("groups = %v, want none", m.Groups)
	}
}
