package analyzer

import "testing"

func TestFold(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Très satisfait", "tres satisfait"},
		{"Établissement", "etablissement"},
		{"  Crèche  ", "creche"},
		{"déjà", "deja"},
		{"", ""},
	}
	for _, c := range cases {
		if got := Fold(c.in); got != c.want {
			t.Errorf("Fold(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSlug(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Vous êtes ?", "vous_etes"},
		{"Si non, pourquoi ?", "si_non_pourquoi"},
		{"Âge de l'enfant", "age_de_l_enfant"},
		{"  espaces  multiples  ", "espaces_multiples"},
		{"???", ""},
	}
	for _, c := range cases {
		if got := Slug(c.in); got != c.want {
			t.Errorf("Slug(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeLabel(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Très satisfait", "tres satisfait"},
		{"Plutôt  satisfait !", "plutot satisfait"},
		{"Non spécifié", "non specifie"},
		{"123", ""},
	}
	for _, c := range cases {
		if got := normalizeLabel(c.in); got != c.want {
			t.Errorf("normalizeLabel(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeClosedAnswer(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"oui", "Oui"},
		{"OUI", "Oui"},
		{"x", "Oui"},
		{"✓", "Oui"},
		{"1", "Oui"},
		{"no", "Non"},
		{"0", "Non"},
		{"tres satisfait", "Très satisfait"},
		{"Plutôt satisfait", "Plutôt satisfait"},
		{"toujours", "Toujours"},
		// Unrecognized answers keep their text, first letter capitalized.
		{"souvent le matin", "Souvent le matin"},
		{"épuisé", "Épuisé"},
	}
	for _, c := range cases {
		if got := NormalizeClosedAnswer(c.in); got != c.want {
			t.Errorf("NormalizeClosedAnswer(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
