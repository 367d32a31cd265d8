package analyzer

import (
	"testing"

	"github.com/mgirard/crechestat/internal/survey"
)

func TestManagerLookup_Resolve(t *testing.T) {
	lookup := NewManagerLookup([]survey.FacilityManager{
		{Facility: "Crèche de la Montagne Verte", Manager: "AGES"},
		{Facility: "Multi-accueil Les Lutins", Manager: "ALEF"},
	})

	cases := []struct {
		name     string
		facility string
		want     string
		ok       bool
	}{
		{"exact", "Crèche de la Montagne Verte", "AGES", true},
		{"case and accents folded", "crèche de la montagne verte", "AGES", true},
		{"survey name contains mapping name", "Crèche de la Montagne Verte (Strasbourg)", "AGES", true},
		{"mapping name contains survey name", "Montagne Verte", "AGES", true},
		{"two shared words", "Montagne Verte Crèche Municipale", "AGES", true},
		{"no match", "Halte-garderie du Port", "", false},
		{"empty", "", "", false},
	}

	for _, c := range cases {
		got, ok := lookup.Resolve(c.facility)
		if got != c.want || ok != c.ok {
			t.Errorf("%s: Resolve(%q) = %q, %v; want %q, %v",
				c.name, c.facility, got, ok, c.want, c.ok)
		}
	}
}

func TestManagerLookup_NilSafe(t *testing.T) {
	var lookup *ManagerLookup
	if _, ok := lookup.Resolve("Crèche Alpha"); ok {
		t.Error("nil lookup resolved something")
	}
	if lookup.Len() != 0 {
		t.Error("nil lookup has non-zero length")
	}
}
