package survey

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrLookupColumns is returned when the facility/manager mapping file is
// missing one of its two required columns. Callers treat it as a warning
// and run without the lookup.
var ErrLookupColumns = errors.New("lookup file must have an establishment column and a manager column")

// FacilityManager is one row of the facility → manager mapping file.
type FacilityManager struct {
	Facility string `json:"etablissement"`
	Manager  string `json:"gestionnaire"`
}

// facilityHeaderHints and managerHeaderHints identify the two lookup
// columns by substring, so both accented and plain spellings match.
var (
	facilityHeaderHints = []string{"etablissement", "établissement", "creche", "crèche", "structure", "facility"}
	managerHeaderHints  = []string{"gestionnaire", "manager", "organisme", "association"}
)

// LoadFacilityManagers reads the facility → manager mapping CSV. The first
// row is a header; the two columns are located by name, not position.
func LoadFacilityManagers(path string) ([]FacilityManager, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading lookup file: %w", err)
	}
	if len(records) < 2 {
		return nil, ErrLookupColumns
	}

	facilityCol, managerCol := -1, -1
	for i, h := range records[0] {
		lowered := strings.ToLower(strings.TrimSpace(h))
		if facilityCol < 0 && containsAny(lowered, facilityHeaderHints) {
			facilityCol = i
			continue
		}
		if managerCol < 0 && containsAny(lowered, managerHeaderHints) {
			managerCol = i
		}
	}
	if facilityCol < 0 || managerCol < 0 {
		return nil, ErrLookupColumns
	}

	var entries []FacilityManager
	for _, rec := range records[1:] {
		if facilityCol >= len(rec) || managerCol >= len(rec) {
			continue
		}
		facility := strings.TrimSpace(rec[facilityCol])
		manager := strings.TrimSpace(rec[managerCol])
		if facility == "" || manager == "" {
			continue
		}
		entries = append(entries, FacilityManager{Facility: facility, Manager: manager})
	}
	return entries, nil
}

func containsAny(s string, hints []string) bool {
	for _, hint := range hints {
		if strings.Contains(s, hint) {
			return true
		}
	}
	return false
}
