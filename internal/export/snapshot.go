// Package export writes and reloads analysis snapshots. A snapshot is the
// JSON shape {summary, etablissements, rawResponses}; reloading one skips
// the aggregation stages entirely and must reproduce the exported
// statistics byte for byte.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/mgirard/crechestat/internal/analyzer"
)

// ErrInvalidSnapshot is returned when a snapshot file is missing the
// etablissements or rawResponses key.
var ErrInvalidSnapshot = errors.New("invalid snapshot: etablissements and rawResponses are required")

// Summary is the dataset-level header block of a snapshot.
type Summary struct {
	TotalResponses   int        `json:"totalResponses"`
	FacilityCount    int        `json:"facilityCount"`
	SatisfactionRate int        `json:"satisfactionRate"`
	DateFrom         *time.Time `json:"dateFrom,omitempty"`
	DateTo           *time.Time `json:"dateTo,omitempty"`
	GeneratedAt      time.Time  `json:"generatedAt"`
}

// Snapshot is the full export shape.
type Snapshot struct {
	Summary      Summary                             `json:"summary"`
	Facilities   map[string]*analyzer.FacilityStats  `json:"etablissements"`
	RawResponses []analyzer.Response                 `json:"rawResponses"`
}

// Build assembles a snapshot from a pipeline result.
func Build(res *analyzer.Result) *Snapshot {
	snap := &Snapshot{
		Facilities:   res.Facilities,
		RawResponses: res.Responses,
	}

	satisfaction := make(map[string]int)
	for _, fs := range res.Facilities {
		for label, count := range fs.Satisfaction {
			satisfaction[label] += count
		}
		snap.Summary.TotalResponses += fs.TotalResponses
	}

	snap.Summary.FacilityCount = len(res.Facilities)
	snap.Summary.SatisfactionRate = analyzer.SatisfactionPercent(satisfaction)
	snap.Summary.DateFrom, snap.Summary.DateTo = dateRange(res.Responses)
	snap.Summary.GeneratedAt = time.Now().UTC()
	return snap
}

// dateRange returns the earliest and latest response dates, nil when no
// response carries a date.
func dateRange(responses []analyzer.Response) (from, to *time.Time) {
	for _, r := range responses {
		if r.Date == nil {
			continue
		}
		if from == nil || r.Date.Before(*from) {
			d := *r.Date
			from = &d
		}
		if to == nil || r.Date.After(*to) {
			d := *r.Date
			to = &d
		}
	}
	return from, to
}

// Result converts a reloaded snapshot back into a pipeline result.
func (s *Snapshot) Result() *analyzer.Result {
	return &analyzer.Result{
		Facilities: s.Facilities,
		Responses:  s.RawResponses,
	}
}

// Write serializes the snapshot to path as indented JSON.
func Write(path string, snap *Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}

// Load reads a snapshot from path and validates its structure. Both the
// etablissements and rawResponses keys must be present and non-null.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	if snap.Facilities == nil || snap.RawResponses == nil {
		return nil, ErrInvalidSnapshot
	}
	return &snap, nil
}
