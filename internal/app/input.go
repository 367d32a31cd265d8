package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/mgirard/crechestat/internal/analyzer"
	"github.com/mgirard/crechestat/internal/config"
	"github.com/mgirard/crechestat/internal/export"
	"github.com/mgirard/crechestat/internal/survey"
)

// analysis bundles one pipeline run with its loading diagnostics.
type analysis struct {
	Result       *analyzer.Result
	Vocabulary   analyzer.Vocabulary
	LookupSize   int
	LookupError  error
	FromSnapshot bool
}

// loadAndAnalyze turns an input path into a pipeline result. JSON inputs
// are reloaded snapshots and skip the aggregation stages entirely; for
// spreadsheets, the dataset and the optional lookup file load concurrently
// before the (synchronous) core pipeline runs.
func loadAndAnalyze(path string, cfg *config.Config) (*analysis, error) {
	vocab := analyzer.DefaultVocabulary()
	if len(cfg.ManagerNames) > 0 {
		vocab.ManagerNames = cfg.ManagerNames
	}

	if strings.ToLower(filepath.Ext(path)) == ".json" {
		snap, err := export.Load(path)
		if err != nil {
			return nil, err
		}
		return &analysis{
			Result:       snap.Result(),
			Vocabulary:   vocab,
			FromSnapshot: true,
		}, nil
	}

	lookupPath := flagLookup
	if lookupPath == "" {
		lookupPath = cfg.LookupFile
	}

	var (
		ds        *survey.Dataset
		entries   []survey.FacilityManager
		lookupErr error
	)

	g, _ := errgroup.WithContext(context.Background())
	g.Go(func() error {
		var err error
		ds, err = survey.ReadFile(path)
		return err
	})
	if lookupPath != "" {
		g.Go(func() error {
			// A bad lookup file downgrades to a warning; the run proceeds
			// without it.
			entries, lookupErr = survey.LoadFacilityManagers(lookupPath)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var lookup analyzer.ManagerResolver
	if len(entries) > 0 {
		lookup = analyzer.NewManagerLookup(entries)
	}

	result, err := analyzer.Run(ds, lookup, vocab)
	if err != nil {
		return nil, fmt.Errorf("analyzing %s: %w", path, err)
	}

	return &analysis{
		Result:      result,
		Vocabulary:  vocab,
		LookupSize:  len(entries),
		LookupError: lookupErr,
	}, nil
}
