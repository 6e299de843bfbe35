// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/scholar-engine/pkg/types"
)

// QueryFile is the on-disk representation of a query and its results, so
// a search can be reloaded later without fetching again.
type QueryFile struct {
	Query   ScholarArgs           `yaml:"query"`
	URL     string                `yaml:"url"`
	Results []types.ScholarResult `yaml:"results"`
	Summary QuerySummary          `yaml:"summary"`
}

// QuerySummary stores result statistics and a timestamp.
type QuerySummary struct {
	Total     int       `yaml:"total"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteQueryFile saves args, its canonical URL and results to a YAML file.
func WriteQueryFile(path string, args ScholarArgs, results []types.ScholarResult) error {
	u, err := args.URL()
	if err != nil {
		return err
	}

	qf := QueryFile{
		Query:   args,
		URL:     u,
		Results: results,
		Summary: QuerySummary{
			Total:     len(results),
			Timestamp: time.Now().UTC(),
		},
	}

	data, err := yaml.Marshal(&qf)
	if err != nil {
		return fmt.Errorf("marshaling query file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadQueryFile loads a previously saved query file from disk.
func ReadQueryFile(path string) (*QueryFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading query file: %w", err)
	}
	var qf QueryFile
	if err := yaml.Unmarshal(data, &qf); err != nil {
		return nil, fmt.Errorf("parsing query file: %w", err)
	}
	if qf.Query.Query == "" {
		return nil, fmt.Errorf("query file %s: %w: query", path, ErrRequiredField)
	}
	return &qf, nil
}
