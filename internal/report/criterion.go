// Package report renders one benchmark run, plus optional historical
// statistics, as a single self-contained HTML document.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Estimate is the externally computed statistical summary for one
// benchmark, as produced by a Criterion-style statistics engine. Values
// are nanoseconds. This package only reads estimates, never writes them.
type Estimate struct {
	Mean struct {
		PointEstimate float64 `json:"point_estimate"`
		LowerBound    float64 `json:"lower_bound"`
		UpperBound    float64 `json:"upper_bound"`
	} `json:"mean"`
}

// LoadEstimates walks a Criterion output tree
// (<dir>/<group>/<benchmark>/estimates.json) and returns estimates
// keyed by "<group>/<benchmark>". A missing directory is absent input,
// not an error: the trend section is simply omitted.
func LoadEstimates(dir string) (map[string]Estimate, error) {
	groups, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read estimates dir: %w", err)
	}

	estimates := make(map[string]Estimate)
	for _, group := range groups {
		if !group.IsDir() {
			continue
		}
		benches, err := os.ReadDir(filepath.Join(dir, group.Name()))
		if err != nil {
			return nil, fmt.Errorf("read estimate group %s: %w", group.Name(), err)
		}
		for _, benchDir := range benches {
			if !benchDir.IsDir() {
				continue
			}
			path := filepath.Join(dir, group.Name(), benchDir.Name(), "estimates.json")
			data, err := os.ReadFile(path)
			if err != nil {
				if os.IsNotExist(err) {
					continue
				}
				return nil, fmt.Errorf("read %s: %w", path, err)
			}
			var est Estimate
			if err := json.Unmarshal(data, &est); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
			estimates[group.Name()+"/"+benchDir.Name()] = est
		}
	}
	if len(estimates) == 0 {
		return nil, nil
	}
	return estimates, nil
}

// sortedKeys gives estimate iteration a stable order for deterministic
// rendering.
func sortedKeys(estimates map[string]Estimate) []string {
	keys := make([]string, 0, len(estimates))
	for k := range estimates {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
