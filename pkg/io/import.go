package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/readmefeed/pkg/pipeline"
)

var knownOutcomes = map[string]bool{
	string(pipeline.Updated):  true,
	string(pipeline.Degraded): true,
	string(pipeline.Skipped):  true,
}

// ReadJSON decodes a report from r. It fails on malformed JSON, regions
// without a name and unknown outcomes. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*Report, error) {
	var rep Report
	if err := json.NewDecoder(r).Decode(&rep); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	for i, reg := range rep.Regions {
		if reg.Name == "" {
			return nil, fmt.Errorf("region %d: missing name", i)
		}
		if !knownOutcomes[reg.Outcome] {
			return nil, fmt.Errorf("region %s: unknown outcome %q", reg.Name, reg.Outcome)
		}
	}
	return &rep, nil
}

// ImportJSON reads a report from the JSON file at path.
func ImportJSON(path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

// Count returns how many regions ended with outcome.
func (r *Report) Count(outcome pipeline.Outcome) int {
	n := 0
	for _, reg := range r.Regions {
		if reg.Outcome == string(outcome) {
			n++
		}
	}
	return n
}
