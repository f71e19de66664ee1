package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/readmefeed/pkg/errors"
	"github.com/matzehuels/readmefeed/pkg/pipeline"
)

// Report is the serialised form of a pipeline report.
type Report struct {
	RunID      string   `json:"run_id"`
	Document   string   `json:"document"`
	Changed    bool     `json:"changed"`
	Saved      bool     `json:"saved"`
	DurationMS int64    `json:"duration_ms"`
	Regions    []Region `json:"regions"`
}

// Region is one region's entry in a [Report].
type Region struct {
	Name       string `json:"name"`
	Source     string `json:"source"`
	Outcome    string `json:"outcome"`
	Error      string `json:"error,omitempty"`
	DurationMS int64  `json:"duration_ms"`
}

// FromPipeline converts r. Errors are reduced to their user-facing message.
func FromPipeline(r *pipeline.Report) Report {
	out := Report{
		RunID:      r.RunID,
		Document:   r.Document,
		Changed:    r.Changed,
		Saved:      r.Saved,
		DurationMS: r.Duration.Milliseconds(),
		Regions:    make([]Region, len(r.Results)),
	}
	for i, res := range r.Results {
		reg := Region{
			Name:       res.Region,
			Source:     res.Source,
			Outcome:    string(res.Outcome),
			DurationMS: res.Duration.Milliseconds(),
		}
		if res.Err != nil {
			reg.Error = errors.UserMessage(res.Err)
		}
		out.Regions[i] = reg
	}
	return out
}

// WriteJSON encodes r as indented JSON and writes it to w.
func WriteJSON(r *pipeline.Report, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromPipeline(r)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes r to a JSON file at path.
func ExportJSON(r *pipeline.Report, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteJSON(r, f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
