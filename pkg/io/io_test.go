package io

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/readmefeed/pkg/errors"
	"github.com/matzehuels/readmefeed/pkg/pipeline"
)

func sampleReport() *pipeline.Report {
	return &pipeline.Report{
		RunID:    "run-1",
		Document: "README.md",
		Changed:  true,
		Saved:    true,
		Duration: 1500 * time.Millisecond,
		Results: []pipeline.Result{
			{Region: "apod", Source: "apod", Outcome: pipeline.Updated, Duration: 400 * time.Millisecond},
			{Region: "neo", Source: "neo", Outcome: pipeline.Degraded,
				Err: errors.Wrap(errors.ErrCodeTimeout, fmt.Errorf("deadline"), "neo timed out")},
			{Region: "iss", Source: "iss", Outcome: pipeline.Skipped},
		},
	}
}

func TestExportImport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	if err := ExportJSON(sampleReport(), path); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}

	rep, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if rep.RunID != "run-1" || rep.DurationMS != 1500 || !rep.Saved {
		t.Errorf("report = %+v", rep)
	}
	if len(rep.Regions) != 3 {
		t.Fatalf("got %d regions", len(rep.Regions))
	}
	if got := rep.Regions[1].Error; got != "neo timed out" {
		t.Errorf("error = %q, want user message without code", got)
	}
	if rep.Regions[0].Error != "" {
		t.Error("updated region should have no error")
	}
	if rep.Count(pipeline.Degraded) != 1 || rep.Count(pipeline.Updated) != 1 {
		t.Errorf("counts wrong: %+v", rep.Regions)
	}
}

func TestWriteJSONOmitsEmptyError(t *testing.T) {
	var b strings.Builder
	if err := WriteJSON(sampleReport(), &b); err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(b.String(), `"error"`); n != 1 {
		t.Errorf("found %d error fields, want 1:\n%s", n, b.String())
	}
}

func TestReadJSONErrors(t *testing.T) {
	tests := map[string]string{
		"malformed":       `{"regions": [`,
		"missing name":    `{"regions": [{"outcome": "updated"}]}`,
		"unknown outcome": `{"regions": [{"name": "a", "outcome": "exploded"}]}`,
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := ReadJSON(strings.NewReader(in)); err == nil {
				t.Error("expected error")
			}
		})
	}
}
