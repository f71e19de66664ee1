// Package pipeline drives one update run: fetch every configured region,
// inject the results into the document, and persist it once.
//
// # Failure semantics
//
// Only two failures abort a run: the document cannot be loaded (checked
// before any source is contacted) or it cannot be saved. A source failure
// degrades its own region to the configured fallback or the shared
// "unavailable" placeholder. A region whose delimiters are missing from the
// document is skipped with a warning.
//
// # Usage
//
//	steps, err := pipeline.Build(builtin.Registry(), env, cfg.Regions)
//	if err != nil {
//	    return err
//	}
//	runner := pipeline.NewRunner(logger)
//	runner.Concurrency = cfg.Concurrency
//	report, err := runner.Execute(ctx, cfg.Document, steps)
package pipeline

import (
	"time"

	"github.com/matzehuels/readmefeed/pkg/config"
	"github.com/matzehuels/readmefeed/pkg/inject"
	"github.com/matzehuels/readmefeed/pkg/sources"
)

// Outcome is the per-region result of a run.
type Outcome string

const (
	Updated  Outcome = "updated"  // fresh content injected
	Degraded Outcome = "degraded" // fallback injected after a source failure
	Skipped  Outcome = "skipped"  // delimiters not found, document untouched
)

// Step pairs a region with the source that fills it.
type Step struct {
	Region   inject.Region
	Source   sources.Source
	Fallback string
}

// Result records what happened to one region.
type Result struct {
	Region   string
	Source   string
	Outcome  Outcome
	Err      error
	Duration time.Duration
}

// Report summarises a run.
type Report struct {
	RunID    string
	Document string
	Results  []Result
	Changed  bool // document text differs from what was loaded
	Saved    bool
	Output   string // final document text
	Duration time.Duration
}

// Count returns how many regions ended with outcome o.
func (r *Report) Count(o Outcome) int {
	n := 0
	for _, res := range r.Results {
		if res.Outcome == o {
			n++
		}
	}
	return n
}

// Build resolves each configured region to a step using reg. Regions without
// a fallback get the placeholder for their kind's title.
func Build(reg *sources.Registry, env sources.Env, regions []config.Region) ([]Step, error) {
	steps := make([]Step, 0, len(regions))
	for _, r := range regions {
		src, err := reg.New(env, r.Kind(), r.Params)
		if err != nil {
			return nil, err
		}
		fallback := r.Fallback
		if fallback == "" {
			title := r.Kind()
			if k, ok := reg.Lookup(r.Kind()); ok && k.Title != "" {
				title = k.Title
			}
			fallback = sources.Unavailable(title)
		}
		steps = append(steps, Step{Region: r.Inject(), Source: src, Fallback: fallback})
	}
	return steps, nil
}
