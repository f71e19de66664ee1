package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/readmefeed/pkg/document"
	"github.com/matzehuels/readmefeed/pkg/observability"
	"github.com/matzehuels/readmefeed/pkg/sources"
)

// DefaultTimeout bounds a single source when the runner has none set.
const DefaultTimeout = 20 * time.Second

// Runner executes steps against a document.
//
// Fetches run with at most Concurrency in flight (1 means sequential).
// Injections are always applied by a single goroutine in step order, so the
// resulting document does not depend on fetch completion order.
type Runner struct {
	Logger      *log.Logger
	Concurrency int
	Timeout     time.Duration
	DryRun      bool // skip Save; the final text is still in Report.Output
}

// NewRunner creates a sequential runner. A nil logger uses log.Default().
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger, Concurrency: 1, Timeout: DefaultTimeout}
}

type fetched struct {
	content  string
	err      error
	duration time.Duration
}

// Execute loads the document at path, runs every step and saves the result.
// The returned error is non-nil only when the document cannot be loaded or
// saved, or when ctx is cancelled before injection; in the cancelled case
// nothing is written.
func (r *Runner) Execute(ctx context.Context, path string, steps []Step) (report *Report, err error) {
	logger := r.logger()
	start := time.Now()
	report = &Report{RunID: uuid.NewString(), Document: path}
	logger = logger.With("run", report.RunID[:8])

	hooks := observability.Pipeline()
	hooks.OnRunStart(ctx, report.RunID, path, len(steps))
	defer func() {
		report.Duration = time.Since(start)
		hooks.OnRunComplete(ctx, report.RunID, report.Duration, err)
	}()

	doc, err := document.Load(path)
	if err != nil {
		return report, err
	}

	results := r.fetch(ctx, logger, steps)
	if err := ctx.Err(); err != nil {
		return report, err
	}

	for i, step := range steps {
		res := Result{
			Region:   step.Region.Name,
			Source:   step.Source.Kind(),
			Err:      results[i].err,
			Duration: results[i].duration,
		}
		switch {
		case !doc.Inject(step.Region, results[i].content):
			res.Outcome = Skipped
			logger.Warn("delimiters not found", "region", res.Region, "start", step.Region.Start, "end", step.Region.End)
		case res.Err != nil:
			res.Outcome = Degraded
			logger.Warn("source degraded", "region", res.Region, "source", res.Source, "err", res.Err)
		default:
			res.Outcome = Updated
			logger.Debug("region updated", "region", res.Region, "source", res.Source, "duration", res.Duration)
		}
		hooks.OnStepComplete(ctx, res.Region, string(res.Outcome), res.Duration, res.Err)
		report.Results = append(report.Results, res)
	}

	report.Output = doc.String()
	report.Changed = doc.Changed()
	if r.DryRun {
		logger.Info("dry run, document not written", "changed", report.Changed)
		return report, nil
	}
	if err := doc.Save(); err != nil {
		return report, err
	}
	report.Saved = true
	logger.Info("document saved",
		"path", path,
		"updated", report.Count(Updated),
		"degraded", report.Count(Degraded),
		"skipped", report.Count(Skipped),
		"duration", time.Since(start))
	return report, nil
}

// fetch renders every step through sources.Guard. Results are indexed by
// step so the caller can inject in order.
func (r *Runner) fetch(ctx context.Context, logger *log.Logger, steps []Step) []fetched {
	results := make([]fetched, len(steps))
	hooks := observability.Pipeline()

	var g errgroup.Group
	g.SetLimit(max(r.Concurrency, 1))
	for i, step := range steps {
		g.Go(func() error {
			hooks.OnStepStart(ctx, step.Region.Name, step.Source.Kind())
			logger.Debug("fetching", "region", step.Region.Name, "source", step.Source.Kind())
			t := time.Now()
			content, err := sources.Guard(ctx, step.Source, r.timeout(), step.Fallback)
			results[i] = fetched{content: content, err: err, duration: time.Since(t)}
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func (r *Runner) logger() *log.Logger {
	if r.Logger == nil {
		return log.Default()
	}
	return r.Logger
}

func (r *Runner) timeout() time.Duration {
	if r.Timeout <= 0 {
		return DefaultTimeout
	}
	return r.Timeout
}
