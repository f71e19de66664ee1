package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/readmefeed/pkg/cache"
	"github.com/matzehuels/readmefeed/pkg/config"
	"github.com/matzehuels/readmefeed/pkg/errors"
	pkgio "github.com/matzehuels/readmefeed/pkg/io"
	"github.com/matzehuels/readmefeed/pkg/pipeline"
	"github.com/matzehuels/readmefeed/pkg/sources"
)

type updateOptions struct {
	document    string
	noCache     bool
	concurrency int
	only        []string
	dryRun      bool
	report      string
}

// apply overrides cfg with the flags that were set on cmd.
func (o updateOptions) apply(cmd *cobra.Command, cfg *config.Config) error {
	if o.document != "" {
		cfg.Document = o.document
	}
	if cmd.Flags().Changed("concurrency") {
		cfg.Concurrency = o.concurrency
	}
	if o.noCache {
		cfg.Cache.Backend = cache.BackendNone
	}
	return cfg.Validate()
}

func (c *CLI) updateCommand() *cobra.Command {
	var opts updateOptions

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Fetch every region and rewrite the document",
		Long: `Fetch data for every configured region and write it between the region's
markers in the document.

A failing source never aborts the run: its region receives the configured
fallback text or an "unavailable" placeholder. The command fails only when
the configuration is invalid or the document cannot be read or written.`,
		Example: `  readmefeed update
  readmefeed update --only apod,usgs --dry-run
  readmefeed update -c feeds.toml --document docs/README.md --concurrency 4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := opts.apply(cmd, cfg); err != nil {
				return err
			}
			return c.runUpdate(cmd, cfg, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.document, "document", "d", "", "document to update (default from config)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the HTTP response cache")
	cmd.Flags().IntVarP(&opts.concurrency, "concurrency", "j", config.DefaultConcurrency, "sources fetched in parallel")
	cmd.Flags().StringSliceVar(&opts.only, "only", nil, "update only these regions (comma-separated)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "print the updated document instead of saving it")
	cmd.Flags().StringVar(&opts.report, "report", "", "write a JSON run report to this file")

	return cmd
}

func (c *CLI) runUpdate(cmd *cobra.Command, cfg *config.Config, opts updateOptions) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	regions, err := cfg.Select(opts.only)
	if err != nil {
		return err
	}

	backend, err := openCache(cfg, opts.noCache)
	if err != nil {
		logger.Warn("cache unavailable, continuing without it", "backend", cfg.Cache.Backend, "err", err)
		backend = cache.NewNullCache()
	}
	defer backend.Close()

	env := sources.Env{Config: cfg, Cache: backend, Now: time.Now, Memo: sources.NewMemo()}
	steps, err := pipeline.Build(c.Registry, env, regions)
	if err != nil {
		return err
	}

	runner := pipeline.NewRunner(logger)
	runner.Concurrency = cfg.Concurrency
	runner.Timeout = cfg.Timeout
	runner.DryRun = opts.dryRun

	logger.Debug("updating", "document", cfg.Document, "regions", len(steps), "concurrency", runner.Concurrency)
	report, err := runner.Execute(ctx, cfg.Document, steps)
	if opts.report != "" && report != nil {
		if werr := pkgio.ExportJSON(report, opts.report); werr != nil {
			logger.Warn("could not write report", "path", opts.report, "err", werr)
		}
	}
	if err != nil {
		return err
	}

	if opts.dryRun {
		fmt.Fprint(c.Out, report.Output)
		return nil
	}
	printReport(c.Out, report)
	prog.done(fmt.Sprintf("Updated %s", cfg.Document))
	return nil
}

// printReport prints one status line per region and a summary.
func printReport(w io.Writer, r *pipeline.Report) {
	for _, res := range r.Results {
		switch res.Outcome {
		case pipeline.Updated:
			printSuccess(w, "%s %s", res.Region, StyleDim.Render(res.Duration.Round(time.Millisecond).String()))
		case pipeline.Degraded:
			printError(w, "%s degraded: %s", res.Region, errors.UserMessage(res.Err))
		case pipeline.Skipped:
			printWarning(w, "%s skipped: markers not found", res.Region)
		}
	}
	if !r.Changed {
		printInfo(w, "No changes")
		return
	}
	printFile(w, r.Document)
	printDetail(w, "%d updated · %d degraded · %d skipped",
		r.Count(pipeline.Updated), r.Count(pipeline.Degraded), r.Count(pipeline.Skipped))
}
