// Package pkg provides the libraries behind readmefeed, a tool that keeps
// live data sections of a README up to date.
//
// # Overview
//
// A run loads one document, asks a source for the content of every
// configured region, splices the results between the region's marker
// comments and writes the document back once:
//
//	readmefeed.toml / defaults
//	         ↓
//	    [config] (regions, keys, cache settings)
//	         ↓
//	    [sources] (fetch and format, one kind per API)
//	         ↓
//	    [pipeline] (bounded parallel fetch, serial injection)
//	         ↓
//	    [document] + [inject] (literal marker replacement, atomic save)
//
// # Quick Start
//
//	cfg, _ := config.Load("readmefeed.toml", false)
//	backend, _ := cache.Open(cfg.Cache.Backend, cfg.Cache.Dir, cfg.Cache.RedisURL)
//	env := sources.Env{Config: cfg, Cache: backend, Memo: sources.NewMemo()}
//
//	steps, _ := pipeline.Build(builtin.Registry(), env, cfg.Regions)
//	report, err := pipeline.NewRunner(nil).Execute(ctx, cfg.Document, steps)
//
// # Main Packages
//
// [inject] - Pure marker-region replacement on strings.
//
// [document] - Loads the target file once and saves it atomically.
//
// [sources] - The shared HTTP client (caching, retry, rate limiting), the
// [sources.Source] interface, the "unavailable" placeholder and the kind
// registry. Subpackages implement one API each; [sources/builtin] registers
// them all.
//
// [render] - Markdown tables, links, images, quickchart.io URLs and the
// goldmark-based HTML preview.
//
// [pipeline] - Drives one run and reports per-region outcomes.
//
// [cache] - File, memory, Redis and null response caches plus the retry
// helpers.
//
// [config] - TOML/YAML configuration with environment overrides.
//
// [errors] - Coded errors and region validation.
//
// [observability] - Hooks for pipeline, HTTP and cache events.
//
// [io] - JSON export of run reports.
//
// [inject]: https://pkg.go.dev/github.com/matzehuels/readmefeed/pkg/inject
// [document]: https://pkg.go.dev/github.com/matzehuels/readmefeed/pkg/document
// [sources]: https://pkg.go.dev/github.com/matzehuels/readmefeed/pkg/sources
// [sources/builtin]: https://pkg.go.dev/github.com/matzehuels/readmefeed/pkg/sources/builtin
// [render]: https://pkg.go.dev/github.com/matzehuels/readmefeed/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/readmefeed/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/readmefeed/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/readmefeed/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/readmefeed/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/readmefeed/pkg/observability
// [io]: https://pkg.go.dev/github.com/matzehuels/readmefeed/pkg/io
// [sources.Source]: https://pkg.go.dev/github.com/matzehuels/readmefeed/pkg/sources#Source
package pkg
