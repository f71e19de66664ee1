// Package cli implements the readmefeed command-line interface.
//
// # Commands
//
//   - update: fetch every configured region and rewrite the document
//   - regions: show configured regions and whether their markers exist
//   - sources: list the available source kinds
//   - preview: render the document to HTML
//   - cache: manage the HTTP response cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context; debug output includes the pipeline, HTTP
// and cache hook events.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/readmefeed/pkg/buildinfo"
	"github.com/matzehuels/readmefeed/pkg/cache"
	"github.com/matzehuels/readmefeed/pkg/config"
	"github.com/matzehuels/readmefeed/pkg/sources"
	"github.com/matzehuels/readmefeed/pkg/sources/builtin"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// envFile is loaded into the environment before the configuration.
const envFile = ".env"

// CLI holds shared state for all commands.
type CLI struct {
	Logger   *log.Logger
	Out      io.Writer // command output; logs go to Logger
	Registry *sources.Registry

	configPath string
	verbose    bool
}

// New creates a CLI that logs to w at level and prints to stdout.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:   newLogger(w, level),
		Out:      os.Stdout,
		Registry: builtin.Registry(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "readmefeed",
		Short:        "Readmefeed keeps live data sections of a README up to date",
		Long:         `Readmefeed fetches data from free public APIs, formats it as markdown and writes it between marker comments in a README.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			registerHooks(c.Logger)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return config.LoadEnv(envFile)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.Out)
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", config.DefaultFile, "configuration file")

	root.AddCommand(c.updateCommand())
	root.AddCommand(c.regionsCommand())
	root.AddCommand(c.sourcesCommand())
	root.AddCommand(c.reportCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the configuration. The default file is optional; a path
// given with --config must exist.
func (c *CLI) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	explicit := cmd.Flags().Changed("config")
	return config.Load(c.configPath, explicit)
}

// openCache opens the configured cache backend, or a null cache when
// caching is disabled.
func openCache(cfg *config.Config, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	return cache.Open(cfg.Cache.Backend, cfg.Cache.Dir, cfg.Cache.RedisURL)
}

// cacheDir returns the directory the file cache uses for cfg.
func cacheDir(cfg *config.Config) (string, error) {
	if cfg.Cache.Dir != "" {
		return cfg.Cache.Dir, nil
	}
	return cache.DefaultDir()
}
