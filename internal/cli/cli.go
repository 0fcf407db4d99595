// Package cli implements the mazewalk command-line interface.
//
// This package provides commands for generating mazes, searching them with
// breadth-first and depth-first traversal, rendering the explored state, and
// inspecting run history and the artifact cache. The CLI is built using cobra
// and logs through charmbracelet/log.
//
// # Commands
//
//   - solve: search a generated or loaded maze with bfs, dfs or both
//   - generate: write a new maze file
//   - render: search a maze file and write the pictures next to it
//   - history: list and show past runs
//   - cache: manage the maze and artifact cache
//   - serve: run the HTTP API
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// traces cache and search events. Loggers are passed through context.Context.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mazewalk/pkg/buildinfo"
	"github.com/matzehuels/mazewalk/pkg/cache"
	"github.com/matzehuels/mazewalk/pkg/config"
	"github.com/matzehuels/mazewalk/pkg/history"
	"github.com/matzehuels/mazewalk/pkg/observability"
	"github.com/matzehuels/mazewalk/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "mazewalk"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config
	// Out receives rendered mazes and command output.
	Out io.Writer

	configPath string
	verbose    bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
		Out:    os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Mazewalk explores grid mazes with breadth-first and depth-first search",
		Long:         `Mazewalk generates grid mazes, searches them from the top-left corner for an exit with BFS or DFS, and shows which cells each search explored.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/mazewalk/config.toml)")

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.historyCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the configuration and attaches the logger to the command
// context.
func (c *CLI) setup(cmd *cobra.Command) error {
	level := LogInfo
	if c.verbose {
		level = LogDebug
		hooks := newLogHooks(c.Logger)
		observability.SetSearchHooks(hooks)
		observability.SetCacheHooks(hooks)
		observability.SetHTTPHooks(hooks)
	}
	c.SetLogLevel(level)

	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.Config = cfg

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(withLogger(ctx, c.Logger))
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, noCache, noHistory bool) (*pipeline.Runner, error) {
	ch, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	store, err := c.newHistory(ctx, noHistory)
	if err != nil {
		_ = ch.Close()
		return nil, err
	}
	r := pipeline.NewRunner(ch, c.newKeyer(), store, c.Logger)
	r.ArtifactTTL = c.Config.Cache.TTL
	return r, nil
}

// newKeyer returns the default keyer, scoped when a cache prefix is set.
func (c *CLI) newKeyer() cache.Keyer {
	keyer := cache.NewDefaultKeyer()
	if p := c.Config.Cache.Prefix; p != "" {
		return cache.NewScopedKeyer(keyer, p)
	}
	return keyer
}

// newCache returns the configured cache: Redis when a URL is set, the file
// cache otherwise. A file cache that cannot be created degrades to no cache.
func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if url := c.Config.Cache.RedisURL; url != "" {
		return cache.NewRedisCache(ctx, url)
	}
	dir := c.Config.Cache.Dir
	if dir == "" {
		d, err := cache.DefaultDir()
		if err != nil {
			c.Logger.Warn("cache disabled", "error", err)
			return cache.NewNullCache(), nil
		}
		dir = d
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Warn("cache disabled", "error", err)
		return cache.NewNullCache(), nil
	}
	return fc, nil
}

// newHistory returns the configured run store: MongoDB when a URI is set,
// JSON files otherwise.
func (c *CLI) newHistory(ctx context.Context, noHistory bool) (history.Store, error) {
	if noHistory {
		return history.NullStore{}, nil
	}
	h := c.Config.History
	if h.MongoURI != "" {
		return history.NewMongoStore(ctx, history.MongoConfig{
			URI:        h.MongoURI,
			Database:   h.Database,
			Collection: h.Collection,
		})
	}
	return history.NewFileStore(h.Dir)
}
