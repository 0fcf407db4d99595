// Package config loads mazewalk settings.
//
// Settings are layered, later sources overriding earlier ones:
//
//  1. built-in defaults ([Default])
//  2. a TOML file, $XDG_CONFIG_HOME/mazewalk/config.toml unless a path is given
//  3. a .env file in the working directory
//  4. MAZEWALK_* environment variables
//
// Command-line flags are applied on top by the CLI.
//
// # File Format
//
//	[maze]
//	rows = 40
//	cols = 80
//	algorithm = "wilson"
//
//	[search]
//	strategies = ["bfs", "dfs"]
//
//	[render]
//	formats = ["ansi"]
//	style = "simple"
//
//	[cache]
//	redis_url = "redis://localhost:6379/0"
//	ttl = "24h"
//
//	[history]
//	mongo_uri = "mongodb://localhost:27017"
//
//	[server]
//	addr = ":8080"
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/mazewalk/pkg/cache"
	"github.com/matzehuels/mazewalk/pkg/errors"
	"github.com/matzehuels/mazewalk/pkg/history"
	"github.com/matzehuels/mazewalk/pkg/maze"
	"github.com/matzehuels/mazewalk/pkg/render"
	"github.com/matzehuels/mazewalk/pkg/render/styles"
	"github.com/matzehuels/mazewalk/pkg/search"
)

// DefaultAddr is the address the HTTP server listens on.
const DefaultAddr = ":8080"

// Config is the complete set of settings.
type Config struct {
	Maze    maze.Options  `toml:"maze"`
	Search  SearchConfig  `toml:"search"`
	Render  RenderConfig  `toml:"render"`
	Cache   CacheConfig   `toml:"cache"`
	History HistoryConfig `toml:"history"`
	Server  ServerConfig  `toml:"server"`
}

type SearchConfig struct {
	Strategies []string `toml:"strategies"`
}

type RenderConfig struct {
	Formats []string `toml:"formats"`
	Style   string   `toml:"style"`
	// Output is a file path or directory for rendered artifacts. Empty
	// writes to stdout.
	Output string `toml:"output"`
}

// CacheConfig selects the cache backend. A RedisURL takes precedence over Dir.
// A non-empty Prefix namespaces every cache key, so several deployments can
// share one Redis.
type CacheConfig struct {
	Dir      string        `toml:"dir"`
	RedisURL string        `toml:"redis_url"`
	Prefix   string        `toml:"prefix"`
	TTL      time.Duration `toml:"ttl"`
}

// HistoryConfig selects the run store. A MongoURI takes precedence over Dir.
type HistoryConfig struct {
	Dir        string `toml:"dir"`
	MongoURI   string `toml:"mongo_uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

type ServerConfig struct {
	Addr string `toml:"addr"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Maze: maze.Options{
			Rows:      maze.DefaultRows,
			Cols:      maze.DefaultCols,
			Algorithm: maze.Wilson,
			Density:   maze.DefaultDensity,
		},
		Search: SearchConfig{Strategies: []string{string(search.BFS), string(search.DFS)}},
		Render: RenderConfig{
			Formats: []string{string(render.FormatANSI)},
			Style:   styles.Default,
		},
		Cache: CacheConfig{TTL: cache.TTLArtifact},
		History: HistoryConfig{
			Database:   history.DefaultMongoDatabase,
			Collection: history.DefaultMongoCollection,
		},
		Server: ServerConfig{Addr: DefaultAddr},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/mazewalk/config.toml, falling back to
// ~/.config/mazewalk/config.toml.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "mazewalk", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "mazewalk", "config.toml"), nil
}

// Load builds a Config from all sources. An empty path reads the default
// location if it exists; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err == nil {
			path = p
		}
	}
	if path != "" {
		if err := cfg.decodeFile(path, explicit); err != nil {
			return cfg, err
		}
	}

	env, err := readDotEnv(".env")
	if err != nil {
		return cfg, err
	}
	if err := cfg.applyEnv(lookupWith(env)); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) decodeFile(path string, required bool) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !required {
			return nil
		}
		if os.IsNotExist(err) {
			return errors.New(errors.ErrCodeFileNotFound, "config file %s not found", path)
		}
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "stat config file")
	}

	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "parse config file %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return errors.New(errors.ErrCodeInvalidInput, "unknown config keys in %s: %s",
			path, strings.Join(keys, ", "))
	}
	return nil
}

// Validate checks every setting that has a fixed set of legal values.
func (c Config) Validate() error {
	m := c.Maze.WithDefaults()
	if err := m.Validate(); err != nil {
		return err
	}
	for _, s := range c.Search.Strategies {
		if _, err := search.ParseStrategy(s); err != nil {
			return err
		}
	}
	for _, f := range c.Render.Formats {
		if _, err := render.ParseFormat(f); err != nil {
			return err
		}
	}
	if c.Render.Style != "" {
		if _, err := styles.Lookup(c.Render.Style); err != nil {
			return err
		}
	}
	if c.Cache.TTL < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "cache ttl must not be negative, got %s", c.Cache.TTL)
	}
	return nil
}
