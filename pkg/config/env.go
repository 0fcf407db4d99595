package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/matzehuels/mazewalk/pkg/errors"
	"github.com/matzehuels/mazewalk/pkg/maze"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "MAZEWALK_"

type lookupFunc func(key string) (string, bool)

// readDotEnv parses a .env file. A missing file yields no values.
func readDotEnv(path string) (map[string]string, error) {
	vals, err := godotenv.Read(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path)
	}
	return vals, nil
}

// lookupWith consults the process environment first, then the .env values.
func lookupWith(dotenv map[string]string) lookupFunc {
	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
}

func (c *Config) applyEnv(lookup lookupFunc) error {
	get := func(name string) (string, bool) {
		v, ok := lookup(EnvPrefix + name)
		return strings.TrimSpace(v), ok && strings.TrimSpace(v) != ""
	}

	ints := map[string]*int{"ROWS": &c.Maze.Rows, "COLS": &c.Maze.Cols}
	for name, dst := range ints {
		if v, ok := get(name); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return errors.New(errors.ErrCodeInvalidInput, "%s%s must be an integer, got %q", EnvPrefix, name, v)
			}
			*dst = n
		}
	}
	if v, ok := get("ALGORITHM"); ok {
		c.Maze.Algorithm = maze.Algorithm(v)
	}
	if v, ok := get("DENSITY"); ok {
		d, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return errors.New(errors.ErrCodeInvalidInput, "%sDENSITY must be a number, got %q", EnvPrefix, v)
		}
		c.Maze.Density = d
	}
	if v, ok := get("SEED"); ok {
		s, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return errors.New(errors.ErrCodeInvalidInput, "%sSEED must be an unsigned integer, got %q", EnvPrefix, v)
		}
		c.Maze.Seed = s
	}

	if v, ok := get("STRATEGIES"); ok {
		c.Search.Strategies = splitList(v)
	}
	if v, ok := get("FORMATS"); ok {
		c.Render.Formats = splitList(v)
	}

	strs := map[string]*string{
		"STYLE":            &c.Render.Style,
		"OUTPUT":           &c.Render.Output,
		"CACHE_DIR":        &c.Cache.Dir,
		"REDIS_URL":        &c.Cache.RedisURL,
		"CACHE_PREFIX":     &c.Cache.Prefix,
		"HISTORY_DIR":      &c.History.Dir,
		"MONGO_URI":        &c.History.MongoURI,
		"MONGO_DATABASE":   &c.History.Database,
		"MONGO_COLLECTION": &c.History.Collection,
		"ADDR":             &c.Server.Addr,
	}
	for name, dst := range strs {
		if v, ok := get(name); ok {
			*dst = v
		}
	}

	if v, ok := get("CACHE_TTL"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return errors.New(errors.ErrCodeInvalidInput, "%sCACHE_TTL must be a duration, got %q", EnvPrefix, v)
		}
		c.Cache.TTL = d
	}
	return nil
}

// splitList parses a comma-separated list, dropping empty entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
