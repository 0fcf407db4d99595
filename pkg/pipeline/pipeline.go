// Package pipeline runs the complete maze workflow for mazewalk.
//
// One pipeline run goes through four stages, shared by the CLI and the HTTP
// server so both behave the same:
//
//  1. Load: read a maze file, or generate one (cached by generator inputs)
//  2. Search: run every requested strategy from the top-left corner
//  3. Render: draw each run in the requested formats (cached by content)
//  4. Record: save a history report per run
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, store, logger)
//	opts := pipeline.Options{
//	    Maze:       maze.Options{Rows: 21, Cols: 41, Seed: 7},
//	    Strategies: []string{"bfs", "dfs"},
//	    Formats:    []string{"text"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, run := range result.Runs {
//	    fmt.Println(run.Snapshot.Title())
//	}
package pipeline

import (
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mazewalk/pkg/cache"
	"github.com/matzehuels/mazewalk/pkg/errors"
	"github.com/matzehuels/mazewalk/pkg/grid"
	"github.com/matzehuels/mazewalk/pkg/history"
	"github.com/matzehuels/mazewalk/pkg/maze"
	"github.com/matzehuels/mazewalk/pkg/render"
	"github.com/matzehuels/mazewalk/pkg/render/styles"
	"github.com/matzehuels/mazewalk/pkg/search"
)

// Both selects every strategy.
const Both = "both"

// DefaultFormat is rendered when no format is requested.
const DefaultFormat = render.FormatText

// DefaultScale is the PNG scale factor.
const DefaultScale = 2.0

// Maze sources reported in Result.Source.
const (
	SourceGenerated = "generated"
	SourceInline    = "inline"
)

// Options configures one pipeline run. It supports JSON for API requests.
type Options struct {
	// Maze holds generator inputs, used when neither Grid nor Input is set.
	Maze maze.Options `json:"maze"`
	// Input is the path of a maze file (text or .json).
	Input string `json:"input,omitempty"`
	// Grid is an already loaded maze. It takes precedence over Input.
	Grid *grid.Grid `json:"-"`

	Strategies []string `json:"strategies,omitempty"`

	Formats  []string `json:"formats,omitempty"`
	Style    string   `json:"style,omitempty"`
	CellSize float64  `json:"cell_size,omitempty"`
	Scale    float64  `json:"scale,omitempty"`
	Detailed bool     `json:"detailed,omitempty"`

	// Refresh skips cache lookups for the maze and artifacts.
	Refresh bool `json:"refresh,omitempty"`
	// Record keeps every mark transition of each run for replay.
	Record bool `json:"-"`

	// Logger overrides the runner's logger for this run.
	Logger *log.Logger `json:"-"`

	validated bool
}

// Result is the output of a pipeline run.
type Result struct {
	Maze     *grid.Grid
	MazeHash string
	// Source is SourceGenerated, SourceInline or the input path.
	Source string
	// Generator holds the effective generator options, seed included, when
	// the maze was generated.
	Generator *maze.Options

	Runs      []Run
	Stats     Stats
	CacheInfo CacheInfo
}

// Run is the outcome of one strategy.
type Run struct {
	Search      search.Result
	Snapshot    render.Snapshot
	Transitions []grid.Transition
	// Artifacts are keyed by format name.
	Artifacts map[string][]byte
	Report    *history.Report
}

// Stats holds stage timings.
type Stats struct {
	LoadTime   time.Duration
	SearchTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits per stage.
type CacheInfo struct {
	MazeHit   bool
	RenderHit bool // every artifact of every run came from cache
}

// Found reports whether any run reached an exit.
func (r *Result) Found() bool {
	return slices.ContainsFunc(r.Runs, func(run Run) bool { return run.Search.Found })
}

// =============================================================================
// Validation
// =============================================================================

// ValidateStrategies parses strategy names, expanding "both" and removing
// duplicates while keeping order.
func ValidateStrategies(names []string) ([]search.Strategy, error) {
	var out []search.Strategy
	add := func(s search.Strategy) {
		if !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	for _, name := range names {
		if strings.EqualFold(strings.TrimSpace(name), Both) {
			for _, s := range search.Strategies {
				add(s)
			}
			continue
		}
		s, err := search.ParseStrategy(name)
		if err != nil {
			return nil, err
		}
		add(s)
	}
	return out, nil
}

// ValidateFormats parses format names.
func ValidateFormats(names []string) ([]render.Format, error) {
	out := make([]render.Format, 0, len(names))
	for _, name := range names {
		f, err := render.ParseFormat(name)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

// ValidateStyle checks that a style exists.
func ValidateStyle(name string) error {
	_, err := styles.Lookup(name)
	return err
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks the options and fills in defaults. Names are
// normalized in place. Calling it again is a no-op.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if o.Grid == nil && o.Input == "" {
		o.Maze = o.Maze.WithDefaults()
		if err := o.Maze.Validate(); err != nil {
			return err
		}
	}
	if o.Input != "" {
		if err := errors.ValidatePath(o.Input); err != nil {
			return err
		}
	}

	if len(o.Strategies) == 0 {
		o.Strategies = []string{Both}
	}
	strategies, err := ValidateStrategies(o.Strategies)
	if err != nil {
		return err
	}
	o.Strategies = make([]string, len(strategies))
	for i, s := range strategies {
		o.Strategies[i] = s.String()
	}

	o.SetRenderDefaults()
	formats, err := ValidateFormats(o.Formats)
	if err != nil {
		return err
	}
	o.Formats = make([]string, len(formats))
	for i, f := range formats {
		o.Formats[i] = string(f)
	}
	if err := ValidateStyle(o.Style); err != nil {
		return err
	}
	if o.CellSize < 0 || o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "cell size and scale must not be negative")
	}

	o.validated = true
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{string(DefaultFormat)}
	}
	if o.Style == "" {
		o.Style = styles.Default
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
}

// RenderOptions converts the options for pkg/render.
func (o *Options) RenderOptions() render.Options {
	return render.Options{
		Style:    o.Style,
		CellSize: o.CellSize,
		Scale:    o.Scale,
		Detailed: o.Detailed,
		Seed:     o.Maze.Seed,
	}
}

// MazeKeyOpts returns cache key options for maze generation.
func (o *Options) MazeKeyOpts() cache.MazeKeyOpts {
	return cache.MazeKeyOpts{
		Rows:      o.Maze.Rows,
		Cols:      o.Maze.Cols,
		Algorithm: string(o.Maze.Algorithm),
		Density:   o.Maze.Density,
		Seed:      o.Maze.Seed,
	}
}

// ArtifactKeyOpts returns cache key options for one rendered artifact.
func (o *Options) ArtifactKeyOpts(strategy search.Strategy, format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Strategy: strategy.String(),
		Format:   format,
		Style:    o.Style,
		CellSize: o.CellSize,
		Scale:    o.Scale,
		Detailed: o.Detailed,
	}
}
