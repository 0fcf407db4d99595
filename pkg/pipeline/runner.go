package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mazewalk/pkg/cache"
	"github.com/matzehuels/mazewalk/pkg/grid"
	"github.com/matzehuels/mazewalk/pkg/history"
	pkgio "github.com/matzehuels/mazewalk/pkg/io"
	"github.com/matzehuels/mazewalk/pkg/maze"
	"github.com/matzehuels/mazewalk/pkg/observability"
	"github.com/matzehuels/mazewalk/pkg/render"
	"github.com/matzehuels/mazewalk/pkg/search"
)

// Runner executes pipelines with caching and history.
//
// The Runner keeps no per-run state, so one Runner may serve concurrent
// Execute calls with different options.
type Runner struct {
	Cache   cache.Cache
	Keyer   cache.Keyer
	History history.Store
	Logger  *log.Logger

	// ArtifactTTL overrides cache.TTLArtifact when positive.
	ArtifactTTL time.Duration
}

// NewRunner creates a runner. Nil arguments get defaults: a NullCache, the
// DefaultKeyer, a NullStore and the default logger.
func NewRunner(c cache.Cache, keyer cache.Keyer, store history.Store, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if store == nil {
		store = history.NullStore{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:   c,
		Keyer:   keyer,
		History: store,
		Logger:  logger,
	}
}

// Execute runs the load → search → render → record pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	logger := r.logger(opts)
	result := &Result{}

	// Stage 1: Load
	loadStart := time.Now()
	g, hit, err := r.LoadMazeWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load maze: %w", err)
	}
	result.Maze = g
	result.MazeHash = cache.Hash([]byte(g.String()))
	result.CacheInfo.MazeHit = hit
	result.Stats.LoadTime = time.Since(loadStart)
	switch {
	case opts.Grid != nil:
		result.Source = SourceInline
	case opts.Input != "":
		result.Source = opts.Input
	default:
		result.Source = SourceGenerated
		gen := opts.Maze
		result.Generator = &gen
	}

	rows, cols := g.Dims()
	logger.Debug("loaded maze",
		"source", result.Source,
		"rows", rows,
		"cols", cols,
		"exits", g.Count(grid.Exit),
		"cached", hit,
		"duration", result.Stats.LoadTime)

	// Stage 2 and 3 per strategy
	allCached := true
	for _, name := range opts.Strategies {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		strategy := search.Strategy(name)

		searchStart := time.Now()
		run, err := r.Search(ctx, g, strategy, opts.Record)
		if err != nil {
			return nil, fmt.Errorf("search %s: %w", strategy, err)
		}
		result.Stats.SearchTime += time.Since(searchStart)

		logger.Debug("searched maze",
			"strategy", strategy,
			"found", run.Search.Found,
			"settled", run.Search.Settled(),
			"frontier", run.Search.Frontier(),
			"duration", run.Search.Duration)

		renderStart := time.Now()
		artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, run.Snapshot, result.MazeHash, opts)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", strategy, err)
		}
		result.Stats.RenderTime += time.Since(renderStart)
		run.Artifacts = artifacts
		allCached = allCached && renderHit

		// Stage 4: Record
		run.Report = r.record(ctx, logger, run.Search, result)
		result.Runs = append(result.Runs, run)
	}
	result.CacheInfo.RenderHit = allCached

	logger.Debug("rendered outputs",
		"formats", opts.Formats,
		"cached", allCached,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// LoadMazeWithCacheInfo returns the maze described by opts. Generated mazes
// are cached under their generator inputs.
func (r *Runner) LoadMazeWithCacheInfo(ctx context.Context, opts Options) (*grid.Grid, bool, error) {
	if opts.Grid != nil {
		return opts.Grid, false, nil
	}
	if opts.Input != "" {
		g, err := pkgio.ImportFile(opts.Input)
		return g, false, err
	}

	opts.Maze = opts.Maze.WithDefaults()
	key := r.Keyer.MazeKey(opts.MazeKeyOpts())

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			if g, err := pkgio.ReadMaze(bytes.NewReader(data)); err == nil {
				observability.Cache().OnCacheHit(ctx, "maze")
				return g, true, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, "maze")
	}

	start := time.Now()
	g, err := maze.Generate(opts.Maze)
	rows, cols := opts.Maze.Rows, opts.Maze.Cols
	observability.Search().OnGenerate(ctx, string(opts.Maze.Algorithm), rows, cols, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	data := []byte(g.String())
	if err := r.Cache.Set(ctx, key, data, cache.TTLMaze); err == nil {
		observability.Cache().OnCacheSet(ctx, "maze", len(data))
	}
	return g, false, nil
}

// LoadMaze is LoadMazeWithCacheInfo without the cache hit info.
func (r *Runner) LoadMaze(ctx context.Context, opts Options) (*grid.Grid, error) {
	g, _, err := r.LoadMazeWithCacheInfo(ctx, opts)
	return g, err
}

// Search runs one strategy over g. With record set, every mark transition is
// kept in the returned Run.
func (r *Runner) Search(ctx context.Context, g *grid.Grid, strategy search.Strategy, record bool) (Run, error) {
	rows, cols := g.Dims()
	observability.Search().OnRunStart(ctx, strategy.String(), rows, cols)

	var (
		run      Run
		engOpts  []search.Option
		recorder = render.NewRecorder(strategy)
	)
	if record {
		engOpts = append(engOpts, search.WithTransitions(func(t grid.Transition) {
			run.Transitions = append(run.Transitions, t)
		}))
	}

	eng, err := search.New(strategy, g, recorder, engOpts...)
	if err != nil {
		return Run{}, err
	}
	res, err := eng.Run()
	observability.Search().OnRunComplete(ctx, strategy.String(), res.Found, settledOf(res), res.Duration, err)
	if err != nil {
		return Run{}, err
	}

	run.Search = res
	run.Snapshot = recorder.Snapshot(res.Found)
	return run, nil
}

func settledOf(res search.Result) int {
	if res.State == nil {
		return 0
	}
	return res.Settled()
}

// RenderWithCacheInfo renders snap in every requested format, using cached
// artifacts when all of them are present.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, snap render.Snapshot, mazeHash string, opts Options) (map[string][]byte, bool, error) {
	opts.SetRenderDefaults()
	formats, err := ValidateFormats(opts.Formats)
	if err != nil {
		return nil, false, err
	}

	keys := make(map[render.Format]string, len(formats))
	for _, f := range formats {
		keys[f] = r.Keyer.ArtifactKey(mazeHash, opts.ArtifactKeyOpts(snap.Strategy, string(f)))
	}

	if !opts.Refresh {
		artifacts := make(map[string][]byte, len(formats))
		for _, f := range formats {
			data, hit, err := r.Cache.Get(ctx, keys[f])
			if err != nil || !hit {
				observability.Cache().OnCacheMiss(ctx, "artifact")
				break
			}
			observability.Cache().OnCacheHit(ctx, "artifact")
			artifacts[string(f)] = data
		}
		if len(artifacts) == len(formats) {
			return artifacts, true, nil
		}
	}

	start := time.Now()
	observability.Search().OnRenderStart(ctx, opts.Formats)
	artifacts := make(map[string][]byte, len(formats))
	var renderErr error
	for _, f := range formats {
		data, err := render.Render(snap, f, opts.RenderOptions())
		if err != nil {
			renderErr = fmt.Errorf("%s: %w", f, err)
			break
		}
		artifacts[string(f)] = data
	}
	observability.Search().OnRenderComplete(ctx, opts.Formats, time.Since(start), renderErr)
	if renderErr != nil {
		return nil, false, renderErr
	}

	for f, key := range keys {
		data := artifacts[string(f)]
		if err := r.Cache.Set(ctx, key, data, r.artifactTTL()); err == nil {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}
	return artifacts, false, nil
}

// Render is RenderWithCacheInfo without the cache hit info.
func (r *Runner) Render(ctx context.Context, snap render.Snapshot, mazeHash string, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, snap, mazeHash, opts)
	return artifacts, err
}

// record saves a history report. Failures are logged, not returned.
func (r *Runner) record(ctx context.Context, logger *log.Logger, res search.Result, result *Result) *history.Report {
	rep := history.NewReport(res, result.MazeHash)
	rep.Source = result.Source
	if gen := result.Generator; gen != nil {
		rep.Algorithm = string(gen.Algorithm)
		rep.Seed = gen.Seed
	}
	if err := r.History.Save(ctx, rep); err != nil {
		logger.Warn("failed to save run report", "strategy", res.Strategy, "error", err)
		return nil
	}
	return rep
}

func (r *Runner) artifactTTL() time.Duration {
	if r.ArtifactTTL > 0 {
		return r.ArtifactTTL
	}
	return cache.TTLArtifact
}

func (r *Runner) logger(opts Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return r.Logger
}

// Close releases the cache and history store.
func (r *Runner) Close() error {
	var firstErr error
	if r.Cache != nil {
		firstErr = r.Cache.Close()
	}
	if r.History != nil {
		if err := r.History.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
