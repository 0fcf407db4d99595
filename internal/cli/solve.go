package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mazewalk/pkg/errors"
	"github.com/matzehuels/mazewalk/pkg/maze"
	"github.com/matzehuels/mazewalk/pkg/pipeline"
	"github.com/matzehuels/mazewalk/pkg/render"
)

// solveOpts holds the command-line flags shared by solve and render.
type solveOpts struct {
	rows        int
	cols        int
	seed        uint64
	algorithm   string
	density     float64
	input       string
	formats     string
	output      string
	style       string
	cellSize    float64
	detailed    bool
	interactive bool
	delay       time.Duration
	noCache     bool
	noHistory   bool
	refresh     bool

	// toFiles forces file output, deriving names from input when output is empty.
	toFiles bool
}

// solveCommand creates the solve command.
func (c *CLI) solveCommand() *cobra.Command {
	var so solveOpts

	cmd := &cobra.Command{
		Use:   "solve [bfs|dfs|both]",
		Short: "Search a maze for an exit",
		Long: `Search a maze from its top-left corner for an exit.

The maze is generated (see --algorithm) unless --input names a maze file.
Each strategy prints "solved!" or "no solution!" followed by the maze with
the explored cells marked.`,
		Example: `  mazewalk solve
  mazewalk solve bfs --rows 21 --cols 61 --seed 7
  mazewalk solve dfs -i maze.txt -f svg -o dfs.svg
  mazewalk solve --interactive`,
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"bfs", "dfs", "both"},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.pipelineOptions(cmd, &so, args)
			if err != nil {
				return err
			}
			if so.output == "" {
				so.output = c.Config.Render.Output
			}
			return c.runSolve(cmd.Context(), opts, &so)
		},
	}

	c.addMazeFlags(cmd, &so)
	c.addRenderFlags(cmd, &so)
	cmd.Flags().StringVarP(&so.input, "input", "i", "", "maze file to search instead of generating one (text or .json)")
	cmd.Flags().BoolVarP(&so.interactive, "interactive", "I", false, "replay each search step by step in the terminal")
	cmd.Flags().DurationVar(&so.delay, "delay", defaultReplayDelay, "delay between replay frames (with --interactive)")

	return cmd
}

func (c *CLI) addMazeFlags(cmd *cobra.Command, so *solveOpts) {
	m := c.Config.Maze
	cmd.Flags().IntVar(&so.rows, "rows", m.Rows, "maze height in tiles")
	cmd.Flags().IntVar(&so.cols, "cols", m.Cols, "maze width in tiles")
	cmd.Flags().Uint64Var(&so.seed, "seed", m.Seed, "random seed (0 picks one)")
	cmd.Flags().StringVar(&so.algorithm, "algorithm", string(m.Algorithm), "generator: wilson, scatter, open")
	cmd.Flags().Float64Var(&so.density, "density", m.Density, "wall probability for the scatter generator")
}

func (c *CLI) addRenderFlags(cmd *cobra.Command, so *solveOpts) {
	cmd.Flags().StringVarP(&so.formats, "format", "f", "", "output format(s): text, ansi, svg, json, dot, png, pdf (comma-separated)")
	cmd.Flags().StringVarP(&so.output, "output", "o", "", "output file (single artifact) or base path (several)")
	cmd.Flags().StringVar(&so.style, "style", "", "visual style: simple (default), blueprint")
	cmd.Flags().Float64Var(&so.cellSize, "cell-size", 0, "cell size in pixels for svg, png and pdf")
	cmd.Flags().BoolVar(&so.detailed, "detailed", false, "label every node of the dot graph")
	cmd.Flags().BoolVar(&so.noCache, "no-cache", false, "disable the maze and artifact cache")
	cmd.Flags().BoolVar(&so.noHistory, "no-history", false, "do not record runs in the history")
	cmd.Flags().BoolVar(&so.refresh, "refresh", false, "ignore cached mazes and artifacts")
}

// pipelineOptions merges the configuration with the flags the user set.
func (c *CLI) pipelineOptions(cmd *cobra.Command, so *solveOpts, args []string) (pipeline.Options, error) {
	cfg := c.Config
	flags := cmd.Flags()

	m := cfg.Maze
	if flags.Changed("rows") {
		m.Rows = so.rows
	}
	if flags.Changed("cols") {
		m.Cols = so.cols
	}
	if flags.Changed("seed") {
		m.Seed = so.seed
	}
	if flags.Changed("algorithm") {
		a, err := maze.ParseAlgorithm(so.algorithm)
		if err != nil {
			return pipeline.Options{}, err
		}
		m.Algorithm = a
	}
	if flags.Changed("density") {
		m.Density = so.density
	}

	opts := pipeline.Options{
		Maze:       m,
		Input:      so.input,
		Strategies: cfg.Search.Strategies,
		Formats:    cfg.Render.Formats,
		Style:      cfg.Render.Style,
		CellSize:   so.cellSize,
		Detailed:   so.detailed,
		Refresh:    so.refresh,
		Logger:     c.Logger,
	}
	if len(args) > 0 {
		opts.Strategies = args
	}
	if so.formats != "" {
		opts.Formats = parseFormats(so.formats)
	} else if so.toFiles {
		opts.Formats = []string{string(render.FormatSVG)}
	}
	if so.style != "" {
		opts.Style = so.style
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return pipeline.Options{}, err
	}
	return opts, nil
}

// parseFormats splits a comma-separated format list.
func parseFormats(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// runSolve executes the pipeline and presents the result.
func (c *CLI) runSolve(ctx context.Context, opts pipeline.Options, so *solveOpts) error {
	if so.interactive {
		opts.Record = true
		opts.Formats = []string{string(render.FormatText)}
	} else if so.output == "" && !so.toFiles {
		for _, f := range opts.Formats {
			if render.Format(f).Binary() {
				return errors.New(errors.ErrCodeInvalidInput, "format %s needs --output", f)
			}
		}
	}

	runner, err := c.newRunner(ctx, so.noCache, so.noHistory)
	if err != nil {
		return err
	}
	defer runner.Close()

	var spinner *Spinner
	if !c.verbose && !so.interactive {
		spinner = newSpinnerWithContext(ctx, "Searching...")
		spinner.Start()
	}
	res, err := runner.Execute(ctx, opts)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return err
	}

	printMazeInfo(res)

	if so.interactive {
		if err := c.runReplay(ctx, res, so.delay); err != nil {
			return err
		}
		for _, run := range res.Runs {
			printOutcome(run.Search.Strategy.String(), run.Search.Found)
			printRunStats(run.Search.Settled(), run.Search.Frontier(), run.Search.Duration, res.CacheInfo.MazeHit)
		}
		return nil
	}

	multi := so.toFiles || len(res.Runs)*len(opts.Formats) > 1
	base, err := outputBase(so, multi)
	if err != nil {
		return err
	}
	for _, run := range res.Runs {
		strategy := run.Search.Strategy.String()
		if base == "" {
			for _, f := range opts.Formats {
				if _, err := c.Out.Write(run.Artifacts[f]); err != nil {
					return err
				}
			}
		}
		printOutcome(strategy, run.Search.Found)
		printRunStats(run.Search.Settled(), run.Search.Frontier(), run.Search.Duration, res.CacheInfo.RenderHit)
		if base == "" {
			continue
		}
		for _, f := range opts.Formats {
			path := base
			if multi {
				path = artifactPath(base, strategy, render.Format(f))
			}
			if err := writeArtifact(path, run.Artifacts[f]); err != nil {
				return err
			}
			printFile(path)
		}
		if run.Report != nil {
			printDetail("run %s", run.Report.ID)
		}
	}

	if base != "" && len(res.Runs) > 0 && res.Runs[0].Report != nil {
		printNextStep("Inspect a run", "mazewalk history show "+res.Runs[0].Report.ID)
	}
	return nil
}

func printMazeInfo(res *pipeline.Result) {
	rows, cols := res.Maze.Dims()
	if gen := res.Generator; gen != nil {
		printInfo("Maze %dx%d %s", rows, cols, StyleDim.Render(fmt.Sprintf("(%s, seed %d)", gen.Algorithm, gen.Seed)))
		return
	}
	printInfo("Maze %dx%d %s", rows, cols, StyleDim.Render("("+res.Source+")"))
}

// outputBase returns the output path, or the base path when several
// artifacts are written. Empty means stdout.
func outputBase(so *solveOpts, multi bool) (string, error) {
	out := so.output
	if out == "" && so.toFiles {
		out = basePath(so.input)
	}
	if out == "" {
		return "", nil
	}
	if err := errors.ValidatePath(out); err != nil {
		return "", err
	}
	if info, err := os.Stat(out); err == nil && info.IsDir() {
		return filepath.Join(out, appName), nil
	}
	if multi {
		return basePath(out), nil
	}
	return out, nil
}

// basePath strips a known format extension from path.
func basePath(path string) string {
	ext := filepath.Ext(path)
	if _, err := render.ParseFormat(strings.TrimPrefix(ext, ".")); err == nil && ext != "" {
		return strings.TrimSuffix(path, ext)
	}
	return path
}

// artifactPath names one artifact: base_strategy.ext, with a format suffix
// where two formats share an extension.
func artifactPath(base, strategy string, f render.Format) string {
	suffix := ""
	switch f {
	case render.FormatDOT:
		suffix = "_graph"
	case render.FormatANSI:
		suffix = "_ansi"
	}
	return fmt.Sprintf("%s_%s%s.%s", base, strategy, suffix, f.Ext())
}

// writeArtifact writes data to path, creating parent directories.
func writeArtifact(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	if _, err := out.Write(data); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput opens path for writing, or stdout for an empty path.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
