package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mazewalk/pkg/errors"
	"github.com/matzehuels/mazewalk/pkg/grid"
	pkgio "github.com/matzehuels/mazewalk/pkg/io"
)

// generateCommand creates the generate command, which writes a new maze.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		so     solveOpts
		format string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a maze file",
		Long: `Generate a maze and write it as text (one row per line, # for walls,
X for the exit) or JSON. The result can be fed back with solve --input or
render.`,
		Example: `  mazewalk generate -o maze.txt
  mazewalk generate --algorithm scatter --density 0.35 --seed 9 -o maze.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			format = strings.ToLower(format)
			if format != "text" && format != "json" {
				return errors.New(errors.ErrCodeInvalidFormat, "generate writes text or json, got %q", format)
			}
			opts, err := c.pipelineOptions(cmd, &so, nil)
			if err != nil {
				return err
			}

			runner, err := c.newRunner(ctx, so.noCache, true)
			if err != nil {
				return err
			}
			defer runner.Close()

			prog := newProgress(logger)
			g, hit, err := runner.LoadMazeWithCacheInfo(ctx, opts)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Generated %dx%d maze", opts.Maze.Rows, opts.Maze.Cols))

			if so.output == "" {
				return writeMaze(c, g, format)
			}
			if strings.HasSuffix(strings.ToLower(so.output), ".json") {
				format = "json"
			}
			var writeErr error
			if format == "json" {
				writeErr = pkgio.ExportJSON(g, so.output)
			} else {
				writeErr = pkgio.ExportMaze(g, so.output)
			}
			if writeErr != nil {
				return writeErr
			}

			printSuccess("Generated %s maze", StyleHighlight.Render(string(opts.Maze.Algorithm)))
			printKeyValue("size", fmt.Sprintf("%dx%d", opts.Maze.Rows, opts.Maze.Cols))
			printKeyValue("seed", fmt.Sprintf("%d", opts.Maze.Seed))
			printKeyValue("exits", fmt.Sprintf("%d", g.Count(grid.Exit)))
			if hit {
				printDetail("from cache")
			}
			printFile(so.output)
			printNextStep("Search it", "mazewalk render "+so.output)
			return nil
		},
	}

	c.addMazeFlags(cmd, &so)
	cmd.Flags().StringVarP(&so.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "maze format: text, json (inferred from a .json output)")
	cmd.Flags().BoolVar(&so.noCache, "no-cache", false, "do not read or write the maze cache")
	cmd.Flags().BoolVar(&so.refresh, "refresh", false, "ignore cached mazes")

	return cmd
}

// writeMaze prints g to the CLI's output.
func writeMaze(c *CLI, g *grid.Grid, format string) error {
	if format == "json" {
		return pkgio.WriteJSON(g, c.Out)
	}
	return pkgio.WriteMaze(g, c.Out)
}
