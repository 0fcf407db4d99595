package cli

import (
	"github.com/spf13/cobra"
)

// renderCommand creates the render command, which searches a maze file and
// writes one picture per strategy next to it.
func (c *CLI) renderCommand() *cobra.Command {
	so := solveOpts{toFiles: true}
	var strategy string

	cmd := &cobra.Command{
		Use:   "render [maze-file]",
		Short: "Search a maze file and write the explored maze to files",
		Long: `Search a maze file and write the explored maze to files.

Files are named after the input (or --output) with the strategy appended,
for example maze_bfs.svg and maze_dfs.svg.`,
		Example: `  mazewalk render maze.txt
  mazewalk render maze.json --strategy dfs -f svg,png --style blueprint`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			so.input = args[0]
			opts, err := c.pipelineOptions(cmd, &so, []string{strategy})
			if err != nil {
				return err
			}
			return c.runSolve(cmd.Context(), opts, &so)
		},
	}

	cmd.Flags().StringVarP(&strategy, "strategy", "s", "both", "search strategy: bfs, dfs, both")
	c.addRenderFlags(cmd, &so)

	return cmd
}
