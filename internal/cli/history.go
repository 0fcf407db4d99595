package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mazewalk/pkg/history"
)

// historyCommand creates the history command group.
func (c *CLI) historyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect recorded search runs",
	}

	cmd.AddCommand(c.historyListCommand())
	cmd.AddCommand(c.historyShowCommand())

	return cmd
}

func (c *CLI) historyListCommand() *cobra.Command {
	var (
		limit    int
		strategy string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := c.newHistory(ctx, false)
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.List(ctx, history.ListOptions{Limit: limit, Strategy: strategy})
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				printInfo("No runs recorded yet")
				printNextStep("Record one", "mazewalk solve")
				return nil
			}
			fmt.Fprintln(c.Out, runsTable(runs, time.Now()))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", history.DefaultListLimit, "maximum number of runs")
	cmd.Flags().StringVar(&strategy, "strategy", "", "only show runs of this strategy")

	return cmd
}

func (c *CLI) historyShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Show one run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := c.newHistory(ctx, false)
			if err != nil {
				return err
			}
			defer store.Close()

			r, err := findRun(ctx, store, args[0])
			if err != nil {
				return err
			}

			fmt.Println(renderOutcome(r.Strategy, r.Found))
			printKeyValue("id", r.ID)
			printKeyValue("maze", fmt.Sprintf("%dx%d", r.Rows, r.Cols))
			if r.Algorithm != "" {
				printKeyValue("algorithm", r.Algorithm)
				printKeyValue("seed", strconv.FormatUint(r.Seed, 10))
			} else if r.Source != "" {
				printKeyValue("source", r.Source)
			}
			printKeyValue("settled", strconv.Itoa(r.Settled))
			printKeyValue("frontier", strconv.Itoa(r.Frontier))
			printKeyValue("duration", r.Duration.String())
			printKeyValue("maze hash", shortHash(r.MazeHash))
			printKeyValue("recorded", r.CreatedAt.Local().Format(time.DateTime))
			if r.Algorithm != "" {
				printNextStep("Reproduce", fmt.Sprintf("mazewalk solve %s --rows %d --cols %d --algorithm %s --seed %d",
					r.Strategy, r.Rows, r.Cols, r.Algorithm, r.Seed))
			}
			return nil
		},
	}
}

// findRun looks a run up by full ID, falling back to a unique prefix match
// among recent runs so the short IDs from "history list" work.
func findRun(ctx context.Context, store history.Store, id string) (*history.Report, error) {
	r, err := store.Get(ctx, id)
	if err == nil || !errors.Is(err, history.ErrNotFound) || len(id) < 4 {
		return r, err
	}
	recent, lerr := store.List(ctx, history.ListOptions{Limit: prefixSearchLimit})
	if lerr != nil {
		return nil, lerr
	}
	var match *history.Report
	for _, cand := range recent {
		if strings.HasPrefix(cand.ID, id) {
			if match != nil {
				return nil, fmt.Errorf("run id %q is ambiguous", id)
			}
			match = cand
		}
	}
	if match == nil {
		return nil, err
	}
	return match, nil
}

// prefixSearchLimit bounds how many runs findRun scans.
const prefixSearchLimit = 1000

// runsTable renders reports as a bordered table.
func runsTable(runs []*history.Report, now time.Time) string {
	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		rows = append(rows, []string{
			shortHash(r.ID),
			r.Strategy,
			fmt.Sprintf("%dx%d", r.Rows, r.Cols),
			r.Outcome(),
			strconv.Itoa(r.Settled),
			r.Duration.Round(time.Microsecond).String(),
			formatRelativeTime(r.CreatedAt, now),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("ID", "Strategy", "Size", "Outcome", "Settled", "Time", "When").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			switch col {
			case 0, 6:
				return cell.Foreground(colorDim)
			case 3:
				if runs[row].Found {
					return cell.Foreground(colorGreen)
				}
				return cell.Foreground(colorRed)
			}
			return cell
		})
	return t.Render()
}

// shortHash abbreviates IDs and hashes for display.
func shortHash(s string) string {
	if len(s) > 8 {
		return s[:8]
	}
	return s
}

func formatRelativeTime(t, now time.Time) string {
	diff := now.Sub(t)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}
