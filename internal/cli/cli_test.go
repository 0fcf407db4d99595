package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/mazewalk/pkg/cache"
	"github.com/matzehuels/mazewalk/pkg/errors"
	"github.com/matzehuels/mazewalk/pkg/history"
	pkgio "github.com/matzehuels/mazewalk/pkg/io"
	"github.com/matzehuels/mazewalk/pkg/render"
)

// newTestCLI isolates every XDG directory and the working directory so
// commands neither read nor write the user's files.
func newTestCLI(t *testing.T) (*CLI, *bytes.Buffer, string) {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	work := t.TempDir()
	t.Chdir(work)

	var out bytes.Buffer
	c := New(&bytes.Buffer{}, LogInfo)
	c.Out = &out
	return c, &out, work
}

func run(t *testing.T, c *CLI, args ...string) error {
	t.Helper()
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	return root.ExecuteContext(context.Background())
}

func writeMazeFile(t *testing.T, dir string, rows ...string) string {
	t.Helper()
	path := filepath.Join(dir, "maze.txt")
	if err := os.WriteFile(path, []byte(strings.Join(rows, "\n")+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSolveCommandText(t *testing.T) {
	c, out, dir := newTestCLI(t)
	path := writeMazeFile(t, dir, "..X", "##.")

	if err := run(t, c, "solve", "bfs", "-i", path, "-f", "text"); err != nil {
		t.Fatalf("solve: %v", err)
	}
	if got, want := out.String(), "..X\n## \n"; got != want {
		t.Errorf("solve output = %q, want %q", got, want)
	}
}

func TestSolveCommandBoth(t *testing.T) {
	c, out, dir := newTestCLI(t)
	path := writeMazeFile(t, dir, "..X", "##.")

	if err := run(t, c, "solve", "both", "-i", path, "-f", "text"); err != nil {
		t.Fatalf("solve: %v", err)
	}
	if got, want := out.String(), "..X\n## \n..X\n## \n"; got != want {
		t.Errorf("solve output = %q, want %q", got, want)
	}
}

func TestSolveCommandRecordsHistory(t *testing.T) {
	c, _, dir := newTestCLI(t)
	path := writeMazeFile(t, dir, ".#X", "...")

	if err := run(t, c, "solve", "dfs", "-i", path, "-f", "text"); err != nil {
		t.Fatalf("solve: %v", err)
	}

	store, err := history.NewFileStore("")
	if err != nil {
		t.Fatalf("NewFileStore() error: %v", err)
	}
	runs, err := store.List(context.Background(), history.ListOptions{})
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("len(runs) = %d, want 1", len(runs))
	}
	if runs[0].Strategy != "dfs" || !runs[0].Found {
		t.Errorf("run = %+v, want a solved dfs run", runs[0])
	}
}

func TestSolveCommandBinaryNeedsOutput(t *testing.T) {
	c, _, dir := newTestCLI(t)
	path := writeMazeFile(t, dir, "..X")

	err := run(t, c, "solve", "bfs", "-i", path, "-f", "png")
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("solve -f png error = %v, want %s", err, errors.ErrCodeInvalidInput)
	}
}

func TestSolveCommandBadStrategy(t *testing.T) {
	c, _, _ := newTestCLI(t)
	if err := run(t, c, "solve", "astar"); err == nil {
		t.Error("solve astar should fail")
	}
}

func TestRenderCommandWritesFiles(t *testing.T) {
	c, _, dir := newTestCLI(t)
	path := writeMazeFile(t, dir, "..X", "##.")

	if err := run(t, c, "render", path, "-f", "svg,text"); err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, name := range []string{"maze_bfs.svg", "maze_dfs.svg", "maze_bfs.txt", "maze_dfs.txt"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
	data, err := os.ReadFile(filepath.Join(dir, "maze_bfs.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(data), "..X\n## \n"; got != want {
		t.Errorf("maze_bfs.txt = %q, want %q", got, want)
	}
}

func TestRenderCommandSingleStrategy(t *testing.T) {
	c, _, dir := newTestCLI(t)
	path := writeMazeFile(t, dir, "..X")

	if err := run(t, c, "render", path, "-s", "dfs"); err != nil {
		t.Fatalf("render: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "maze_dfs.svg")); err != nil {
		t.Errorf("missing maze_dfs.svg: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "maze_bfs.svg")); err == nil {
		t.Error("maze_bfs.svg should not be written for --strategy dfs")
	}
}

func TestGenerateCommandStdout(t *testing.T) {
	c, out, _ := newTestCLI(t)

	if err := run(t, c, "generate", "--rows", "5", "--cols", "7", "--seed", "3"); err != nil {
		t.Fatalf("generate: %v", err)
	}
	g, err := pkgio.ReadMaze(strings.NewReader(out.String()))
	if err != nil {
		t.Fatalf("ReadMaze() error: %v", err)
	}
	if rows, cols := g.Dims(); rows != 5 || cols != 7 {
		t.Errorf("Dims() = %dx%d, want 5x7", rows, cols)
	}
}

func TestGenerateCommandDeterministic(t *testing.T) {
	c, out, _ := newTestCLI(t)
	args := []string{"generate", "--rows", "9", "--cols", "9", "--seed", "42", "--no-cache"}

	if err := run(t, c, args...); err != nil {
		t.Fatalf("generate: %v", err)
	}
	first := out.String()
	out.Reset()
	if err := run(t, c, args...); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if out.String() != first {
		t.Errorf("same seed produced different mazes:\n%s\n%s", first, out.String())
	}
}

func TestGenerateCommandJSONFile(t *testing.T) {
	c, _, dir := newTestCLI(t)
	path := filepath.Join(dir, "maze.json")

	if err := run(t, c, "generate", "--rows", "4", "--cols", "6", "--algorithm", "open", "-o", path); err != nil {
		t.Fatalf("generate: %v", err)
	}
	g, err := pkgio.ImportFile(path)
	if err != nil {
		t.Fatalf("ImportFile() error: %v", err)
	}
	if rows, cols := g.Dims(); rows != 4 || cols != 6 {
		t.Errorf("Dims() = %dx%d, want 4x6", rows, cols)
	}
}

func TestGenerateCommandBadFormat(t *testing.T) {
	c, _, _ := newTestCLI(t)
	err := run(t, c, "generate", "-f", "svg")
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("generate -f svg error = %v, want %s", err, errors.ErrCodeInvalidFormat)
	}
}

func TestHistoryListCommand(t *testing.T) {
	c, out, dir := newTestCLI(t)
	path := writeMazeFile(t, dir, "..X")

	if err := run(t, c, "solve", "bfs", "-i", path, "-f", "text"); err != nil {
		t.Fatalf("solve: %v", err)
	}
	out.Reset()
	if err := run(t, c, "history", "list"); err != nil {
		t.Fatalf("history list: %v", err)
	}
	for _, want := range []string{"Strategy", "bfs", "1x3", "solved!"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("history list output missing %q:\n%s", want, out.String())
		}
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"svg", []string{"svg"}},
		{"svg, png ,pdf", []string{"svg", "png", "pdf"}},
		{"text,,json", []string{"text", "json"}},
	}

	for _, tt := range tests {
		got := parseFormats(tt.input)
		if strings.Join(got, ",") != strings.Join(tt.want, ",") {
			t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"maze.txt", "maze"},
		{"out/maze.svg", "out/maze"},
		{"maze.json", "maze"},
		{"maze", "maze"},
		{"maze.v2", "maze.v2"},
	}

	for _, tt := range tests {
		if got := basePath(tt.in); got != tt.want {
			t.Errorf("basePath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestArtifactPath(t *testing.T) {
	tests := []struct {
		strategy string
		format   render.Format
		want     string
	}{
		{"bfs", render.FormatSVG, "maze_bfs.svg"},
		{"dfs", render.FormatText, "maze_dfs.txt"},
		{"bfs", render.FormatANSI, "maze_bfs_ansi.txt"},
		{"dfs", render.FormatDOT, "maze_dfs_graph.svg"},
		{"bfs", render.FormatPNG, "maze_bfs.png"},
	}

	for _, tt := range tests {
		if got := artifactPath("maze", tt.strategy, tt.format); got != tt.want {
			t.Errorf("artifactPath(%s, %s) = %q, want %q", tt.strategy, tt.format, got, tt.want)
		}
	}
}

func TestNewRunnerCachePrefix(t *testing.T) {
	opts := cache.MazeKeyOpts{Rows: 5, Cols: 5, Algorithm: "open", Seed: 1}
	plain := cache.NewDefaultKeyer().MazeKey(opts)

	tests := []struct {
		name, prefix, want string
	}{
		{"unset", "", plain},
		{"set", "staging:", "staging:" + plain},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _, _ := newTestCLI(t)
			c.Config.Cache.Prefix = tt.prefix
			r, err := c.newRunner(context.Background(), true, true)
			if err != nil {
				t.Fatalf("newRunner() error: %v", err)
			}
			defer r.Close()
			if got := r.Keyer.MazeKey(opts); got != tt.want {
				t.Errorf("MazeKey() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWriteArtifact(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "nested", "maze_bfs.txt")
	if err := writeArtifact(path, []byte(".#X\n")); err != nil {
		t.Fatalf("writeArtifact() error: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != ".#X\n" {
		t.Errorf("file content = %q, want %q", got, ".#X\n")
	}

	// A directory in place of the file cannot be opened for writing.
	if err := writeArtifact(dir, []byte("x")); err == nil {
		t.Error("writeArtifact(directory) succeeded, want error")
	}
}

func TestFormatRelativeTime(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		ago  time.Duration
		want string
	}{
		{10 * time.Second, "just now"},
		{5 * time.Minute, "5m ago"},
		{3 * time.Hour, "3h ago"},
		{2 * 24 * time.Hour, "2d ago"},
		{30 * 24 * time.Hour, "Feb 8, 2025"},
	}

	for _, tt := range tests {
		if got := formatRelativeTime(now.Add(-tt.ago), now); got != tt.want {
			t.Errorf("formatRelativeTime(-%v) = %q, want %q", tt.ago, got, tt.want)
		}
	}
}

func TestRunsTable(t *testing.T) {
	now := time.Now()
	runs := []*history.Report{
		{ID: "0123456789abcdef", Strategy: "bfs", Rows: 3, Cols: 4, Found: true, Settled: 7, CreatedAt: now},
		{ID: "fedcba9876543210", Strategy: "dfs", Rows: 3, Cols: 4, Settled: 12, CreatedAt: now.Add(-2 * time.Hour)},
	}

	got := runsTable(runs, now)
	for _, want := range []string{"01234567", "fedcba98", "solved!", "no solution!", "3x4", "2h ago"} {
		if !strings.Contains(got, want) {
			t.Errorf("runsTable() missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "0123456789abcdef") {
		t.Error("runsTable() should shorten ids")
	}
}

func TestFindRun(t *testing.T) {
	ctx := context.Background()
	store, err := history.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore() error: %v", err)
	}
	a := &history.Report{ID: "aaaa1111-0000-4000-8000-000000000001", Strategy: "bfs"}
	b := &history.Report{ID: "aaaa2222-0000-4000-8000-000000000002", Strategy: "dfs"}
	for _, r := range []*history.Report{a, b} {
		if err := store.Save(ctx, r); err != nil {
			t.Fatalf("Save() error: %v", err)
		}
	}

	tests := []struct {
		name    string
		id      string
		want    string
		wantErr bool
	}{
		{"full id", a.ID, a.ID, false},
		{"unique prefix", "aaaa2", b.ID, false},
		{"ambiguous prefix", "aaaa", "", true},
		{"unknown prefix", "bbbb", "", true},
		{"too short", "aa", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := findRun(ctx, store, tt.id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("findRun(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
			if err == nil && got.ID != tt.want {
				t.Errorf("findRun(%q) = %s, want %s", tt.id, got.ID, tt.want)
			}
		})
	}
}
