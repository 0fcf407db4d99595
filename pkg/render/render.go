package render

import (
	"fmt"
	"slices"
	"strings"

	"github.com/matzehuels/mazewalk/pkg/errors"
	"github.com/matzehuels/mazewalk/pkg/grid"
	"github.com/matzehuels/mazewalk/pkg/render/ascii"
	"github.com/matzehuels/mazewalk/pkg/render/nodelink"
	"github.com/matzehuels/mazewalk/pkg/render/sink"
	"github.com/matzehuels/mazewalk/pkg/render/styles"
	"github.com/matzehuels/mazewalk/pkg/search"
)

// Format is an output format name.
type Format string

const (
	FormatText Format = "text"
	FormatANSI Format = "ansi"
	FormatSVG  Format = "svg"
	FormatJSON Format = "json"
	FormatDOT  Format = "dot"
	FormatPNG  Format = "png"
	FormatPDF  Format = "pdf"
)

// Formats lists every supported format.
var Formats = []Format{FormatText, FormatANSI, FormatSVG, FormatJSON, FormatDOT, FormatPNG, FormatPDF}

// ParseFormat validates a format name. "graph" is accepted as an alias for
// "dot" and "txt" for "text".
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	switch f {
	case "graph":
		return FormatDOT, nil
	case "txt":
		return FormatText, nil
	}
	if slices.Contains(Formats, f) {
		return f, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unknown format %q", name)
}

// Ext returns the file extension used when writing f.
func (f Format) Ext() string {
	switch f {
	case FormatText, FormatANSI:
		return "txt"
	case FormatDOT:
		return "svg"
	}
	return string(f)
}

// Binary reports whether the format is unsuitable for printing to a terminal.
func (f Format) Binary() bool { return f == FormatPNG || f == FormatPDF }

// Options control rendering across formats.
type Options struct {
	Style    string  `json:"style,omitempty"`
	CellSize float64 `json:"cell_size,omitempty"`
	Scale    float64 `json:"scale,omitempty"`
	Detailed bool    `json:"detailed,omitempty"`
	Seed     uint64  `json:"seed,omitempty"`
}

// Snapshot is the final picture of one run.
type Snapshot struct {
	Maze     grid.View
	State    *grid.State
	Strategy search.Strategy
	Found    bool
}

// Title is a short human description such as "bfs: solved!".
func (s Snapshot) Title() string {
	if s.Found {
		return fmt.Sprintf("%s: solved!", s.Strategy)
	}
	return fmt.Sprintf("%s: no solution!", s.Strategy)
}

// Render draws snap in format f.
func Render(snap Snapshot, f Format, opts Options) ([]byte, error) {
	style, err := styles.Lookup(opts.Style)
	if err != nil {
		return nil, err
	}
	svgOpts := []sink.SVGOption{sink.WithStyle(style), sink.WithTitle(snap.Title())}
	if opts.CellSize > 0 {
		svgOpts = append(svgOpts, sink.WithCellSize(opts.CellSize))
	}

	switch f {
	case FormatText:
		return []byte(ascii.Text(snap.Maze, snap.State)), nil
	case FormatANSI:
		return []byte(ascii.ANSI(snap.Maze, snap.State, ascii.WithStyle(style))), nil
	case FormatSVG:
		return sink.RenderSVG(snap.Maze, snap.State, svgOpts...), nil
	case FormatJSON:
		return sink.RenderJSON(snap.Maze, snap.State,
			sink.WithJSONStrategy(snap.Strategy.String()),
			sink.WithJSONFound(snap.Found),
			sink.WithJSONSeed(opts.Seed),
			sink.WithJSONIndent())
	case FormatDOT:
		if snap.State == nil {
			return nil, errors.New(errors.ErrCodeInvalidInput, "dot output needs a search state")
		}
		return nodelink.RenderSVG(nodelink.ToDOT(snap.Maze, snap.State, nodelink.Options{Detailed: opts.Detailed, Style: style}))
	case FormatPNG:
		scale := opts.Scale
		if scale <= 0 {
			scale = 2.0
		}
		return sink.RenderPNG(snap.Maze, snap.State, sink.WithPNGSVGOptions(svgOpts...), sink.WithScale(scale))
	case FormatPDF:
		return sink.RenderPDF(snap.Maze, snap.State, svgOpts...)
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown format %q", f)
}

// Recorder is a [search.Observer] that keeps a copy of the final state.
type Recorder struct {
	strategy search.Strategy
	maze     grid.View
	state    *grid.State
	calls    int
}

// NewRecorder returns a recorder for runs of strategy s.
func NewRecorder(s search.Strategy) *Recorder { return &Recorder{strategy: s} }

// Observe implements search.Observer.
func (r *Recorder) Observe(maze grid.View, st *grid.State) error {
	r.maze = maze
	r.state = st.Clone()
	r.calls++
	return nil
}

// Calls returns how many times Observe was invoked.
func (r *Recorder) Calls() int { return r.calls }

// Snapshot returns what was recorded, tagged with the run outcome.
func (r *Recorder) Snapshot(found bool) Snapshot {
	return Snapshot{Maze: r.maze, State: r.state, Strategy: r.strategy, Found: found}
}

var _ search.Observer = (*Recorder)(nil)
