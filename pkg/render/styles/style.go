// Package styles defines the colour palettes and SVG cell drawing used by
// the maze renderers.
package styles

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/matzehuels/mazewalk/pkg/errors"
	"github.com/matzehuels/mazewalk/pkg/grid"
)

// Style defines the visual appearance of a rendered maze.
type Style interface {
	// Name is the identifier accepted by [Lookup].
	Name() string
	// Palette returns the colours used for each cell class.
	Palette() Palette
	// RenderDefs writes SVG <defs> content (patterns, filters).
	RenderDefs(buf *bytes.Buffer)
	// RenderCell writes the SVG for a single cell.
	RenderCell(buf *bytes.Buffer, c Cell)
}

// Cell contains everything needed to draw one maze tile.
type Cell struct {
	At         grid.Coord
	Tile       grid.Tile
	Mark       grid.Mark
	X, Y, W, H float64
}

// Palette holds CSS colours, also used as lipgloss colours for terminals.
type Palette struct {
	Background string
	Wall       string
	Exit       string
	Settled    string
	Frontier   string
	Unvisited  string
}

// Fill picks the colour for a cell. Tile classes win over marks, so a
// reached exit is still drawn as an exit.
func (p Palette) Fill(t grid.Tile, m grid.Mark) string {
	switch {
	case t == grid.Wall:
		return p.Wall
	case t == grid.Exit:
		return p.Exit
	case m == grid.Settled:
		return p.Settled
	case m == grid.Frontier:
		return p.Frontier
	}
	return p.Unvisited
}

// Default is the style used when none is requested.
const Default = "simple"

// Names lists the registered styles.
var Names = []string{"simple", "blueprint"}

// Lookup returns the style registered under name. An empty name selects
// [Default].
func Lookup(name string) (Style, error) {
	switch strings.ToLower(name) {
	case "", Default:
		return Simple{}, nil
	case "blueprint":
		return Blueprint{}, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidStyle,
		"unknown style %q (want %s)", name, strings.Join(Names, " or "))
}

// Simple draws flat squares on a light background.
type Simple struct{}

func (Simple) Name() string { return "simple" }

func (Simple) Palette() Palette {
	return Palette{
		Background: "#ffffff",
		Wall:       "#2d2d2d",
		Exit:       "#d9534f",
		Settled:    "#8ecae6",
		Frontier:   "#ffb703",
		Unvisited:  "#ffffff",
	}
}

func (Simple) RenderDefs(*bytes.Buffer) {}

func (s Simple) RenderCell(buf *bytes.Buffer, c Cell) {
	fmt.Fprintf(buf, `  <rect class="cell %s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
		class(c), c.X, c.Y, c.W, c.H, s.Palette().Fill(c.Tile, c.Mark))
}

// Blueprint draws rounded cells with a thin outline on a dark background.
type Blueprint struct{}

func (Blueprint) Name() string { return "blueprint" }

func (Blueprint) Palette() Palette {
	return Palette{
		Background: "#0b3d91",
		Wall:       "#e8f1ff",
		Exit:       "#ff6b6b",
		Settled:    "#4ea8de",
		Frontier:   "#ffd166",
		Unvisited:  "#0b3d91",
	}
}

func (Blueprint) RenderDefs(buf *bytes.Buffer) {
	buf.WriteString(`  <defs><pattern id="bp-grid" width="8" height="8" patternUnits="userSpaceOnUse">` +
		`<path d="M 8 0 L 0 0 0 8" fill="none" stroke="#1c54b2" stroke-width="0.5"/></pattern></defs>` + "\n")
	buf.WriteString(`  <rect width="100%" height="100%" fill="url(#bp-grid)"/>` + "\n")
}

func (b Blueprint) RenderCell(buf *bytes.Buffer, c Cell) {
	if c.Tile == grid.Empty && c.Mark == grid.Unvisited {
		return
	}
	inset := c.W * 0.08
	fmt.Fprintf(buf, `  <rect class="cell %s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="%.1f" fill="%s" stroke="#e8f1ff" stroke-width="0.5"/>`+"\n",
		class(c), c.X+inset, c.Y+inset, c.W-2*inset, c.H-2*inset, inset, b.Palette().Fill(c.Tile, c.Mark))
}

func class(c Cell) string {
	if c.Tile != grid.Empty {
		return c.Tile.String()
	}
	return c.Mark.String()
}
