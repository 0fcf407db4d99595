package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/mazewalk/pkg/grid"
	"github.com/matzehuels/mazewalk/pkg/render/sink"
	"github.com/matzehuels/mazewalk/pkg/render/styles"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds the mark of each cell to its label.
	Detailed bool
	// Style supplies node colours. Nil means [styles.Simple].
	Style styles.Style
}

// ToDOT converts the visited cells of a run to Graphviz DOT.
// The resulting DOT string can be rendered using [RenderSVG], [RenderPDF], or [RenderPNG].
//
// Exit cells are drawn as double octagons.
func ToDOT(maze grid.View, st *grid.State, opts Options) string {
	style := opts.Style
	if style == nil {
		style = styles.Simple{}
	}
	pal := style.Palette()

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.1,0.05\"];\n")
	buf.WriteString("  ranksep=0.3;\n")
	buf.WriteString("  nodesep=0.2;\n")

	rows, cols := maze.Dims()
	visited := func(c grid.Coord) bool {
		return maze.InBounds(c) && st.MarkOf(c) != grid.Unvisited
	}

	for r := range rows {
		var ids []string
		for c := range cols {
			at := grid.Coord{Row: r, Col: c}
			if !visited(at) {
				continue
			}
			ids = append(ids, nodeID(at))
			m := st.MarkOf(at)
			t := maze.TileAt(at)
			attrs := []string{
				fmt.Sprintf("label=%q", fmtLabel(at, m, opts.Detailed)),
				fmt.Sprintf("fillcolor=%q", pal.Fill(t, m)),
			}
			if t == grid.Exit {
				attrs = append(attrs, "shape=doubleoctagon")
			}
			fmt.Fprintf(&buf, "  %q [%s];\n", nodeID(at), strings.Join(attrs, ", "))
		}
		if len(ids) > 1 {
			fmt.Fprintf(&buf, "  { rank=same; %s; }\n", quoteAll(ids))
		}
	}

	buf.WriteString("\n")
	for r := range rows {
		for c := range cols {
			at := grid.Coord{Row: r, Col: c}
			if !visited(at) {
				continue
			}
			for _, n := range []grid.Coord{at.East(), at.South()} {
				if visited(n) && !maze.IsWall(n) {
					fmt.Fprintf(&buf, "  %q -- %q;\n", nodeID(at), nodeID(n))
				}
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(c grid.Coord) string { return fmt.Sprintf("r%dc%d", c.Row, c.Col) }

func quoteAll(ids []string) string {
	q := make([]string, len(ids))
	for i, id := range ids {
		q[i] = strconv.Quote(id)
	}
	return strings.Join(q, "; ")
}

func fmtLabel(c grid.Coord, m grid.Mark, detailed bool) string {
	if !detailed {
		return c.String()
	}
	return c.String() + "\n" + m.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [sink.ToPDF] or [sink.ToPNG].
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-sized root element with a
// unitless one so browsers scale the diagram like the other SVG outputs.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return sink.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return sink.ToPNG(svg, scale)
}
