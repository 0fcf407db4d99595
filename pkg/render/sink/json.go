package sink

import (
	"encoding/json"
	"strings"

	"github.com/matzehuels/mazewalk/pkg/grid"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	strategy string
	found    *bool
	seed     uint64
	indent   bool
}

// WithJSONStrategy records which strategy produced the state.
func WithJSONStrategy(s string) JSONOption { return func(r *jsonRenderer) { r.strategy = s } }

// WithJSONFound records the run outcome.
func WithJSONFound(found bool) JSONOption { return func(r *jsonRenderer) { r.found = &found } }

// WithJSONSeed records the generator seed so the maze can be regenerated.
func WithJSONSeed(seed uint64) JSONOption { return func(r *jsonRenderer) { r.seed = seed } }

// WithJSONIndent pretty-prints the output.
func WithJSONIndent() JSONOption { return func(r *jsonRenderer) { r.indent = true } }

// Document is the JSON form of a searched maze. Tiles uses the maze text
// glyphs; Marks uses '0' unvisited, '1' frontier, '2' settled.
type Document struct {
	Rows     int      `json:"rows"`
	Cols     int      `json:"cols"`
	Strategy string   `json:"strategy,omitempty"`
	Found    *bool    `json:"found,omitempty"`
	Seed     uint64   `json:"seed,omitempty"`
	Tiles    []string `json:"tiles"`
	Marks    []string `json:"marks,omitempty"`
	Settled  int      `json:"settled"`
	Frontier int      `json:"frontier"`
}

// NewDocument builds the JSON document without encoding it. st may be nil.
func NewDocument(maze grid.View, st *grid.State, opts ...JSONOption) Document {
	var r jsonRenderer
	for _, opt := range opts {
		opt(&r)
	}
	rows, cols := maze.Dims()
	doc := Document{
		Rows:     rows,
		Cols:     cols,
		Strategy: r.strategy,
		Found:    r.found,
		Seed:     r.seed,
		Tiles:    make([]string, rows),
	}
	if st != nil {
		doc.Marks = make([]string, rows)
		doc.Settled = st.Count(grid.Settled)
		doc.Frontier = st.Count(grid.Frontier)
	}

	var tb, mb strings.Builder
	for row := range rows {
		tb.Reset()
		mb.Reset()
		for col := range cols {
			at := grid.Coord{Row: row, Col: col}
			tb.WriteRune(grid.Glyph(maze.TileAt(at)))
			if st != nil {
				mb.WriteByte('0' + byte(st.MarkOf(at)))
			}
		}
		doc.Tiles[row] = tb.String()
		if st != nil {
			doc.Marks[row] = mb.String()
		}
	}
	return doc
}

// RenderJSON encodes [NewDocument].
func RenderJSON(maze grid.View, st *grid.State, opts ...JSONOption) ([]byte, error) {
	var r jsonRenderer
	for _, opt := range opts {
		opt(&r)
	}
	doc := NewDocument(maze, st, opts...)
	if r.indent {
		return json.MarshalIndent(doc, "", "  ")
	}
	return json.Marshal(doc)
}
