package maze

import (
	"math/rand/v2"

	"github.com/matzehuels/mazewalk/pkg/grid"
)

// cellSpace maps maze cells (even tiles) to dense indices.
type cellSpace struct {
	rows, cols int // in cells, not tiles
}

func (s cellSpace) size() int { return s.rows * s.cols }

func (s cellSpace) tile(i int) grid.Coord {
	return grid.Coord{Row: 2 * (i / s.cols), Col: 2 * (i % s.cols)}
}

// neighbours appends the in-bounds neighbour cells of i to buf.
func (s cellSpace) neighbours(i int, buf []int) []int {
	buf = buf[:0]
	r, c := i/s.cols, i%s.cols
	if r > 0 {
		buf = append(buf, i-s.cols)
	}
	if r < s.rows-1 {
		buf = append(buf, i+s.cols)
	}
	if c < s.cols-1 {
		buf = append(buf, i+1)
	}
	if c > 0 {
		buf = append(buf, i-1)
	}
	return buf
}

// carveWilson turns g into a perfect maze and puts the exit on the
// bottom-right cell.
//
// Each walk starts from a random cell outside the tree and wanders until it
// hits the tree. Only the last exit taken from every cell is remembered,
// which erases loops; the walk is then replayed from its start and carved.
func carveWilson(g *grid.Grid, rng *rand.Rand) {
	rows, cols := g.Dims()
	space := cellSpace{rows: (rows + 1) / 2, cols: (cols + 1) / 2}
	n := space.size()

	g.Fill(grid.Wall)
	inTree := make([]bool, n)
	next := make([]int, n)
	buf := make([]int, 0, 4)

	root := rng.IntN(n)
	inTree[root] = true
	g.Set(space.tile(root), grid.Empty)

	for remaining := n - 1; remaining > 0; {
		start := rng.IntN(n)
		for inTree[start] {
			start = rng.IntN(n)
		}

		for c := start; !inTree[c]; c = next[c] {
			buf = space.neighbours(c, buf)
			next[c] = buf[rng.IntN(len(buf))]
		}

		for c := start; !inTree[c]; c = next[c] {
			inTree[c] = true
			remaining--
			carve(g, space.tile(c), space.tile(next[c]))
		}
	}

	g.Set(space.tile(n-1), grid.Exit)
}

// carve opens the two cells a and b and the wall tile between them.
func carve(g *grid.Grid, a, b grid.Coord) {
	g.Set(a, grid.Empty)
	g.Set(grid.Coord{Row: (a.Row + b.Row) / 2, Col: (a.Col + b.Col) / 2}, grid.Empty)
	g.Set(b, grid.Empty)
}
