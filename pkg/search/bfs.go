package search

import "github.com/matzehuels/mazewalk/pkg/grid"

// breadthFirst processes cells in non-decreasing distance from start. The
// exit that ends the run is left Frontier. q must be empty and FIFO.
func breadthFirst(maze grid.View, st *grid.State, start grid.Coord, q Frontier[grid.Coord]) (grid.Coord, bool) {
	st.MarkFrontier(start)
	q.Push(start)

	for {
		c, ok := q.Pop()
		if !ok {
			return grid.Coord{}, false
		}
		if maze.IsExit(c) {
			return c, true
		}
		for _, d := range grid.Directions {
			n := c.Step(d)
			if eligible(maze, st, n) {
				st.MarkFrontier(n)
				q.Push(n)
			}
		}
		st.MarkSettled(c)
	}
}
