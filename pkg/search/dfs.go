package search

import "github.com/matzehuels/mazewalk/pkg/grid"

// frame is one pending visit: the cell and the index into grid.Directions
// of the next neighbour to try.
type frame struct {
	at   grid.Coord
	next int
}

// depthFirst explores one branch to exhaustion before backtracking.
//
// A cell is settled once all four directions have been tried, or, on
// success, while the stack unwinds. The exit itself is never pushed and so
// stays Frontier. stack must be empty and LIFO.
func depthFirst(maze grid.View, st *grid.State, start grid.Coord, stack Frontier[frame]) (grid.Coord, bool) {
	st.MarkFrontier(start)
	if maze.IsExit(start) {
		return start, true
	}

	stack.Push(frame{at: start})

	var (
		exit  grid.Coord
		found bool
	)
	for !found {
		f, ok := stack.Pop()
		if !ok {
			return grid.Coord{}, false
		}
		if f.next == len(grid.Directions) {
			st.MarkSettled(f.at)
			continue
		}
		n := f.at.Step(grid.Directions[f.next])
		f.next++
		stack.Push(f)
		if !eligible(maze, st, n) {
			continue
		}
		st.MarkFrontier(n)
		if maze.IsExit(n) {
			exit, found = n, true
			continue
		}
		stack.Push(frame{at: n})
	}

	for {
		f, ok := stack.Pop()
		if !ok {
			break
		}
		st.MarkSettled(f.at)
	}
	return exit, true
}
