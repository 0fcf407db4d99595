// Package search decides whether a maze exit is reachable from the origin
// using breadth-first or depth-first traversal of the implicit 4-neighbour
// grid graph.
//
// # Overview
//
// An [Engine] is built from a [Strategy], a read-only [grid.View] and an
// optional [Observer] (usually a renderer):
//
//	eng, err := search.New(search.BFS, maze, renderer)
//	if err != nil {
//	    return err
//	}
//	res, err := eng.Run()
//	fmt.Println(res.Found)
//
// Every call to [Engine.Run] is an independent run: it allocates a fresh
// [grid.State], explores from [grid.Origin] until it pops an exit or runs out
// of work, calls the observer exactly once with the final state, and returns
// a [Result]. The maze is never modified, so the same maze can be searched by
// several engines one after another.
//
// # Discovery
//
// Both strategies share one discovery filter: a neighbour is expanded only
// if it is inside the maze, is not a wall, and is still Unvisited. The
// neighbour order is fixed to north, south, east, west ([grid.Directions]).
// Because a coordinate is marked Frontier at the moment it is first
// discovered and [grid.State.MarkFrontier] refuses anything else, no
// coordinate is discovered twice and every run terminates.
//
// # Strategies
//
//   - [BFS] keeps discovered coordinates in a FIFO [Queue] and therefore
//     processes them in non-decreasing distance from the origin.
//   - [DFS] exhausts one branch before backtracking. It keeps an explicit
//     [Stack] of resumption frames (coordinate plus next direction to try)
//     instead of recursing, so deep corridors cannot overflow the goroutine
//     stack.
//
// When an exit is reached the exit cell keeps its Frontier mark; it is never
// Settled. Under DFS every cell on the stack at that moment is Settled while
// unwinding.
//
// # Result
//
// Reachability is the only answer: an unreachable exit is Found == false,
// never an error. The only error Run can return is one produced by the
// observer.
package search
