// Package maze generates tile mazes for the search engine.
//
// Three algorithms are available:
//
//   - [Wilson] carves a perfect maze (exactly one path between any two
//     cells) with Wilson's loop-erased random walk. Cells sit on even
//     (row, col) tiles; the odd tiles between them are walls unless a
//     passage was carved. The exit is the bottom-right cell, so the maze is
//     always solvable.
//   - [Scatter] walls each tile independently with probability
//     [Options.Density] and places one exit at a random tile. It is often
//     unsolvable at high densities, which makes it useful for exercising the
//     "no solution" path.
//   - [Open] has no walls and an exit in the bottom-right corner.
//
// Generation is deterministic for a given [Options.Seed]. A zero seed is
// replaced by a time-based one; [Options.WithDefaults] reports the seed that
// was actually used so a run can be reproduced.
package maze
