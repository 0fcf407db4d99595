// Package grid provides the data model for rectangular tile mazes and the
// per-run visitation table used by the search engine.
//
// # Overview
//
// A maze is a rectangle of tiles addressed by [Coord] values (row, column),
// with (0,0) in the top-left corner. Every tile is one of three [Tile]
// classifications: [Empty], [Wall] or [Exit]. Movement happens on the
// implicit 4-neighbour graph: from any coordinate the neighbours are
// [Coord.North], [Coord.South], [Coord.East] and [Coord.West].
//
// Mazes are consumed through the read-only [View] interface, which [Grid]
// implements. Search strategies never mutate tiles, so a single Grid can be
// shared by any number of runs.
//
// # Visitation State
//
// [State] tracks one [Mark] per coordinate for the lifetime of a single run:
//
//	Unvisited → Frontier → Settled
//
// Marks only move forward. [State.MarkFrontier] refuses coordinates that are
// not Unvisited, which is what guarantees that a coordinate is discovered at
// most once per run. [State.MarkSettled] is idempotent.
//
// # Bounds
//
// Coord performs no validation: neighbour offsets of an edge cell are
// negative or past the last row/column. Callers check [View.InBounds] (or use
// [Lookup]) before calling [View.TileAt] or any State method; out-of-range
// access on a Grid or State panics.
//
// # Concurrency
//
// Grid is safe for concurrent readers once construction is finished.
// State is owned by a single run and is not safe for concurrent use.
package grid
