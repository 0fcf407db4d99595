// Package pkg provides the core libraries for Mazewalk maze exploration.
//
// # Overview
//
// Mazewalk searches rectangular grid mazes from the top-left corner for an
// exit tile, with breadth-first or depth-first traversal, and records which
// cells each search reached. The pkg directory is organized into three areas:
//
//  1. Domain logic: [grid], [maze], [search]
//  2. Presentation: [render] and its subpackages, [io]
//  3. Infrastructure: [cache], [history], [config], [pipeline], [observability]
//
// # Architecture
//
// The typical data flow:
//
//	maze file or generator options
//	         ↓
//	    [maze] / [io] (build a *grid.Grid)
//	         ↓
//	    [search] (BFS or DFS over the grid, producing a grid.State)
//	         ↓
//	    [render] (text, ANSI, SVG, JSON, Graphviz, PNG, PDF)
//
// [pipeline] runs these stages for the CLI and the HTTP server, with mazes
// and artifacts cached through [cache] and run reports stored by [history].
//
// # Quick Start
//
//	g, _ := maze.Generate(maze.Options{Rows: 21, Cols: 41, Seed: 7}.WithDefaults())
//
//	rec := render.NewRecorder(search.BFS)
//	res, _ := search.Solve(search.BFS, g, rec)
//
//	out, _ := render.Render(rec.Snapshot(res.Found), render.FormatText, render.Options{})
//	fmt.Print(string(out))
//
// # Main Packages
//
// [grid] - Tiles, coordinates and the per-run visitation table. A cell's mark
// only moves forward: unvisited, frontier, settled.
//
// [maze] - Seeded maze generators (wilson, scatter, open).
//
// [search] - The search engine. BFS uses a FIFO frontier, DFS a LIFO one;
// both stop at the first exit they settle.
//
// [render] - Output formats. [render/ascii] draws terminal text,
// [render/sink] writes SVG, JSON, PNG and PDF, and [render/nodelink] draws the
// explored cells as a Graphviz graph.
//
// [cache] - Content-addressed cache for mazes and rendered artifacts, backed
// by files or Redis.
//
// [history] - Run reports, stored as JSON files or in MongoDB.
//
// [config] - TOML configuration with .env and environment overrides.
//
// [grid]: https://pkg.go.dev/github.com/matzehuels/mazewalk/pkg/grid
// [maze]: https://pkg.go.dev/github.com/matzehuels/mazewalk/pkg/maze
// [search]: https://pkg.go.dev/github.com/matzehuels/mazewalk/pkg/search
// [render]: https://pkg.go.dev/github.com/matzehuels/mazewalk/pkg/render
// [render/ascii]: https://pkg.go.dev/github.com/matzehuels/mazewalk/pkg/render/ascii
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/mazewalk/pkg/render/sink
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/mazewalk/pkg/render/nodelink
// [io]: https://pkg.go.dev/github.com/matzehuels/mazewalk/pkg/io
// [cache]: https://pkg.go.dev/github.com/matzehuels/mazewalk/pkg/cache
// [history]: https://pkg.go.dev/github.com/matzehuels/mazewalk/pkg/history
// [config]: https://pkg.go.dev/github.com/matzehuels/mazewalk/pkg/config
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/mazewalk/pkg/pipeline
// [observability]: https://pkg.go.dev/github.com/matzehuels/mazewalk/pkg/observability
package pkg
