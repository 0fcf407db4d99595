// Package nodelink renders the explored part of a maze as a node-link
// diagram.
//
// # Overview
//
// Every visited cell becomes a node and every pair of visited 4-neighbours
// becomes an undirected edge. Nodes of one maze row share a Graphviz rank,
// so the diagram keeps the maze's vertical orientation while showing which
// cells the search actually touched.
//
// # Usage
//
//	dot := nodelink.ToDOT(maze, st, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//
// For PDF or PNG output:
//
//	pdf, err := nodelink.RenderPDF(dot)
//	png, err := nodelink.RenderPNG(dot, 2.0)  // 2x scale
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
