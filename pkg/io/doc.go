// Package io reads and writes mazes in text and JSON form.
//
// # Text Format
//
// One line per maze row, all lines the same width:
//
//	..#.....
//	#.#.###.
//	......#X
//
// '.' or space is an open tile, '#' a wall and 'X' (or 'E') an exit. Empty
// lines at the end of the input and trailing carriage returns are ignored,
// so files saved on Windows load unchanged. A line of spaces is a row of
// open tiles, not a blank line. The start is always the top-left tile.
//
// # JSON Format
//
//	{
//	  "rows": 3,
//	  "cols": 8,
//	  "tiles": ["..#.....", "#.#.###.", "......#X"]
//	}
//
// tiles uses the text glyphs. rows and cols are optional on input and are
// checked against tiles when present.
//
// # Usage
//
//	g, err := io.ImportMaze("maze.txt")
//	err = io.ExportJSON(g, "maze.json")
//
// [ImportFile] and [ExportFile] pick the format from the file extension
// (".json" means JSON, anything else text).
package io
