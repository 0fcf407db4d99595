package grid

import "fmt"

// Tile is the classification of a maze cell. It is fixed for the duration of
// a search run.
type Tile uint8

const (
	// Empty is a passable cell.
	Empty Tile = iota
	// Wall is impassable.
	Wall
	// Exit is a passable goal cell. A maze may contain any number of exits.
	Exit
)

var tileNames = [...]string{"empty", "wall", "exit"}

func (t Tile) String() string {
	if int(t) < len(tileNames) {
		return tileNames[t]
	}
	return fmt.Sprintf("Tile(%d)", uint8(t))
}

// Mark is the visitation state of a coordinate during one run.
type Mark uint8

const (
	// Unvisited is the initial mark of every coordinate.
	Unvisited Mark = iota
	// Frontier marks a discovered coordinate that has not been fully processed.
	Frontier
	// Settled marks a coordinate whose neighbours have all been examined.
	Settled
)

var markNames = [...]string{"unvisited", "frontier", "settled"}

func (m Mark) String() string {
	if int(m) < len(markNames) {
		return markNames[m]
	}
	return fmt.Sprintf("Mark(%d)", uint8(m))
}
