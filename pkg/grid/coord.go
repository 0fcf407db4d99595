package grid

import "fmt"

// Coord is a (row, column) position. Row grows downward, Col grows rightward.
// The zero value is the origin (0,0), which is where every search starts.
type Coord struct {
	Row int `json:"row" bson:"row"`
	Col int `json:"col" bson:"col"`
}

// Origin is the fixed start coordinate of every run.
var Origin = Coord{}

// North returns the coordinate one row up. It may be out of bounds.
func (c Coord) North() Coord { return Coord{Row: c.Row - 1, Col: c.Col} }

// South returns the coordinate one row down. It may be out of bounds.
func (c Coord) South() Coord { return Coord{Row: c.Row + 1, Col: c.Col} }

// East returns the coordinate one column right. It may be out of bounds.
func (c Coord) East() Coord { return Coord{Row: c.Row, Col: c.Col + 1} }

// West returns the coordinate one column left. It may be out of bounds.
func (c Coord) West() Coord { return Coord{Row: c.Row, Col: c.Col - 1} }

// Step returns the neighbour of c in direction d.
func (c Coord) Step(d Direction) Coord {
	switch d {
	case North:
		return c.North()
	case South:
		return c.South()
	case East:
		return c.East()
	case West:
		return c.West()
	}
	return c
}

// Manhattan returns the L1 distance between c and o.
func (c Coord) Manhattan(o Coord) int {
	return abs(c.Row-o.Row) + abs(c.Col-o.Col)
}

func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Direction names one of the four von Neumann neighbours.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
)

// Directions lists the neighbour directions in expansion order.
// Both search strategies examine neighbours in exactly this order.
var Directions = [...]Direction{North, South, East, West}

var directionNames = [...]string{"north", "south", "east", "west"}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}
