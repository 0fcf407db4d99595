package grid

import "fmt"

// Transition records a single mark change. Seq numbers transitions of one
// State from 1 in the order they happened.
type Transition struct {
	Coord Coord
	From  Mark
	To    Mark
	Seq   int
}

// StateOption configures a [State] at construction time.
type StateOption func(*State)

// WithTransitions installs fn to be called after every mark change.
// It is the only way to observe a State while a run is in progress.
func WithTransitions(fn func(Transition)) StateOption {
	return func(s *State) { s.onChange = fn }
}

// State is the visitation table of one search run: one [Mark] per
// coordinate of a rows×cols maze, all [Unvisited] on creation.
//
// The zero value is not usable; create one with [NewState].
type State struct {
	rows, cols int
	marks      []Mark
	seq        int
	onChange   func(Transition)
}

// NewState allocates a table for a rows×cols maze with every mark Unvisited.
// Non-positive dimensions yield an empty table.
func NewState(rows, cols int, opts ...StateOption) *State {
	rows, cols = max(rows, 0), max(cols, 0)
	s := &State{
		rows:  rows,
		cols:  cols,
		marks: make([]Mark, rows*cols),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dims returns the table dimensions.
func (s *State) Dims() (rows, cols int) { return s.rows, s.cols }

// MarkOf returns the current mark of c.
func (s *State) MarkOf(c Coord) Mark { return s.marks[s.index(c)] }

// MarkFrontier moves c from Unvisited to Frontier and reports whether it did.
// Any other prior mark leaves c untouched and returns false.
func (s *State) MarkFrontier(c Coord) bool {
	i := s.index(c)
	if s.marks[i] != Unvisited {
		return false
	}
	s.set(i, c, Frontier)
	return true
}

// MarkSettled sets c to Settled. It is a no-op when c is already Settled.
func (s *State) MarkSettled(c Coord) {
	i := s.index(c)
	if s.marks[i] == Settled {
		return
	}
	s.set(i, c, Settled)
}

// Count returns how many coordinates currently carry mark m.
func (s *State) Count(m Mark) int {
	n := 0
	for _, v := range s.marks {
		if v == m {
			n++
		}
	}
	return n
}

// Each calls fn for every coordinate in row-major order.
func (s *State) Each(fn func(Coord, Mark)) {
	for i, m := range s.marks {
		fn(Coord{Row: i / s.cols, Col: i % s.cols}, m)
	}
}

// Marks returns a row-major copy of the table.
func (s *State) Marks() []Mark {
	out := make([]Mark, len(s.marks))
	copy(out, s.marks)
	return out
}

// Transitions returns how many mark changes have happened so far.
func (s *State) Transitions() int { return s.seq }

// Clone returns an independent copy of the marks. The transition observer is
// not carried over.
func (s *State) Clone() *State {
	return &State{
		rows:  s.rows,
		cols:  s.cols,
		marks: s.Marks(),
		seq:   s.seq,
	}
}

func (s *State) set(i int, c Coord, m Mark) {
	from := s.marks[i]
	s.marks[i] = m
	s.seq++
	if s.onChange != nil {
		s.onChange(Transition{Coord: c, From: from, To: m, Seq: s.seq})
	}
}

func (s *State) index(c Coord) int {
	if c.Row < 0 || c.Row >= s.rows || c.Col < 0 || c.Col >= s.cols {
		panic(fmt.Sprintf("grid: coordinate %v outside %dx%d state", c, s.rows, s.cols))
	}
	return c.Row*s.cols + c.Col
}
