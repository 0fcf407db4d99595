package search

import (
	"fmt"
	"strings"
	"time"

	"github.com/matzehuels/mazewalk/pkg/errors"
	"github.com/matzehuels/mazewalk/pkg/grid"
)

// Strategy selects the traversal discipline of an [Engine].
type Strategy string

const (
	BFS Strategy = "bfs"
	DFS Strategy = "dfs"
)

// Strategies lists every supported strategy in the order "both" runs them.
var Strategies = []Strategy{BFS, DFS}

// ParseStrategy converts a user supplied name ("bfs", "DFS", ...) into a
// Strategy.
func ParseStrategy(name string) (Strategy, error) {
	s := Strategy(strings.ToLower(strings.TrimSpace(name)))
	if !s.Valid() {
		return "", errors.New(errors.ErrCodeInvalidStrategy,
			"unknown strategy %q (want bfs or dfs)", name)
	}
	return s, nil
}

// Valid reports whether s is a known strategy.
func (s Strategy) Valid() bool { return s == BFS || s == DFS }

func (s Strategy) String() string { return string(s) }

// Observer receives the maze and the final visitation state once a run has
// concluded. It is called exactly once per [Engine.Run].
type Observer interface {
	Observe(maze grid.View, state *grid.State) error
}

// ObserverFunc adapts a plain function to [Observer].
type ObserverFunc func(maze grid.View, state *grid.State) error

// Observe calls f.
func (f ObserverFunc) Observe(maze grid.View, state *grid.State) error { return f(maze, state) }

// Option configures an [Engine].
type Option func(*Engine)

// WithTransitions streams every mark change of every run to fn.
func WithTransitions(fn func(grid.Transition)) Option {
	return func(e *Engine) { e.transitions = fn }
}

// WithClock overrides the time source used to measure run duration.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// Result is the outcome of one run.
type Result struct {
	Strategy Strategy
	// Found reports whether an exit was reached from the origin.
	Found bool
	// Exit is the exit that ended the run. Only meaningful when Found.
	Exit grid.Coord
	// State is the final visitation table, as handed to the observer.
	State    *grid.State
	Duration time.Duration
}

// Settled returns the number of settled cells in the final state.
func (r Result) Settled() int { return r.State.Count(grid.Settled) }

// Frontier returns the number of cells left discovered but unsettled.
func (r Result) Frontier() int { return r.State.Count(grid.Frontier) }

// Engine runs one strategy over one maze.
type Engine struct {
	strategy    Strategy
	maze        grid.View
	observer    Observer
	transitions func(grid.Transition)
	now         func() time.Time
}

// New builds an engine. observer may be nil.
func New(strategy Strategy, maze grid.View, observer Observer, opts ...Option) (*Engine, error) {
	if !strategy.Valid() {
		return nil, errors.New(errors.ErrCodeInvalidStrategy, "unknown strategy %q", strategy)
	}
	if maze == nil {
		return nil, errors.New(errors.ErrCodeInvalidMaze, "maze is nil")
	}
	if rows, cols := maze.Dims(); rows <= 0 || cols <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidDimensions, "maze is %dx%d", rows, cols)
	}
	e := &Engine{
		strategy: strategy,
		maze:     maze,
		observer: observer,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Strategy returns the engine's strategy.
func (e *Engine) Strategy() Strategy { return e.strategy }

// Run explores the maze from [grid.Origin] and reports whether an exit is
// reachable. Each call starts from a fresh state. The returned error is
// non-nil only when the observer fails; the Result is populated either way.
func (e *Engine) Run() (Result, error) {
	rows, cols := e.maze.Dims()
	var stateOpts []grid.StateOption
	if e.transitions != nil {
		stateOpts = append(stateOpts, grid.WithTransitions(e.transitions))
	}
	st := grid.NewState(rows, cols, stateOpts...)

	start := e.now()
	var (
		exit  grid.Coord
		found bool
	)
	switch e.strategy {
	case BFS:
		exit, found = breadthFirst(e.maze, st, grid.Origin, &Queue[grid.Coord]{})
	case DFS:
		exit, found = depthFirst(e.maze, st, grid.Origin, &Stack[frame]{})
	}
	res := Result{
		Strategy: e.strategy,
		Found:    found,
		Exit:     exit,
		State:    st,
		Duration: e.now().Sub(start),
	}

	if e.observer != nil {
		if err := e.observer.Observe(e.maze, st); err != nil {
			return res, fmt.Errorf("observe %s run: %w", e.strategy, err)
		}
	}
	return res, nil
}

// Solve is shorthand for New followed by Run.
func Solve(strategy Strategy, maze grid.View, observer Observer) (Result, error) {
	e, err := New(strategy, maze, observer)
	if err != nil {
		return Result{}, err
	}
	return e.Run()
}

// eligible reports whether c may be discovered: inside the maze, not a wall
// and not yet visited.
func eligible(maze grid.View, st *grid.State, c grid.Coord) bool {
	t, ok := grid.Lookup(maze, c)
	return ok && t != grid.Wall && st.MarkOf(c) == grid.Unvisited
}
