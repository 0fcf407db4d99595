// Package history records the outcome of search runs.
//
// Every run produces a [Report]: which strategy searched which maze, whether
// an exit was found and how much of the maze was explored. Reports are kept
// in a [Store], with implementations for different deployments:
//   - file: JSON files under ~/.local/share/mazewalk/runs, for the CLI
//   - mongo: a MongoDB collection, for the HTTP server
//   - null: discards everything, for --no-history
//
// # Usage
//
//	store, err := history.NewFileStore("")
//	if err != nil {
//	    return err
//	}
//	rep := history.NewReport(res, mazeHash)
//	err = store.Save(ctx, rep)
//
//	recent, err := store.List(ctx, history.ListOptions{Limit: 10})
package history

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/mazewalk/pkg/search"
)

// ErrNotFound is returned when a report does not exist.
var ErrNotFound = errors.New("run not found")

// Report describes one completed search run.
type Report struct {
	ID        string        `json:"id" bson:"_id"`
	Strategy  string        `json:"strategy" bson:"strategy"`
	Rows      int           `json:"rows" bson:"rows"`
	Cols      int           `json:"cols" bson:"cols"`
	Algorithm string        `json:"algorithm,omitempty" bson:"algorithm,omitempty"`
	Seed      uint64        `json:"seed,omitempty" bson:"seed,omitempty"`
	Source    string        `json:"source,omitempty" bson:"source,omitempty"`
	Found     bool          `json:"found" bson:"found"`
	Settled   int           `json:"settled" bson:"settled"`
	Frontier  int           `json:"frontier" bson:"frontier"`
	Duration  time.Duration `json:"duration_ns" bson:"duration_ns"`
	MazeHash  string        `json:"maze_hash" bson:"maze_hash"`
	CreatedAt time.Time     `json:"created_at" bson:"created_at"`
}

// NewReport summarizes a search result. Maze provenance (Algorithm, Seed,
// Source) is left for the caller to fill in.
func NewReport(res search.Result, mazeHash string) *Report {
	r := &Report{
		Strategy: res.Strategy.String(),
		Found:    res.Found,
		Duration: res.Duration,
		MazeHash: mazeHash,
	}
	if res.State != nil {
		r.Rows, r.Cols = res.State.Dims()
		r.Settled = res.Settled()
		r.Frontier = res.Frontier()
	}
	return r
}

// NewID returns a fresh report identifier.
func NewID() string { return uuid.NewString() }

// Outcome is the user-facing verdict for the run.
func (r *Report) Outcome() string {
	if r.Found {
		return "solved!"
	}
	return "no solution!"
}

// ListOptions filters [Store.List].
type ListOptions struct {
	// Limit caps the number of reports returned. Zero means DefaultListLimit.
	Limit int
	// Strategy keeps only reports of one strategy when non-empty.
	Strategy string
}

// DefaultListLimit is used when ListOptions.Limit is zero.
const DefaultListLimit = 20

func (o ListOptions) limit() int {
	if o.Limit <= 0 {
		return DefaultListLimit
	}
	return o.Limit
}

// Store persists reports.
type Store interface {
	// Save inserts or replaces a report. An empty ID is filled in.
	Save(ctx context.Context, r *Report) error
	// Get returns the report with the given ID or an error wrapping ErrNotFound.
	Get(ctx context.Context, id string) (*Report, error)
	// List returns reports newest first.
	List(ctx context.Context, opts ListOptions) ([]*Report, error)
	// Close releases resources held by the store.
	Close() error
}

// prepare fills in the ID and timestamp of a report about to be saved.
func prepare(r *Report) {
	if r.ID == "" {
		r.ID = NewID()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
}
