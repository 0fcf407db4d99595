package history

import (
	"context"
	"fmt"
)

// NullStore discards reports.
type NullStore struct{}

// Save assigns an ID and timestamp but stores nothing.
func (NullStore) Save(_ context.Context, r *Report) error {
	prepare(r)
	return nil
}

func (NullStore) Get(_ context.Context, id string) (*Report, error) {
	return nil, fmt.Errorf("run %s: %w", id, ErrNotFound)
}

func (NullStore) List(context.Context, ListOptions) ([]*Report, error) { return nil, nil }

func (NullStore) Close() error { return nil }

var _ Store = NullStore{}
