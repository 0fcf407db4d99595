package history

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/mazewalk/pkg/grid"
	"github.com/matzehuels/mazewalk/pkg/search"
)

func solved(t *testing.T, s search.Strategy) search.Result {
	t.Helper()
	g, err := grid.FromRows([]string{
		"..#",
		"..X",
	})
	require.NoError(t, err)
	res, err := search.Solve(s, g, nil)
	require.NoError(t, err)
	return res
}

func TestNewReport(t *testing.T) {
	res := solved(t, search.BFS)
	r := NewReport(res, "abc")

	assert.Equal(t, "bfs", r.Strategy)
	assert.Equal(t, 2, r.Rows)
	assert.Equal(t, 3, r.Cols)
	assert.True(t, r.Found)
	assert.Equal(t, res.Settled(), r.Settled)
	assert.Equal(t, res.Frontier(), r.Frontier)
	assert.Equal(t, "abc", r.MazeHash)
	assert.Equal(t, "solved!", r.Outcome())
	assert.Empty(t, r.ID)

	r.Found = false
	assert.Equal(t, "no solution!", r.Outcome())
}

func TestFileStore_SaveGet(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	r := NewReport(solved(t, search.DFS), "h1")
	require.NoError(t, store.Save(ctx, r))
	require.NotEmpty(t, r.ID)
	require.False(t, r.CreatedAt.IsZero())

	got, err := store.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, r.ID, got.ID)
	assert.Equal(t, "dfs", got.Strategy)
	assert.Equal(t, r.Settled, got.Settled)
	assert.True(t, got.CreatedAt.Equal(r.CreatedAt))
}

func TestFileStore_GetMissing(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	for _, id := range []string{NewID(), "../../etc/passwd", ""} {
		_, err := store.Get(ctx, id)
		assert.ErrorIs(t, err, ErrNotFound, "id %q", id)
	}
}

func TestFileStore_List(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, s := range []string{"bfs", "dfs", "bfs", "dfs", "bfs"} {
		r := &Report{Strategy: s, CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		require.NoError(t, store.Save(ctx, r))
	}
	// Unrelated files are ignored.
	require.NoError(t, os.WriteFile(store.Path()+"/notes.txt", []byte("x"), 0600))
	require.NoError(t, os.WriteFile(store.Path()+"/broken.json", []byte("{"), 0600))

	all, err := store.List(ctx, ListOptions{})
	require.NoError(t, err)
	require.Len(t, all, 5)
	for i := 1; i < len(all); i++ {
		assert.True(t, all[i-1].CreatedAt.After(all[i].CreatedAt), "not newest first at %d", i)
	}

	bfs, err := store.List(ctx, ListOptions{Strategy: "bfs"})
	require.NoError(t, err)
	assert.Len(t, bfs, 3)
	for _, r := range bfs {
		assert.Equal(t, "bfs", r.Strategy)
	}

	two, err := store.List(ctx, ListOptions{Limit: 2})
	require.NoError(t, err)
	require.Len(t, two, 2)
	assert.Equal(t, base.Add(4*time.Minute), two[0].CreatedAt.UTC())
}

func TestDefaultDir(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg")
	dir, err := DefaultDir()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/xdg/mazewalk/runs", dir)
}

func TestNullStore(t *testing.T) {
	ctx := context.Background()
	var store Store = NullStore{}

	r := &Report{Strategy: "bfs"}
	require.NoError(t, store.Save(ctx, r))
	assert.NotEmpty(t, r.ID)

	_, err := store.Get(ctx, r.ID)
	assert.True(t, errors.Is(err, ErrNotFound))

	list, err := store.List(ctx, ListOptions{})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestMongoStore(t *testing.T) {
	uri := os.Getenv("MAZEWALK_TEST_MONGO_URI")
	if uri == "" {
		t.Skip("MAZEWALK_TEST_MONGO_URI not set")
	}
	ctx := context.Background()
	store, err := NewMongoStore(ctx, MongoConfig{
		URI:        uri,
		Database:   "mazewalk_test",
		Collection: "runs_" + NewID()[:8],
	})
	require.NoError(t, err)
	defer func() {
		_ = store.collection.Drop(ctx)
		_ = store.Close()
	}()

	r := NewReport(solved(t, search.BFS), "h")
	require.NoError(t, store.Save(ctx, r))

	got, err := store.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, r.Strategy, got.Strategy)
	assert.Equal(t, r.Settled, got.Settled)

	r.Found = false
	require.NoError(t, store.Save(ctx, r))
	list, err := store.List(ctx, ListOptions{Strategy: "bfs"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.False(t, list[0].Found)

	_, err = store.Get(ctx, NewID())
	assert.ErrorIs(t, err, ErrNotFound)
}
