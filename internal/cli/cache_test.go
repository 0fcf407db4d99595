package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/mazewalk/pkg/cache"
)

func TestCachePathCommand(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", home)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())

	var out bytes.Buffer
	c := New(&bytes.Buffer{}, LogInfo)
	c.Out = &out
	root := c.RootCommand()
	root.SetArgs([]string{"cache", "path"})
	if err := root.Execute(); err != nil {
		t.Fatalf("cache path: %v", err)
	}

	want := filepath.Join(home, "mazewalk")
	if got := strings.TrimSpace(out.String()); got != want {
		t.Errorf("cache path = %q, want %q", got, want)
	}
}

func TestCachePathCommandRedis(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("MAZEWALK_REDIS_URL", "redis://localhost:6379/0")
	t.Chdir(t.TempDir())

	var out bytes.Buffer
	c := New(&bytes.Buffer{}, LogInfo)
	c.Out = &out
	root := c.RootCommand()
	root.SetArgs([]string{"cache", "path"})
	if err := root.Execute(); err != nil {
		t.Fatalf("cache path: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "redis://localhost:6379/0" {
		t.Errorf("cache path = %q, want the redis url", got)
	}
}

func TestCacheClearCommand(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", home)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())

	fc, err := cache.NewFileCache(filepath.Join(home, "mazewalk"))
	if err != nil {
		t.Fatalf("NewFileCache() error: %v", err)
	}
	ctx := context.Background()
	if err := fc.Set(ctx, "maze:abc", []byte("..X\n"), cache.TTLMaze); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	root := New(&bytes.Buffer{}, LogInfo).RootCommand()
	root.SetArgs([]string{"cache", "clear"})
	if err := root.Execute(); err != nil {
		t.Fatalf("cache clear: %v", err)
	}

	if _, ok, _ := fc.Get(ctx, "maze:abc"); ok {
		t.Error("entry should be gone after cache clear")
	}
}

func TestCacheLocation(t *testing.T) {
	dir := t.TempDir()
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		t.Fatalf("NewFileCache() error: %v", err)
	}
	if got := cacheLocation(fc); got != dir {
		t.Errorf("cacheLocation(file) = %q, want %q", got, dir)
	}
	if got := cacheLocation(cache.NewNullCache()); got != "-" {
		t.Errorf("cacheLocation(null) = %q, want %q", got, "-")
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("cache dir should exist: %v", err)
	}
}
