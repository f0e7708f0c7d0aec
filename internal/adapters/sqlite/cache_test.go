package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func openTestCache(t *testing.T) (*Cache, string) {
	t.Helper()

	dir := t.TempDir()
	cache, err := OpenCache(filepath.Join(dir, "lint.db"))
	if err != nil {
		t.Fatalf("failed to open cache: %v", err)
	}
	t.Cleanup(func() {
		if err := cache.Close(); err != nil {
			t.Errorf("failed to close cache: %v", err)
		}
	})
	return cache, dir
}

func TestCache_SeenAfterRecord(t *testing.T) {
	cache, dir := openTestCache(t)
	ctx := context.Background()

	file := filepath.Join(dir, "script.py")
	if err := os.WriteFile(file, []byte("print('hi')\n"), 0644); err != nil {
		t.Fatalf("failed to write: %v", err)
	}

	seen, err := cache.Seen(ctx, "flake8", file)
	if err != nil {
		t.Fatalf("Seen failed: %v", err)
	}
	if seen {
		t.Error("expected unseen file before record")
	}

	if err := cache.Record(ctx, "flake8", file); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	seen, err = cache.Seen(ctx, "flake8", file)
	if err != nil {
		t.Fatalf("Seen failed: %v", err)
	}
	if !seen {
		t.Error("expected file seen after record")
	}

	// Another tool has no claim on the same file.
	seen, err = cache.Seen(ctx, "mypy", file)
	if err != nil {
		t.Fatalf("Seen failed: %v", err)
	}
	if seen {
		t.Error("expected other tool unseen")
	}
}

func TestCache_EditInvalidates(t *testing.T) {
	cache, dir := openTestCache(t)
	ctx := context.Background()

	file := filepath.Join(dir, "script.py")
	if err := os.WriteFile(file, []byte("print('hi')\n"), 0644); err != nil {
		t.Fatalf("failed to write: %v", err)
	}
	if err := cache.Record(ctx, "flake8", file); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	if err := os.WriteFile(file, []byte("print('edited')\n"), 0644); err != nil {
		t.Fatalf("failed to edit: %v", err)
	}

	seen, err := cache.Seen(ctx, "flake8", file)
	if err != nil {
		t.Fatalf("Seen failed: %v", err)
	}
	if seen {
		t.Error("expected edited file to invalidate the cached pass")
	}

	// Recording again refreshes the row for the new content.
	if err := cache.Record(ctx, "flake8", file); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	seen, err = cache.Seen(ctx, "flake8", file)
	if err != nil {
		t.Fatalf("Seen failed: %v", err)
	}
	if !seen {
		t.Error("expected refreshed record to be seen")
	}
}

func TestCache_SeenMissingFile(t *testing.T) {
	cache, dir := openTestCache(t)

	_, err := cache.Seen(context.Background(), "flake8", filepath.Join(dir, "gone.py"))
	if err == nil {
		t.Error("expected error for unreadable file")
	}
}

func TestCache_Prune(t *testing.T) {
	cache, dir := openTestCache(t)
	ctx := context.Background()

	file := filepath.Join(dir, "script.py")
	if err := os.WriteFile(file, []byte("print('hi')\n"), 0644); err != nil {
		t.Fatalf("failed to write: %v", err)
	}
	if err := cache.Record(ctx, "flake8", file); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	// Fresh entries survive a prune.
	if err := cache.Prune(ctx); err != nil {
		t.Fatalf("Prune failed: %v", err)
	}

	seen, err := cache.Seen(ctx, "flake8", file)
	if err != nil {
		t.Fatalf("Seen failed: %v", err)
	}
	if !seen {
		t.Error("expected fresh entry to survive prune")
	}
}

func TestCache_ReopenPersists(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "lint.db")
	ctx := context.Background()

	file := filepath.Join(dir, "script.py")
	if err := os.WriteFile(file, []byte("print('hi')\n"), 0644); err != nil {
		t.Fatalf("failed to write: %v", err)
	}

	cache, err := OpenCache(dbPath)
	if err != nil {
		t.Fatalf("failed to open cache: %v", err)
	}
	if err := cache.Record(ctx, "flake8", file); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := cache.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	cache, err = OpenCache(dbPath)
	if err != nil {
		t.Fatalf("failed to reopen cache: %v", err)
	}
	defer cache.Close()

	seen, err := cache.Seen(ctx, "flake8", file)
	if err != nil {
		t.Fatalf("Seen failed: %v", err)
	}
	if !seen {
		t.Error("expected record to persist across reopen")
	}
}
