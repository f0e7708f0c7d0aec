package ports

import "context"

// LintCache remembers files that already passed a given tool so unchanged
// files are not re-linted on every commit.
type LintCache interface {
	// Seen reports whether the tool already passed for this exact file
	// content. The key is derived from the file's bytes, so any edit
	// invalidates the entry.
	Seen(ctx context.Context, tool, file string) (bool, error)

	// Record stores a passing result.
	Record(ctx context.Context, tool, file string) error

	// Prune drops entries older than the retention window.
	Prune(ctx context.Context) error

	// Close releases the underlying store.
	Close() error
}
