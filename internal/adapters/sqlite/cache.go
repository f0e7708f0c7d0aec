package sqlite

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"vaultsync/internal/ports"

	_ "modernc.org/sqlite"
)

// retention is how long a passing result stays valid without being
// refreshed.
const retention = 30 * 24 * time.Hour

// Cache implements ports.LintCache using SQLite. A row records that a tool
// passed for a file at a given content hash; any edit to the file changes
// the hash and invalidates the row.
type Cache struct {
	db *sql.DB
}

// Ensure Cache implements LintCache
var _ ports.LintCache = (*Cache)(nil)

// DefaultCachePath returns the lint cache location under the user cache
// directory.
func DefaultCachePath() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate cache directory: %w", err)
	}
	return filepath.Join(base, "vaultsync", "lint.db"), nil
}

// OpenCache opens (and if needed creates) the cache database at dbPath.
func OpenCache(dbPath string) (*Cache, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	// WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS results (
			tool TEXT NOT NULL,
			path TEXT NOT NULL,
			content_hash TEXT NOT NULL,
			recorded_at INTEGER NOT NULL,
			PRIMARY KEY (tool, path)
		);
		CREATE INDEX IF NOT EXISTS idx_results_recorded ON results(recorded_at);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup cache database: %w", err)
	}

	return &Cache{db: db}, nil
}

// Seen reports whether tool already passed for the file's current content.
func (c *Cache) Seen(ctx context.Context, tool, file string) (bool, error) {
	hash, err := hashFile(file)
	if err != nil {
		return false, err
	}

	var stored string
	err = c.db.QueryRowContext(ctx,
		"SELECT content_hash FROM results WHERE tool = ? AND path = ?",
		tool, file,
	).Scan(&stored)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to query cache: %w", err)
	}

	return stored == hash, nil
}

// Record stores a passing result for the file's current content.
func (c *Cache) Record(ctx context.Context, tool, file string) error {
	hash, err := hashFile(file)
	if err != nil {
		return err
	}

	_, err = c.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO results (tool, path, content_hash, recorded_at) VALUES (?, ?, ?, ?)",
		tool, file, hash, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to record result: %w", err)
	}
	return nil
}

// Prune drops results older than the retention window.
func (c *Cache) Prune(ctx context.Context) error {
	cutoff := time.Now().Add(-retention).Unix()
	_, err := c.db.ExecContext(ctx, "DELETE FROM results WHERE recorded_at < ?", cutoff)
	if err != nil {
		return fmt.Errorf("failed to prune cache: %w", err)
	}
	return nil
}

// Close closes the database connection
func (c *Cache) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// hashFile returns the hex SHA-256 of the file's content.
func hashFile(file string) (string, error) {
	content, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", file, err)
	}
	h := sha256.Sum256(content)
	return hex.EncodeToString(h[:]), nil
}
