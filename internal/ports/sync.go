package ports

import (
	"context"

	"vaultsync/internal/domain"
)

// Syncer defines the interface for mirroring repository Markdown into the
// vault. Every method resolves mappings in configuration order; there is no
// state carried between calls.
type Syncer interface {
	// Plan discovers and resolves the full copy list without touching the
	// vault. Missing mapping sources surface as plan warnings, not errors.
	Plan(ctx context.Context) (*domain.SyncPlan, error)

	// Sync executes the plan: ensures destination directories, copies bytes,
	// and injects the provenance block when configured. Per-file failures
	// are recorded in the report and do not abort the run.
	Sync(ctx context.Context, meta domain.CommitMetadata) (*domain.SyncReport, error)

	// Status compares every resolved pair against the vault without writing.
	Status(ctx context.Context) (*domain.StatusReport, error)

	// Resolve returns the pair(s) a single repository file maps to, in
	// configuration order. An empty result means no mapping covers the file.
	Resolve(file string) ([]domain.CopyPair, error)
}
