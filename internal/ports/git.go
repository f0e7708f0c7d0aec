package ports

import (
	"context"

	"vaultsync/internal/domain"
)

// CommitSource provides metadata about the repository's latest commit.
type CommitSource interface {
	// Head returns metadata for the most recent commit. Implementations
	// degrade to domain.UnknownCommit() plus a non-nil error when the
	// repository has no commits or git is unavailable.
	Head(ctx context.Context) (domain.CommitMetadata, error)

	// StagedFiles lists paths staged for commit, relative to the repository
	// root. Deleted files are excluded.
	StagedFiles(ctx context.Context) ([]string, error)

	// Root returns the absolute path of the repository working tree.
	Root(ctx context.Context) (string, error)

	// HooksDir returns the directory git reads hooks from, honoring
	// core.hooksPath when set.
	HooksDir(ctx context.Context) (string, error)

	// Available reports whether a usable git binary and repository exist.
	Available() bool
}
