package commands

import (
	"context"
	"fmt"

	"vaultsync/internal/domain"
	"vaultsync/internal/ports"
)

// SyncResult contains the result of a sync run. Plan is set for dry runs,
// Report for real ones.
type SyncResult struct {
	Plan    *domain.SyncPlan
	Report  *domain.SyncReport
	Message string
}

// SyncCommand mirrors repository Markdown into the vault
type SyncCommand struct {
	syncer  ports.Syncer
	commits ports.CommitSource
	Options domain.SyncOptions
	DryRun  bool
}

// NewSyncCommand creates a new SyncCommand. commits may be nil when git
// metadata is not configured.
func NewSyncCommand(syncer ports.Syncer, commits ports.CommitSource, opts domain.SyncOptions) *SyncCommand {
	return &SyncCommand{
		syncer:  syncer,
		commits: commits,
		Options: opts,
	}
}

// Execute runs the sync command
func (c *SyncCommand) Execute(ctx context.Context) (*SyncResult, error) {
	if c.DryRun {
		plan, err := c.syncer.Plan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to plan sync: %w", err)
		}
		return &SyncResult{
			Plan:    plan,
			Message: fmt.Sprintf("Would copy %d files (%d found)", len(plan.Pairs), plan.FilesFound),
		}, nil
	}

	meta := c.commitMetadata(ctx)

	report, err := c.syncer.Sync(ctx, meta)
	if err != nil {
		return nil, fmt.Errorf("failed to sync: %w", err)
	}

	msg := fmt.Sprintf("Synced %d of %d files", report.Copied, report.FilesFound)
	if report.Failed > 0 {
		msg = fmt.Sprintf("Synced %d of %d files (%d failed)", report.Copied, report.FilesFound, report.Failed)
	}

	return &SyncResult{
		Report:  report,
		Message: msg,
	}, nil
}

// commitMetadata resolves the commit metadata for the run. Git is only
// consulted when the provenance block needs it; any git failure degrades to
// unknown placeholders rather than aborting the sync.
func (c *SyncCommand) commitMetadata(ctx context.Context) domain.CommitMetadata {
	if !c.Options.AddMetadata || !c.Options.Metadata.AddGitMetadata {
		return domain.UnknownCommit()
	}
	if c.commits == nil || !c.commits.Available() {
		return domain.UnknownCommit()
	}

	meta, err := c.commits.Head(ctx)
	if err != nil {
		return domain.UnknownCommit()
	}
	return meta
}
