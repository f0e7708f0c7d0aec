package commands

import (
	"context"
	"fmt"

	"vaultsync/internal/domain"
	"vaultsync/internal/ports"
)

// StatusResult contains the result of a status check
type StatusResult struct {
	Report  *domain.StatusReport
	Message string
}

// StatusCommand compares the vault against the repository without writing
type StatusCommand struct {
	syncer ports.Syncer
}

// NewStatusCommand creates a new StatusCommand
func NewStatusCommand(syncer ports.Syncer) *StatusCommand {
	return &StatusCommand{syncer: syncer}
}

// Execute runs the status command
func (c *StatusCommand) Execute(ctx context.Context) (*StatusResult, error) {
	report, err := c.syncer.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check status: %w", err)
	}

	return &StatusResult{
		Report: report,
		Message: fmt.Sprintf("%d current, %d stale, %d missing",
			report.Current, report.Stale, report.Missing),
	}, nil
}
