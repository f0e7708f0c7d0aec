package commands

import (
	"context"
	"fmt"

	"vaultsync/internal/application"
	"vaultsync/internal/domain"
	"vaultsync/internal/ports"
)

// ResolveResult contains the vault paths a repository file maps to
type ResolveResult struct {
	Pairs   []domain.CopyPair
	Message string
}

// ResolveCommand answers "where does this file land in the vault"
type ResolveCommand struct {
	syncer ports.Syncer
	File   string
}

// NewResolveCommand creates a new ResolveCommand
func NewResolveCommand(syncer ports.Syncer, file string) *ResolveCommand {
	return &ResolveCommand{
		syncer: syncer,
		File:   file,
	}
}

// Validate checks if the resolve operation is valid
func (c *ResolveCommand) Validate() error {
	if c.File == "" {
		return &application.ValidationError{
			Field:   "file",
			Message: "file path is required",
		}
	}
	return nil
}

// Execute runs the resolve command
func (c *ResolveCommand) Execute(ctx context.Context) (*ResolveResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	pairs, err := c.syncer.Resolve(c.File)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", c.File, err)
	}

	msg := fmt.Sprintf("%s is not covered by any mapping", c.File)
	if len(pairs) == 1 {
		msg = fmt.Sprintf("%s -> %s", c.File, pairs[0].Target)
	} else if len(pairs) > 1 {
		msg = fmt.Sprintf("%s maps to %d vault paths", c.File, len(pairs))
	}

	return &ResolveResult{
		Pairs:   pairs,
		Message: msg,
	}, nil
}
