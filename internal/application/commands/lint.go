package commands

import (
	"context"
	"fmt"
	"time"

	"vaultsync/internal/application"
	"vaultsync/internal/domain"
	"vaultsync/internal/ports"
)

// LintCommand runs every applicable linter over a set of files. Linters run
// in registration order; files are processed sequentially.
type LintCommand struct {
	linters []ports.Linter
	cache   ports.LintCache
	Files   []string

	// SkipMissing records a missing tool as a skip instead of failing the
	// whole run.
	SkipMissing bool
}

// NewLintCommand creates a new LintCommand. cache may be nil to disable
// result caching.
func NewLintCommand(linters []ports.Linter, cache ports.LintCache, files []string) *LintCommand {
	return &LintCommand{
		linters: linters,
		cache:   cache,
		Files:   files,
	}
}

// Validate checks if the lint operation is valid
func (c *LintCommand) Validate() error {
	if len(c.linters) == 0 {
		return &application.ValidationError{
			Field:   "linters",
			Message: "at least one linter is required",
		}
	}
	return nil
}

// Execute runs the lint command. Tool diagnostics are collected per file;
// a failing tool does not stop the remaining files. A tool that is needed
// but not installed aborts the run unless SkipMissing is set.
func (c *LintCommand) Execute(ctx context.Context) (*domain.LintReport, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	report := &domain.LintReport{}

	for _, file := range c.Files {
		for _, linter := range c.linters {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if !linter.Supports(file) {
				continue
			}

			if !linter.Available() {
				if !c.SkipMissing {
					return nil, &application.DependencyError{
						Tool: linter.Name(),
						Hint: fmt.Sprintf("needed to lint %s", file),
					}
				}
				report.Skipped++
				continue
			}

			result, err := c.runOne(ctx, linter, file)
			if err != nil {
				return nil, err
			}

			report.Results = append(report.Results, result)
			if !result.Passed {
				report.Failed++
			}
		}
	}

	report.Duration = time.Since(start)
	return report, nil
}

// runOne lints a single file with a single tool, consulting the cache on
// both sides of the run. A tool crash counts as a failed result, not a
// fatal error.
func (c *LintCommand) runOne(ctx context.Context, linter ports.Linter, file string) (domain.LintResult, error) {
	if c.cache != nil {
		seen, err := c.cache.Seen(ctx, linter.Name(), file)
		if err == nil && seen {
			return domain.LintResult{
				Tool:   linter.Name(),
				File:   file,
				Passed: true,
				Cached: true,
			}, nil
		}
	}

	result, err := linter.Run(ctx, file)
	if err != nil {
		if ctx.Err() != nil {
			return domain.LintResult{}, ctx.Err()
		}
		result = domain.LintResult{
			Tool:   linter.Name(),
			File:   file,
			Passed: false,
			Output: err.Error(),
		}
	}

	if result.Passed && c.cache != nil {
		// Best effort: a cache write failure never fails the lint.
		_ = c.cache.Record(ctx, linter.Name(), file)
	}

	return result, nil
}
