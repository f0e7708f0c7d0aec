package ports

import (
	"context"

	"vaultsync/internal/domain"
)

// Linter wraps a single lint tool. Implementations decide which files they
// apply to; the orchestrator never hardcodes tool-to-extension rules.
type Linter interface {
	// Name identifies the tool in reports and cache keys.
	Name() string

	// Available reports whether the underlying tool can run on this host.
	Available() bool

	// Supports reports whether the linter applies to the given file.
	Supports(file string) bool

	// Run lints one file. A non-empty Output with Passed=false carries the
	// tool's diagnostics verbatim.
	Run(ctx context.Context, file string) (domain.LintResult, error)
}
