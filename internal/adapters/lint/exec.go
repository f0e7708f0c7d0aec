package lint

import (
	"context"
	"os/exec"
	"path/filepath"
	"strings"

	"vaultsync/internal/domain"
)

// ExecLinter runs one external lint tool per file. The tool's exit code
// decides pass or fail; its combined output is carried verbatim into the
// result.
type ExecLinter struct {
	name string
	args []string
	exts []string
}

// NewExecLinter creates a linter that invokes name with args followed by
// the file path, for files matching one of exts.
func NewExecLinter(name string, args []string, exts ...string) *ExecLinter {
	return &ExecLinter{
		name: name,
		args: args,
		exts: exts,
	}
}

// Name returns the tool name as reports and cache keys see it.
func (l *ExecLinter) Name() string { return l.name }

// Available reports whether the tool is on PATH.
func (l *ExecLinter) Available() bool {
	_, err := exec.LookPath(l.name)
	return err == nil
}

// Supports matches the file extension case-insensitively.
func (l *ExecLinter) Supports(file string) bool {
	ext := filepath.Ext(file)
	for _, want := range l.exts {
		if strings.EqualFold(ext, want) {
			return true
		}
	}
	return false
}

// Run invokes the tool on one file. A nonzero exit is a failed result with
// the tool's diagnostics; any other execution problem is an error.
func (l *ExecLinter) Run(ctx context.Context, file string) (domain.LintResult, error) {
	args := append(append([]string{}, l.args...), file)
	cmd := exec.CommandContext(ctx, l.name, args...)

	output, err := cmd.CombinedOutput()
	result := domain.LintResult{
		Tool:   l.name,
		File:   file,
		Output: strings.TrimSpace(string(output)),
	}

	if err == nil {
		result.Passed = true
		return result, nil
	}
	if _, ok := err.(*exec.ExitError); ok {
		return result, nil
	}
	return domain.LintResult{}, err
}
