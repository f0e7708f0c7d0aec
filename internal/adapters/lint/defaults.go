package lint

import "vaultsync/internal/ports"

// Default returns the standard tool set in run order: Python formatters and
// checkers first, then shell, then the native Markdown link checker.
func Default() []ports.Linter {
	return []ports.Linter{
		NewExecLinter("black", []string{"--check"}, ".py"),
		NewExecLinter("isort", []string{"--check-only"}, ".py"),
		NewExecLinter("flake8", nil, ".py"),
		NewExecLinter("mypy", nil, ".py"),
		NewExecLinter("pylint", nil, ".py"),
		NewExecLinter("shellcheck", nil, ".sh", ".bash"),
		NewMarkdownLinter(),
	}
}
