package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"vaultsync/internal/adapters/git"
	"vaultsync/internal/adapters/lint"
	"vaultsync/internal/adapters/sqlite"
	"vaultsync/internal/application"
	"vaultsync/internal/application/commands"
	"vaultsync/internal/domain"
	"vaultsync/internal/ports"
	"vaultsync/internal/ui"
)

var (
	lintStaged      bool
	lintSkipMissing bool
	lintNoCache     bool
)

var lintCmd = &cobra.Command{
	Use:   "lint [files...]",
	Short: "Run the project's linters over files",
	Long: `Run every linter that claims a file over the given files. Python files
go through black, isort, flake8, mypy and pylint; shell scripts through
shellcheck; Markdown files through the built-in link checker.

Passing results are cached by content hash, so a file that has not
changed since its last clean run is not linted again.

Examples:
  vaultsync lint script.py deploy.sh
  vaultsync lint --staged
  vaultsync lint --staged --skip-missing`,
	RunE: runLint,
}

func init() {
	rootCmd.AddCommand(lintCmd)
	lintCmd.Flags().BoolVar(&lintStaged, "staged", false, "lint the files staged in git")
	lintCmd.Flags().BoolVar(&lintSkipMissing, "skip-missing", false, "skip linters that are not installed")
	lintCmd.Flags().BoolVar(&lintNoCache, "no-cache", false, "lint every file even when unchanged")
}

func runLint(cmd *cobra.Command, args []string) error {
	files := args
	if lintStaged {
		staged, err := git.NewClient("").StagedFiles(cmd.Context())
		if err != nil {
			return err
		}
		files = append(files, staged...)
	}
	if len(files) == 0 {
		ui.Info("No files to lint")
		return nil
	}

	var cache ports.LintCache
	if !lintNoCache {
		cache = openLintCache(cmd.Context())
	}
	if cache != nil {
		defer cache.Close()
	}

	lintCommand := commands.NewLintCommand(lint.Default(), cache, files)
	lintCommand.SkipMissing = lintSkipMissing

	report, err := lintCommand.Execute(cmd.Context())
	if err != nil {
		return err
	}

	printLintReport(report)
	if report.Failed > 0 {
		return fmt.Errorf("%w: %d check(s) failed", application.ErrLintFailed, report.Failed)
	}
	return nil
}

// openLintCache opens the shared result cache, degrading to uncached runs
// when the database is unavailable.
func openLintCache(ctx context.Context) ports.LintCache {
	path, err := sqlite.DefaultCachePath()
	if err != nil {
		logger.Debug("lint cache disabled", "error", err)
		return nil
	}

	cache, err := sqlite.OpenCache(path)
	if err != nil {
		ui.Warning(fmt.Sprintf("lint cache disabled: %v", err))
		return nil
	}

	// Old entries only pile up, drop them while we are here.
	_ = cache.Prune(ctx)
	return cache
}

func printLintReport(report *domain.LintReport) {
	for _, r := range report.Results {
		switch {
		case r.Cached:
			logger.Debug("cached pass", "tool", r.Tool, "file", r.File)
		case r.Passed:
			ui.Success(fmt.Sprintf("%s: %s", r.Tool, r.File))
		default:
			ui.Error(fmt.Sprintf("%s: %s", r.Tool, r.File))
			if r.Output != "" {
				fmt.Println(indent(r.Output))
			}
		}
	}
	if report.Skipped > 0 {
		ui.Warning(fmt.Sprintf("%d check(s) skipped (tool not installed)", report.Skipped))
	}
}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = "  " + lines[i]
	}
	return strings.Join(lines, "\n")
}
