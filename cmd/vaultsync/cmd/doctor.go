package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vaultsync/internal/adapters/git"
	"vaultsync/internal/adapters/lint"
	"vaultsync/internal/adapters/sqlite"
	"vaultsync/internal/config"
	"vaultsync/internal/ui"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose sync setup issues",
	Long: `Check vaultsync health and diagnose common issues.

Runs checks on:
- Config file validity
- Vault and mapping source paths
- Git availability and hook installation
- Linter availability
- Lint result cache`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

type checkResult struct {
	passed  bool
	message string
	fix     string // Suggested fix command
}

func runDoctor(cmd *cobra.Command, args []string) error {
	fmt.Println()
	fmt.Println("Checking vaultsync setup...")
	fmt.Println()

	errors := 0
	warnings := 0

	fmt.Println("Config")
	fmt.Println("──────")
	cfg, configResults := checkConfig()
	for _, r := range configResults {
		printCheckResult(r)
		countCheck(r, &errors, &warnings)
	}

	if cfg != nil {
		fmt.Println()
		fmt.Println("Paths")
		fmt.Println("─────")
		for _, r := range checkPaths(cfg) {
			printCheckResult(r)
			countCheck(r, &errors, &warnings)
		}
	}

	fmt.Println()
	fmt.Println("Git")
	fmt.Println("───")
	for _, r := range checkGit(cmd.Context()) {
		printCheckResult(r)
		countCheck(r, &errors, &warnings)
	}

	fmt.Println()
	fmt.Println("Linters")
	fmt.Println("───────")
	for _, r := range checkLinters() {
		printCheckResult(r)
		countCheck(r, &errors, &warnings)
	}

	fmt.Println()
	fmt.Println("Lint Cache")
	fmt.Println("──────────")
	for _, r := range checkCache() {
		printCheckResult(r)
		countCheck(r, &errors, &warnings)
	}

	// Summary
	fmt.Println()
	fmt.Println("─────────")

	if errors == 0 && warnings == 0 {
		ui.Success("All checks passed!")
		return nil
	}
	if errors == 0 {
		ui.Warning(fmt.Sprintf("%d warning(s)", warnings))
		return nil
	}
	ui.Error(fmt.Sprintf("%d error(s), %d warning(s)", errors, warnings))
	return fmt.Errorf("%d check(s) failed", errors)
}

func printCheckResult(r checkResult) {
	if r.passed {
		fmt.Printf("  ✓ %s\n", r.message)
	} else if r.fix != "" {
		fmt.Printf("  ⚠ %s\n", r.message)
		fmt.Printf("    → %s\n", r.fix)
	} else {
		fmt.Printf("  ✗ %s\n", r.message)
	}
}

// countCheck tallies a failed check as a warning when it has a suggested
// fix, as an error otherwise.
func countCheck(r checkResult, errors, warnings *int) {
	if r.passed {
		return
	}
	if r.fix != "" {
		*warnings++
	} else {
		*errors++
	}
}

func checkConfig() (*config.File, []checkResult) {
	var results []checkResult

	path, err := resolveConfigPath()
	if err != nil {
		results = append(results, checkResult{
			passed:  false,
			message: err.Error(),
			fix:     "Run: vaultsync init",
		})
		return nil, results
	}
	results = append(results, checkResult{
		passed:  true,
		message: fmt.Sprintf("Config file found: %s", path),
	})

	cfg, err := config.Load(path)
	if err != nil {
		results = append(results, checkResult{
			passed:  false,
			message: err.Error(),
		})
		return nil, results
	}
	results = append(results, checkResult{
		passed:  true,
		message: fmt.Sprintf("Config valid (%d mappings)", len(cfg.Mappings)),
	})
	return cfg, results
}

func checkPaths(cfg *config.File) []checkResult {
	var results []checkResult

	if info, err := os.Stat(cfg.TargetVault); err != nil {
		results = append(results, checkResult{
			passed:  false,
			message: fmt.Sprintf("Vault root %s does not exist", cfg.TargetVault),
			fix:     "It is created on the first sync",
		})
	} else if !info.IsDir() {
		results = append(results, checkResult{
			passed:  false,
			message: fmt.Sprintf("Vault root %s is not a directory", cfg.TargetVault),
		})
	} else {
		results = append(results, checkResult{
			passed:  true,
			message: fmt.Sprintf("Vault root exists: %s", cfg.TargetVault),
		})
	}

	for _, m := range cfg.Mappings {
		if _, err := os.Stat(m.Source); err != nil {
			results = append(results, checkResult{
				passed:  false,
				message: fmt.Sprintf("Mapping source %s does not exist", m.Source),
				fix:     "Sync skips it with a warning",
			})
		} else {
			results = append(results, checkResult{
				passed:  true,
				message: fmt.Sprintf("Mapping source exists: %s", m.Source),
			})
		}
	}
	return results
}

func checkGit(ctx context.Context) []checkResult {
	var results []checkResult

	if !git.IsGitInstalled() {
		results = append(results, checkResult{
			passed:  false,
			message: "git is not installed",
			fix:     "Install git to record commit provenance",
		})
		return results
	}
	results = append(results, checkResult{passed: true, message: "git is installed"})

	client := git.NewClient("")
	if !client.Available() {
		results = append(results, checkResult{
			passed:  false,
			message: "Not inside a git repository",
			fix:     "hook install and lint --staged need one",
		})
		return results
	}
	results = append(results, checkResult{passed: true, message: "Inside a git repository"})

	path, installed, err := client.HookInstalled(ctx, "post-commit")
	switch {
	case err != nil:
		results = append(results, checkResult{
			passed:  false,
			message: fmt.Sprintf("Cannot check hook: %v", err),
		})
	case installed:
		results = append(results, checkResult{
			passed:  true,
			message: fmt.Sprintf("post-commit hook installed at %s", path),
		})
	default:
		results = append(results, checkResult{
			passed:  false,
			message: "post-commit hook not installed",
			fix:     "Run: vaultsync hook install",
		})
	}
	return results
}

func checkLinters() []checkResult {
	var results []checkResult
	for _, l := range lint.Default() {
		if l.Available() {
			results = append(results, checkResult{
				passed:  true,
				message: fmt.Sprintf("%s is installed", l.Name()),
			})
		} else {
			results = append(results, checkResult{
				passed:  false,
				message: fmt.Sprintf("%s is not installed", l.Name()),
				fix:     fmt.Sprintf("Install %s, or lint with --skip-missing", l.Name()),
			})
		}
	}
	return results
}

func checkCache() []checkResult {
	path, err := sqlite.DefaultCachePath()
	if err != nil {
		return []checkResult{{
			passed:  false,
			message: fmt.Sprintf("Cannot resolve cache path: %v", err),
			fix:     "Lint runs uncached",
		}}
	}

	cache, err := sqlite.OpenCache(path)
	if err != nil {
		return []checkResult{{
			passed:  false,
			message: fmt.Sprintf("Cannot open lint cache: %v", err),
			fix:     "Lint runs uncached",
		}}
	}
	defer cache.Close()

	return []checkResult{{
		passed:  true,
		message: fmt.Sprintf("Lint cache at %s", path),
	}}
}
