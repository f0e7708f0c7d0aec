package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"vaultsync/internal/adapters/filesystem"
	"vaultsync/internal/adapters/git"
	"vaultsync/internal/adapters/obsidian"
	"vaultsync/internal/application"
	"vaultsync/internal/application/commands"
	"vaultsync/internal/config"
	"vaultsync/internal/ui"
)

var (
	syncDryRun   bool
	syncQuiet    bool
	syncErrorLog string
	syncOpen     bool
	syncOpenFile string
)

var syncCmd = &cobra.Command{
	Use:   "sync [config]",
	Short: "Copy mapped Markdown files into the vault",
	Long: `Copy every Markdown file selected by the config mappings into the
target vault, optionally injecting provenance frontmatter.

The config file is resolved from the positional argument, the --config
flag, the VAULTSYNC_CONFIG environment variable, or the default names in
the current directory, in that order.

Examples:
  vaultsync sync
  vaultsync sync --dry-run
  vaultsync sync path/to/config.json
  vaultsync sync --quiet --error-log .git/vaultsync-error.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)
	syncCmd.Flags().BoolVarP(&syncDryRun, "dry-run", "n", false, "plan the copies without writing anything")
	syncCmd.Flags().BoolVarP(&syncQuiet, "quiet", "q", false, "only report failures")
	syncCmd.Flags().StringVar(&syncErrorLog, "error-log", "", "record failures in this file, clear it on success")
	syncCmd.Flags().BoolVar(&syncOpen, "open", false, "open the vault in Obsidian after syncing")
	syncCmd.Flags().StringVar(&syncOpenFile, "open-file", "", "open this repository file's synced note in Obsidian")
}

func runSync(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		configPath = args[0]
	}

	err := doSync(cmd)

	// Hook mode: persist the failure for later inspection, clear stale
	// logs on success.
	if syncErrorLog != "" && !syncDryRun {
		if err != nil {
			writeErrorLog(syncErrorLog, err.Error())
		} else {
			clearErrorLog(syncErrorLog)
		}
	}
	return err
}

func doSync(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	syncer := newSyncer(cfg)

	syncCommand := commands.NewSyncCommand(syncer, git.NewClient(""), cfg.DomainOptions())
	syncCommand.DryRun = syncDryRun

	result, err := syncCommand.Execute(cmd.Context())
	if err != nil {
		return err
	}

	if result.Plan != nil {
		if !syncQuiet {
			for _, w := range result.Plan.Warnings {
				ui.Warning(w)
			}
			fmt.Println(result.Message)
			for _, p := range result.Plan.Pairs {
				fmt.Printf("  %s -> %s\n", p.Source, p.Target)
			}
		}
		return nil
	}

	report := result.Report
	if !syncQuiet {
		for _, w := range report.Warnings {
			ui.Warning(w)
		}
	}
	for _, o := range report.Outcomes {
		if o.Err == nil {
			logger.Debug("copied", "source", o.Source, "target", o.Target, "injected", o.Injected)
		}
	}

	if report.Failed > 0 {
		var b strings.Builder
		fmt.Fprintf(&b, "%d of %d files failed", report.Failed, report.FilesFound)
		for _, o := range report.Outcomes {
			if o.Err != nil {
				fmt.Fprintf(&b, "\n%s: %v", o.Source, o.Err)
			}
		}
		return fmt.Errorf("%w: %s", application.ErrSyncIncomplete, b.String())
	}

	if !syncQuiet {
		ui.Success(result.Message)
	}

	openAfterSync(cfg, syncer)
	return nil
}

// openAfterSync hands off to Obsidian when requested. Failures are reported
// but never fail the sync that already happened.
func openAfterSync(cfg *config.File, syncer *filesystem.Syncer) {
	if !syncOpen && syncOpenFile == "" {
		return
	}

	opener := obsidian.NewOpener(cfg.TargetVault)

	if syncOpenFile == "" {
		if err := opener.OpenVault(); err != nil {
			ui.Warning(fmt.Sprintf("failed to open vault: %v", err))
		}
		return
	}

	pairs, err := syncer.Resolve(syncOpenFile)
	if err != nil || len(pairs) == 0 {
		ui.Warning(fmt.Sprintf("%s is not covered by any mapping", syncOpenFile))
		return
	}
	// The last mapping wins on collisions, so its target is the note that
	// actually ended up in the vault.
	if err := opener.OpenFile(pairs[len(pairs)-1].Target); err != nil {
		ui.Warning(fmt.Sprintf("failed to open %s: %v", syncOpenFile, err))
	}
}

func writeErrorLog(path, detail string) {
	content := fmt.Sprintf("[%s] vaultsync sync failed\n%s\n", time.Now().Format(time.RFC3339), detail)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		ui.Error(fmt.Sprintf("failed to write error log %s: %v", path, err))
	}
}

func clearErrorLog(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		ui.Error(fmt.Sprintf("failed to clear error log %s: %v", path, err))
	}
}
