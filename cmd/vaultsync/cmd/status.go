package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"vaultsync/internal/application/commands"
	"vaultsync/internal/domain"
	"vaultsync/internal/ui"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Compare the vault against the repository",
	Long: `Check every mapped file against its vault copy without writing
anything. A note is stale when its content (ignoring injected provenance
frontmatter) differs from the repository source.`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	statusCommand := commands.NewStatusCommand(newSyncer(cfg))
	result, err := statusCommand.Execute(cmd.Context())
	if err != nil {
		return err
	}

	for _, e := range result.Report.Entries {
		line := fmt.Sprintf("%s -> %s", e.Source, e.Target)
		switch e.State {
		case domain.TargetCurrent:
			ui.Success(line)
		case domain.TargetStale:
			ui.Warning(line + " (stale)")
		default:
			ui.Warning(line + " (not in vault)")
		}
		if e.SyncedCommit != "" {
			logger.Debug("synced commit", "target", e.Target, "commit", e.SyncedCommit)
		}
	}

	fmt.Println(result.Message)
	return nil
}
