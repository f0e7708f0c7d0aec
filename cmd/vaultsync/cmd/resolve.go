package cmd

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"vaultsync/internal/application/commands"
	"vaultsync/internal/ui"
)

var (
	resolveCopy bool
	resolveAll  bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <file>",
	Short: "Show where a repository file lands in the vault",
	Long: `Resolve a repository file against the config mappings and print the
vault path it syncs to. When several mappings cover the file, the last
one wins, matching what sync writes.

Examples:
  vaultsync resolve memory-bank/overview.md
  vaultsync resolve memory-bank/overview.md --copy
  vaultsync resolve docs/readme.md --all`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().BoolVar(&resolveCopy, "copy", false, "copy the vault path to the clipboard")
	resolveCmd.Flags().BoolVar(&resolveAll, "all", false, "print every matching vault path, not just the winner")
}

func runResolve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	resolveCommand := commands.NewResolveCommand(newSyncer(cfg), args[0])
	result, err := resolveCommand.Execute(cmd.Context())
	if err != nil {
		return err
	}

	if len(result.Pairs) == 0 {
		ui.Info(result.Message)
		return nil
	}

	winner := result.Pairs[len(result.Pairs)-1].Target
	if resolveAll {
		for _, p := range result.Pairs {
			fmt.Println(p.Target)
		}
	} else {
		fmt.Println(winner)
	}

	if resolveCopy {
		if err := clipboard.WriteAll(winner); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		ui.Success("Copied to clipboard")
	}
	return nil
}
