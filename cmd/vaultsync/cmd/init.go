package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"vaultsync/internal/adapters/tui"
	"vaultsync/internal/config"
	"vaultsync/internal/ui"
)

var (
	initForce  bool
	initVault  string
	initSource string
	initTarget string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a sync configuration",
	Long: `Create a ` + config.DefaultNames[0] + ` in the current directory. Without
flags an interactive wizard collects the vault path and the first
mapping; passing --vault, --source and --target skips the wizard.

Examples:
  vaultsync init
  vaultsync init --vault ~/Documents/vault --source memory-bank --target projects/demo`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing config file")
	initCmd.Flags().StringVar(&initVault, "vault", "", "target vault path")
	initCmd.Flags().StringVar(&initSource, "source", "", "repository path to sync")
	initCmd.Flags().StringVar(&initTarget, "target", "", "vault path to sync into")
}

func runInit(cmd *cobra.Command, args []string) error {
	outPath := configPath
	if outPath == "" {
		outPath = config.DefaultNames[0]
	}

	if _, err := os.Stat(outPath); err == nil && !initForce {
		return fmt.Errorf("config file %s already exists (use --force to overwrite)", outPath)
	}

	var file *config.File
	if initVault != "" && initSource != "" && initTarget != "" {
		file = scaffold(initVault, initSource, initTarget)
		file.Normalize()
		if err := file.Validate(); err != nil {
			return err
		}
	} else {
		wizard := tui.NewWizard(initVault, initSource, initTarget)
		if _, err := tea.NewProgram(wizard).Run(); err != nil {
			return fmt.Errorf("wizard failed: %w", err)
		}

		file = wizard.Result()
		if file == nil {
			ui.Muted("Cancelled")
			return nil
		}
	}

	if err := config.WriteFile(file, outPath); err != nil {
		return err
	}

	ui.Success(fmt.Sprintf("Wrote %s", outPath))
	ui.Muted("Run 'vaultsync hook install' to sync after every commit")
	return nil
}

// scaffold builds the starter config for the non-interactive path. All
// metadata toggles start on, matching the wizard defaults.
func scaffold(vault, source, target string) *config.File {
	f := &config.File{
		TargetVault: vault,
		Mappings:    []config.Mapping{{Source: source, Target: target}},
	}
	f.Options.AddMetadata = true
	f.Options.MetadataTemplate.AddGitMetadata = true
	f.Options.MetadataTemplate.AddSyncTimestamp = true
	return f
}
