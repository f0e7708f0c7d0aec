package cmd

import (
	"github.com/spf13/cobra"

	"vaultsync/internal/adapters/editor"
	"vaultsync/internal/config"
	"vaultsync/internal/ui"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the config file in your editor",
	RunE:  runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	path, err := resolveConfigPath()
	if err != nil {
		return err
	}

	if err := editor.NewOpener().OpenFile(path); err != nil {
		return err
	}

	// Re-check the file so mistakes surface now, not on the next commit.
	if _, err := config.Load(path); err != nil {
		ui.Warning(err.Error())
		return nil
	}
	ui.Success("Config valid")
	return nil
}
