package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"vaultsync/internal/adapters/git"
	"vaultsync/internal/ui"
)

var hookName string

var hookCmd = &cobra.Command{
	Use:   "hook",
	Short: "Manage the git hook that syncs after every commit",
}

var hookInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the sync hook",
	Long: `Install a hook that runs 'vaultsync sync --quiet' after every commit,
recording failures in .git/` + git.ErrorLogName + `.

An existing hook script is preserved: the sync line lives between marker
comments and is replaced in place on reinstall.`,
	RunE: runHookInstall,
}

var hookUninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove the sync hook",
	RunE:  runHookUninstall,
}

var hookStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report whether the sync hook is installed",
	RunE:  runHookStatus,
}

func init() {
	rootCmd.AddCommand(hookCmd)
	hookCmd.AddCommand(hookInstallCmd)
	hookCmd.AddCommand(hookUninstallCmd)
	hookCmd.AddCommand(hookStatusCmd)
	hookCmd.PersistentFlags().StringVar(&hookName, "hook", "post-commit", "hook to manage")
}

func runHookInstall(cmd *cobra.Command, args []string) error {
	// Fail now rather than on every future commit.
	if _, err := loadConfig(); err != nil {
		return err
	}

	path, err := git.NewClient("").InstallHook(cmd.Context(), git.HookOptions{
		Hook:       hookName,
		ConfigPath: configPath,
	})
	if err != nil {
		return err
	}

	ui.Success(fmt.Sprintf("Installed %s hook at %s", hookName, path))
	return nil
}

func runHookUninstall(cmd *cobra.Command, args []string) error {
	removed, err := git.NewClient("").UninstallHook(cmd.Context(), hookName)
	if err != nil {
		return err
	}

	if removed {
		ui.Success(fmt.Sprintf("Removed vaultsync from the %s hook", hookName))
	} else {
		ui.Info(fmt.Sprintf("No vaultsync block in the %s hook", hookName))
	}
	return nil
}

func runHookStatus(cmd *cobra.Command, args []string) error {
	path, installed, err := git.NewClient("").HookInstalled(cmd.Context(), hookName)
	if err != nil {
		return err
	}

	if installed {
		ui.Success(fmt.Sprintf("%s hook installed at %s", hookName, path))
	} else {
		ui.Info(fmt.Sprintf("%s hook not installed (run 'vaultsync hook install')", hookName))
	}
	return nil
}
