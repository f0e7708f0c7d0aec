package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"vaultsync/internal/adapters/filesystem"
	"vaultsync/internal/config"
	"vaultsync/internal/ui"
)

var (
	configPath string
	verbose    bool

	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "vaultsync",
	Short: "Mirror repository Markdown into an Obsidian vault",
	Long: `vaultsync copies Markdown documentation from a repository into an
Obsidian vault and runs the project's linters, typically from a git
post-commit hook.

What gets copied where is driven by a .vaultsync.json (or .vaultsync.yaml)
file in the repository root. Run 'vaultsync init' to create one.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		logger = ui.NewLogger(os.Stderr, verbose)
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to the sync config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// resolveConfigPath picks the config file: the --config flag if given,
// otherwise the VAULTSYNC_CONFIG environment variable or the default names
// in the current directory.
func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.DefaultPath(".")
}

func loadConfig() (*config.File, error) {
	path, err := resolveConfigPath()
	if err != nil {
		return nil, err
	}
	return config.Load(path)
}

// newSyncer builds the filesystem sync engine for a loaded configuration.
func newSyncer(cfg *config.File) *filesystem.Syncer {
	return filesystem.NewSyncer(cfg.TargetVault, cfg.DomainMappings(), cfg.DomainOptions())
}
