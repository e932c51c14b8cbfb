package main

import (
	"github.com/spf13/cobra"

	"github.com/medwiki/pubcite/internal/config"
)

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsInitCmd)
	rootCmd.AddCommand(settingsCmd)
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Inspect and initialize the plugin settings",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := config.Load(resolveDataDir())
		if err != nil {
			exitWithError(ExitConfigError, "loading settings: %v", err)
		}
		if humanOutput {
			outputHuman("default_command: %s\n", opts.DefaultCommand)
			outputHuman("limit_authors_vancouver: %d\n", opts.AuthorLimit)
			outputHuman("et_al_vancouver: %s\n", opts.EtAlText)
			outputHuman("language: %s\n", opts.Language)
			return nil
		}
		return outputJSON(opts)
	},
}

var settingsInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default settings file to the data directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir := resolveDataDir()
		opts := config.Default()
		if err := opts.Save(dataDir); err != nil {
			exitWithError(ExitError, "saving settings: %v", err)
		}
		if humanOutput {
			outputHuman("wrote %s\n", config.SettingsPath(dataDir))
			return nil
		}
		return outputJSON(map[string]string{"settings": config.SettingsPath(dataDir)})
	},
}
