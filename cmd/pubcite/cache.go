package main

import (
	"context"

	"github.com/spf13/cobra"
)

func init() {
	cacheCmd.AddCommand(cacheListCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheRemoveDirCmd)
	rootCmd.AddCommand(cacheCmd)
}

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the raw record cache",
}

// CacheListResponse lists the cached identifiers.
type CacheListResponse struct {
	Count int      `json:"count"`
	IDs   []string `json:"ids"`
}

var cacheListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cached identifiers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, cleanup, err := openPlugin()
		if err != nil {
			exitWithError(ExitConfigError, "opening plugin: %v", err)
		}
		defer cleanup()

		ids, err := p.CachedIDs()
		if err != nil {
			exitWithError(ExitError, "listing cache: %v", err)
		}
		if humanOutput {
			for _, id := range ids {
				outputHuman("%s\n", id)
			}
			return nil
		}
		return outputJSON(CacheListResponse{Count: len(ids), IDs: ids})
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every cached record, keeping the directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDirective("clear_raw_medline:")
	},
}

var cacheRemoveDirCmd = &cobra.Command{
	Use:   "remove-dir",
	Short: "Delete the whole cache directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDirective("remove_dir:")
	},
}

// runDirective executes a control directive and prints its message.
func runDirective(directive string) error {
	p, cleanup, err := openPlugin()
	if err != nil {
		exitWithError(ExitConfigError, "opening plugin: %v", err)
	}
	defer cleanup()

	msg, err := p.Execute(context.Background(), "pmid", directive)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}
	if humanOutput {
		outputHuman("%s\n", msg)
		return nil
	}
	return outputJSON(map[string]string{"message": msg})
}
