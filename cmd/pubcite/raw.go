package main

import (
	"context"

	"github.com/spf13/cobra"
)

func init() {
	rawCmd.Flags().StringVar(&rawBase, "base", "pmid", "Identifier type: pmid or pmcid")
	rootCmd.AddCommand(rawCmd)
}

var rawBase string

// RawResponse carries one raw MEDLINE record.
type RawResponse struct {
	ID  string `json:"id"`
	Raw string `json:"raw"`
}

var rawCmd = &cobra.Command{
	Use:   "raw <id>",
	Short: "Print the raw MEDLINE record for an identifier",
	Long: `Print the raw MEDLINE record, fetching and caching it when missing.

Example:
  pubcite raw 15924077`,
	Args: cobra.ExactArgs(1),
	RunE: runRaw,
}

func runRaw(cmd *cobra.Command, args []string) error {
	p, cleanup, err := openPlugin()
	if err != nil {
		exitWithError(ExitConfigError, "opening plugin: %v", err)
	}
	defer cleanup()

	id := args[0]
	raw, err := p.RawRecord(context.Background(), rawBase, id)
	if err != nil {
		exitWithError(ExitNotFound, "fetching record: %v", err)
	}
	if raw == "" {
		exitWithError(ExitNotFound, "no record for %s", id)
	}

	if humanOutput {
		outputHuman("%s", raw)
		return nil
	}
	return outputJSON(RawResponse{ID: id, Raw: raw})
}
