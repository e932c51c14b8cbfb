package main

import (
	"context"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/medwiki/pubcite/internal/config"
	"github.com/medwiki/pubcite/internal/medline"
	"github.com/medwiki/pubcite/internal/ncbi"
)

func init() {
	rootCmd.AddCommand(summaryCmd)
}

// SummaryResponse carries the record parsed from the EFetch XML
// summary.
type SummaryResponse struct {
	ID     string          `json:"id"`
	Record *medline.Record `json:"record"`
}

var summaryCmd = &cobra.Command{
	Use:   "summary <pmid>",
	Short: "Fetch and parse the EFetch XML summary for a PMID",
	Long: `Fetch the EFetch XML summary and print the parsed record.

The XML feed is an alternative to the MEDLINE format served by the
citation exporter; the parsed fields are the same either way.

Example:
  pubcite summary 15924077`,
	Args: cobra.ExactArgs(1),
	RunE: runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	var clientOpts []ncbi.ClientOption
	if key := config.GetNCBIAPIKey(); key != "" {
		clientOpts = append(clientOpts, ncbi.WithAPIKey(key))
	}
	client := ncbi.NewClient(clientOpts...)

	pmid := args[0]
	data, err := client.FetchSummaryXML(context.Background(), pmid)
	if err != nil {
		if ncbi.IsNotFound(err) {
			exitWithError(ExitNotFound, "no record for %s", pmid)
		}
		exitWithError(ExitError, "fetching summary: %v", err)
	}

	rec, err := ncbi.ParseSummaryXML(data)
	if err != nil {
		exitWithError(ExitDataError, "parsing summary: %v", err)
	}
	if !rec.HasPMID() {
		exitWithError(ExitNotFound, "no record for %s", pmid)
	}

	if humanOutput {
		outputHuman("%s. %s %s.\n", rec.Title, rec.JournalISO, rec.Year)
		return nil
	}
	return outputJSON(SummaryResponse{ID: pmid, Record: rec})
}
