// Package main provides the pubcite CLI entry point.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

// dataDirFlag overrides the configured data directory
var dataDirFlag string

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pubcite",
	Short: "PubMed citation renderer for wiki pages",
	Long: `pubcite resolves PubMed identifiers into citation fragments.

It fetches MEDLINE records from NCBI, caches them on disk together
with a PMID/DOI cross-reference index, and renders citation strings
(Vancouver, ISO, NPG and list-group blocks) ready to embed in wiki
pages. Commands output JSON by default for easy integration.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data", "", "Data directory (default from config or .pubcite)")
	rootCmd.Version = Version
}
