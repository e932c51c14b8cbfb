package main

import (
	"github.com/spf13/cobra"
)

func init() {
	crossrefsCmd.AddCommand(crossrefsRebuildCmd)
	crossrefsCmd.AddCommand(crossrefsListCmd)
	rootCmd.AddCommand(crossrefsCmd)
	rootCmd.AddCommand(convertIDCmd)
}

var crossrefsCmd = &cobra.Command{
	Use:   "crossrefs",
	Short: "Manage the PMID/DOI cross-reference index",
}

var crossrefsRebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Rebuild the index from the cached records",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDirective("recreate_cross_refs:")
	},
}

// CrossRefsResponse lists the PMID to DOI mappings.
type CrossRefsResponse struct {
	Count int               `json:"count"`
	Refs  map[string]string `json:"refs"`
}

var crossrefsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all PMID/DOI mappings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, cleanup, err := openPlugin()
		if err != nil {
			exitWithError(ExitConfigError, "opening plugin: %v", err)
		}
		defer cleanup()

		refs, err := p.CrossRefs()
		if err != nil {
			exitWithError(ExitError, "listing crossrefs: %v", err)
		}
		if humanOutput {
			for pmid, doi := range refs {
				outputHuman("%s\t%s\n", pmid, doi)
			}
			return nil
		}
		return outputJSON(CrossRefsResponse{Count: len(refs), Refs: refs})
	},
}

// ConvertResponse is the result of an identifier conversion.
type ConvertResponse struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

var convertIDCmd = &cobra.Command{
	Use:   "convertid <id>",
	Short: "Convert between PMID and DOI using the index",
	Long: `Convert between PMID and DOI using the cross-reference index.

A numeric argument is treated as a PMID and resolved to its DOI;
anything else is treated as a DOI and resolved to its PMID. An
unknown identifier yields an empty result.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, cleanup, err := openPlugin()
		if err != nil {
			exitWithError(ExitConfigError, "opening plugin: %v", err)
		}
		defer cleanup()

		out, err := p.ConvertID(args[0])
		if err != nil {
			exitWithError(ExitError, "converting: %v", err)
		}
		if humanOutput {
			outputHuman("%s\n", out)
			return nil
		}
		return outputJSON(ConvertResponse{Input: args[0], Output: out})
	},
}
