package main

import (
	"context"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(addTTCmd)
	rootCmd.AddCommand(addHashCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(selfTestCmd)
}

var addTTCmd = &cobra.Command{
	Use:   "addtt <pmid> <translated title>",
	Short: "Attach a translated title to a cached record",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDirective("addtt:" + args[0] + "|" + args[1])
	},
}

var addHashCmd = &cobra.Command{
	Use:   "addhash <pmid> <tags>",
	Short: "Attach comma-separated hashtags to a cached record",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDirective("addhash_fr:" + args[0] + "|" + args[1])
	},
}

// SearchResponse carries a PubMed query link.
type SearchResponse struct {
	Terms string `json:"terms"`
	HTML  string `json:"html"`
}

var searchCmd = &cobra.Command{
	Use:   "search <terms>",
	Short: "Render a PubMed search link",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, cleanup, err := openPlugin()
		if err != nil {
			exitWithError(ExitConfigError, "opening plugin: %v", err)
		}
		defer cleanup()

		terms := args[0]
		for _, a := range args[1:] {
			terms += " " + a
		}
		html, err := p.Execute(context.Background(), "pmid", "search:"+terms)
		if err != nil {
			exitWithError(ExitError, "%v", err)
		}
		if humanOutput {
			outputHuman("%s\n", html)
			return nil
		}
		return outputJSON(SearchResponse{Terms: terms, HTML: html})
	},
}

var selfTestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "Run the built-in parsing self test",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDirective("test:")
	},
}
