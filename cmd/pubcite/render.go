package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	renderCmd.Flags().StringVar(&renderBase, "base", "pmid", "Identifier type: pmid or pmcid")
	rootCmd.AddCommand(renderCmd)
}

var renderBase string

var renderCmd = &cobra.Command{
	Use:   "render <directive>",
	Short: "Render a citation directive to HTML",
	Long: `Render a citation directive to an HTML fragment.

The directive is the same "command:ids" string a wiki page embeds:

  pubcite render "vancouver:15924077"
  pubcite render "long_abstract:15924077,25617070"
  pubcite render 15924077

A bare identifier list uses the configured default command.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	p, cleanup, err := openPlugin()
	if err != nil {
		exitWithError(ExitConfigError, "opening plugin: %v", err)
	}
	defer cleanup()

	directive := args[0]
	html, err := p.Execute(context.Background(), renderBase, directive)
	if err != nil {
		exitWithError(ExitError, "rendering: %v", err)
	}

	name, _, _ := strings.Cut(directive, ":")
	if humanOutput {
		outputHuman("%s\n", html)
		return nil
	}
	return outputJSON(HTMLResponse{Command: name, HTML: html})
}
