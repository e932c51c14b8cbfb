package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/medwiki/pubcite/internal/pdfstore"
)

func init() {
	pdfCmd.AddCommand(pdfListCmd)
	pdfCmd.AddCommand(pdfAddCmd)
	pdfCmd.AddCommand(pdfPendingCmd)
	rootCmd.AddCommand(pdfCmd)
}

var pdfCmd = &cobra.Command{
	Use:   "pdf",
	Short: "Manage locally stored article PDFs",
}

// PDFListResponse lists the stored PDFs by identifier space.
type PDFListResponse struct {
	PMIDs []string `json:"pmids"`
	DOIs  []string `json:"dois"`
}

var pdfListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored PDFs by PMID and DOI",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pdfs, err := pdfstore.New(resolveDataDir())
		if err != nil {
			exitWithError(ExitConfigError, "opening pdf store: %v", err)
		}
		pmids, err := pdfs.PMIDs()
		if err != nil {
			exitWithError(ExitError, "listing pdfs: %v", err)
		}
		dois, err := pdfs.DOIs()
		if err != nil {
			exitWithError(ExitError, "listing pdfs: %v", err)
		}
		if humanOutput {
			for _, id := range pmids {
				outputHuman("pmid\t%s\n", id)
			}
			for _, id := range dois {
				outputHuman("doi\t%s\n", id)
			}
			return nil
		}
		return outputJSON(PDFListResponse{PMIDs: pmids, DOIs: dois})
	},
}

// PDFAddResponse reports where an ingested PDF was filed.
type PDFAddResponse struct {
	File string `json:"file"`
	DOI  string `json:"doi,omitempty"`
	PMID string `json:"pmid,omitempty"`
}

var pdfAddPMID string

var pdfAddCmd = &cobra.Command{
	Use:   "add <file.pdf>",
	Short: "File a PDF into the store",
	Long: `File a PDF into the store.

The opening pages are scanned for a DOI; when one is found the file is
stored under doi_pdf/, otherwise --pmid is required and the file goes
to pmid_pdf/.`,
	Args: cobra.ExactArgs(1),
	RunE: runPDFAdd,
}

func init() {
	pdfAddCmd.Flags().StringVar(&pdfAddPMID, "pmid", "", "PMID to file under when no DOI is found")
}

func runPDFAdd(cmd *cobra.Command, args []string) error {
	path := args[0]
	pdfs, err := pdfstore.New(resolveDataDir())
	if err != nil {
		exitWithError(ExitConfigError, "opening pdf store: %v", err)
	}

	doi, err := pdfstore.HarvestDOI(path)
	if err != nil {
		exitWithError(ExitDataError, "reading %s: %v", filepath.Base(path), err)
	}

	f, err := os.Open(path)
	if err != nil {
		exitWithError(ExitError, "opening %s: %v", path, err)
	}
	defer f.Close()

	resp := PDFAddResponse{File: filepath.Base(path)}
	switch {
	case doi != "":
		if err := pdfs.PutDOI(doi, f); err != nil {
			exitWithError(ExitError, "storing pdf: %v", err)
		}
		resp.DOI = doi
	case pdfAddPMID != "":
		if err := pdfs.PutPMID(pdfAddPMID, f); err != nil {
			exitWithError(ExitError, "storing pdf: %v", err)
		}
		resp.PMID = pdfAddPMID
	default:
		exitWithError(ExitDataError, "no DOI found in %s; pass --pmid", filepath.Base(path))
	}

	if humanOutput {
		if resp.DOI != "" {
			outputHuman("filed %s under doi %s\n", resp.File, resp.DOI)
		} else {
			outputHuman("filed %s under pmid %s\n", resp.File, resp.PMID)
		}
		return nil
	}
	return outputJSON(resp)
}

var pdfPendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "Render articles that have a PDF but no cached record",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDirective("full_pdf_list:")
	},
}
