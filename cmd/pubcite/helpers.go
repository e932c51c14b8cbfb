package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/medwiki/pubcite/internal/cache"
	"github.com/medwiki/pubcite/internal/config"
	"github.com/medwiki/pubcite/internal/ncbi"
	"github.com/medwiki/pubcite/internal/pdfstore"
	"github.com/medwiki/pubcite/internal/plugin"
)

// resolveDataDir picks the data directory: flag, then PUBCITE_DATA,
// then the global config, then .pubcite under the working directory.
func resolveDataDir() string {
	if dataDirFlag != "" {
		return config.ExpandTilde(dataDirFlag)
	}
	if dir := os.Getenv("PUBCITE_DATA"); dir != "" {
		return config.ExpandTilde(dir)
	}
	return config.GetDataDir()
}

// openPlugin assembles the full pipeline. The returned cleanup closes
// the crossref index.
func openPlugin() (*plugin.Plugin, func(), error) {
	_ = godotenv.Load()

	dataDir := resolveDataDir()
	opts, err := config.Load(dataDir)
	if err != nil {
		return nil, nil, err
	}

	store, err := cache.NewStore(config.CachePath(dataDir))
	if err != nil {
		return nil, nil, err
	}

	cross, err := cache.OpenCrossRef(config.CrossRefPath(dataDir))
	if err != nil {
		return nil, nil, err
	}

	pdfs, err := pdfstore.New(dataDir)
	if err != nil {
		cross.Close()
		return nil, nil, err
	}

	var clientOpts []ncbi.ClientOption
	if key := config.GetNCBIAPIKey(); key != "" {
		clientOpts = append(clientOpts, ncbi.WithAPIKey(key))
	}
	client := ncbi.NewClient(clientOpts...)

	p := plugin.New(opts, store, cross, pdfs, client, os.Getenv("PUBCITE_PAGE_URL"))
	cleanup := func() { cross.Close() }
	return p, cleanup, nil
}
