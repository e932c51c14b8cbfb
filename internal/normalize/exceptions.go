package normalize

import (
	"sort"
	"sync"
)

// TitleExceptions is the canonical-casing dictionary applied by
// TitleCase. It is configuration data: extend the list, not the
// control flow. Matching is case-insensitive at token boundaries.
var TitleExceptions = []string{
	// Countries, regions, cities
	"Africa", "America", "Asia", "Australia", "Belgium", "Canada",
	"China", "Europe", "European", "France", "French", "Germany",
	"India", "Italy", "Japan", "Japanese", "Netherlands", "Paris",
	"Spain", "Switzerland", "United Kingdom", "United States", "USA",
	"UK",
	// Organizations
	"CDC", "Cochrane", "EHPAD", "FDA", "HAS", "INSERM", "NIH",
	"UNESCO", "WHO",
	// Disease eponyms and proper names
	"Alzheimer", "Asperger", "Barré", "Bonnet", "Charles Bonnet",
	"Creutzfeldt-Jakob", "Crohn", "Down", "Guillain-Barré",
	"Hodgkin", "Horton", "Huntington", "Korsakoff", "Lewy",
	"Paget", "Parkinson", "Wernicke",
	// Acronyms and technical terms
	"ACE", "ADL", "AIDS", "BPSD", "CT", "COVID", "COVID-19", "DNA",
	"DSM-5", "ECG", "EEG", "HIV", "IADL", "ICU", "IgG", "IgM",
	"MERS", "MMSE", "MRI", "PCR", "QT", "RCT", "RNA", "SARS",
	"SARS-CoV-2", "SSRI",
}

var (
	compiledOnce sync.Once
	compiled     []exception
)

// titleExceptions returns the compiled dictionary, longest entry
// first so "COVID-19" wins over "COVID" where both match.
func titleExceptions() []exception {
	compiledOnce.Do(func() {
		entries := make([]string, len(TitleExceptions))
		copy(entries, TitleExceptions)
		sort.SliceStable(entries, func(i, j int) bool {
			return len(entries[i]) > len(entries[j])
		})
		compiled = make([]exception, len(entries))
		for i, e := range entries {
			compiled[i] = newException(e)
		}
	})
	return compiled
}
