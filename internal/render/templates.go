package render

// Templates is the builtin output template set, keyed by command name.
// The "user" entry is installed at runtime from the configuration.
var Templates = map[string]string{
	"short":                "%first_author%. %iso%. %pmid% %pmcid% %journal_url% %pmc_url%",
	"long":                 "%authors%. %title%. %iso%. %pmid% %pmcid% %journal_url% %pmc_url%",
	"long_tt":              "%authors%. %title_tt%. %iso%. %pmid% %pmcid% %journal_url% %pmc_url%",
	"long_pdf":             "%authors%. %title%. %iso%. %pmid% %pmcid% %journal_url% %pmc_url% %localpdf% %tweet%",
	"long_tt_pdf":          "%authors%. %title_tt%. %iso%. %pmid% %pmcid% %journal_url% %pmc_url% %localpdf% %tweet%",
	"long_abstract":        "%authors%. %title%. %iso%. %pmid% %pmcid% %journal_url% %pmc_url% %abstract% %abstract_fr% %pmid% %doi% %tweet%",
	"long_tt_abstract":     "%authors%. %title_tt%. %iso%. %pmid% %pmcid% %journal_url% %pmc_url% %abstract% %abstract_fr% %pmid% %doi% %tweet%",
	"long_abstract_pdf":    "%authors%. %title%. %iso%. %pmid% %pmcid% %journal_url% %pmc_url% %abstract% %abstract_fr% %pmid% %doi% %localpdf%",
	"long_tt_abstract_pdf": "%authors%. %title_tt%. %iso%. %pmid% %pmcid% %journal_url% %pmc_url% %abstract% %abstract_fr% %pmid% %doi% %localpdf%",
	"vancouver":            "%vancouver%",
	"vancouver_links":      "%vancouver% %pmid% %pmcid% %pmc_url%",
	"npg":                  "%authors_limit_3% %title_tt%. %npg_iso%.",
	"npg_full":             "%npg_full%",
	"gpnv_full":            "%gpnv_full%",
	"authors":              "%authors%",
	"title":                "%title%",
	"year":                 "%year%",
	"date":                 "%month% %year%",
	"journal":              "%journal_title%",
	"journaliso":           "%journal_iso%",
	"doi_link":             "%doi% %journal_url%",
	"listgroup":            "%listgroup%",
}

// tokenNames is the full substitution vocabulary. Names outside this
// set stay literal in the output.
var tokenNames = map[string]bool{
	"authors":         true,
	"authors_limit_3": true,
	"first_author":    true,
	"collectif":       true,
	"title":           true,
	"title_tt":        true,
	"type":            true,
	"lang":            true,
	"iso":             true,
	"vancouver":       true,
	"npg_iso":         true,
	"npg_full":        true,
	"gpnv_full":       true,
	"journal_iso":     true,
	"journal_title":   true,
	"vol":             true,
	"issue":           true,
	"pages":           true,
	"year":            true,
	"month":           true,
	"pmid":            true,
	"pmcid":           true,
	"doi":             true,
	"pmid_url":        true,
	"pmcid_url":       true,
	"doi_url":         true,
	"journal_url":     true,
	"pmc_url":         true,
	"abstract":        true,
	"abstract_wiki":   true,
	"abstract_html":   true,
	"abstract_fr":     true,
	"mesh":            true,
	"keywords":        true,
	"hashtags":        true,
	"localpdf":        true,
	"tweet":           true,
	"listgroup":       true,
}

func knownToken(name string) bool { return tokenNames[name] }
