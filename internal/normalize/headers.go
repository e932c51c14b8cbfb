package normalize

// SectionHeaders is the dictionary of known abstract section-header
// phrases, matched case-insensitively when followed by a colon and
// whitespace. Configuration data, like TitleExceptions.
var SectionHeaders = []string{
	"Aim", "Aims", "Aims and objectives",
	"Background", "Background and aims", "Background and objectives",
	"Background and purpose",
	"Clinical relevance", "Clinical rehabilitation impact",
	"Clinical trial registration", "Comparison", "Conclusion",
	"Conclusions", "Conclusions and implications",
	"Conclusions and relevance", "Context",
	"Data collection and analysis", "Data extraction", "Data sources",
	"Data synthesis", "Design", "Design, setting and participants",
	"Discussion", "Eligibility criteria", "Exposures", "Findings",
	"Funding", "Implications", "Importance", "Interpretation",
	"Intervention", "Interventions", "Introduction", "Limitations",
	"Main outcome measures", "Main outcomes and measures",
	"Main results", "Materials and methods",
	"Measurements", "Measurements and main results", "Method",
	"Methodology", "Methods", "Methods and results", "Objective",
	"Objectives", "Outcome measures", "Outcomes", "Participants",
	"Patients", "Patients and methods", "Population", "Purpose",
	"Rationale", "Recent findings", "Registration", "Relevance",
	"Research design and methods", "Results", "Search methods",
	"Selection criteria", "Setting", "Setting and participants",
	"Significance", "Study design", "Study design and methods",
	"Study selection", "Subjects", "Subjects and methods", "Summary",
	"Trial registration",
}
