package citation

import "strings"

// TruncateAuthors joins the first limit authors with commas and
// appends the et-al marker when the list was cut. A limit of zero or
// less disables truncation entirely.
func TruncateAuthors(authors []string, limit int, etAl string) string {
	if len(authors) == 0 {
		return ""
	}
	use := authors
	cut := false
	if limit > 0 && len(authors) > limit {
		use = authors[:limit]
		cut = true
	}
	s := strings.Join(use, ", ")
	if cut && etAl != "" {
		s += " " + etAl
	}
	return s
}
