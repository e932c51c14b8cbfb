package normalize

import (
	"regexp"
	"strings"
	"unicode"
)

// acronymRe finds maximal runs of two or more uppercase letters in
// the original title so they survive the lowering pass.
var acronymRe = regexp.MustCompile(`\p{Lu}{2,}`)

// TitleCase rewrites a title into sentence case for "full" style
// citations. The whole title is lowered, acronyms present in the
// original are restored, the exception dictionary is applied, and the
// first letter of every sentence is re-capitalized.
func TitleCase(title string) string {
	if title == "" {
		return ""
	}
	allUpper := title == strings.ToUpper(title)
	s := strings.ToLower(title)

	// Acronyms embedded in a mixed-case title survive the lowering; a
	// fully uppercase title carries no casing signal to preserve.
	if !allUpper {
		seen := map[string]bool{}
		for _, acr := range acronymRe.FindAllString(title, -1) {
			if seen[acr] {
				continue
			}
			seen[acr] = true
			s = replaceBounded(s, strings.ToLower(acr), acr)
		}
	}

	for _, exc := range titleExceptions() {
		s = exc.applyLowered(s)
		s = exc.applyCapitalized(s)
		s = exc.applyAnchored(s)
	}

	return capitalizeSentences(s)
}

// exception is one canonical-cased dictionary entry with its three
// precompiled match shapes. The tiers are kept as explicit named
// steps so behavior stays auditable against the fixture list.
type exception struct {
	canonical string
	lowered   *regexp.Regexp // boundary match of the fully lowered form
	capital   *regexp.Regexp // boundary match of the First-letter form
	anchored  *regexp.Regexp // start-of-string anchor, case-insensitive
}

func newException(canonical string) exception {
	q := regexp.QuoteMeta(strings.ToLower(canonical))
	qc := regexp.QuoteMeta(firstUpper(strings.ToLower(canonical)))
	return exception{
		canonical: canonical,
		lowered:   regexp.MustCompile(`(^|[^\p{L}\p{N}])` + q + `($|[^\p{L}\p{N}])`),
		capital:   regexp.MustCompile(`(^|[^\p{L}\p{N}])` + qc + `($|[^\p{L}\p{N}])`),
		anchored:  regexp.MustCompile(`(?i)^` + q + `($|[^\p{L}\p{N}])`),
	}
}

func (e exception) applyLowered(s string) string {
	return e.lowered.ReplaceAllString(s, "${1}"+e.canonical+"${2}")
}

func (e exception) applyCapitalized(s string) string {
	return e.capital.ReplaceAllString(s, "${1}"+e.canonical+"${2}")
}

func (e exception) applyAnchored(s string) string {
	return e.anchored.ReplaceAllString(s, e.canonical+"${1}")
}

// replaceBounded rewrites every token-bounded occurrence of from with
// to, where a boundary is the string edge or any non-alphanumeric.
func replaceBounded(s, from, to string) string {
	re := regexp.MustCompile(`(^|[^\p{L}\p{N}])` + regexp.QuoteMeta(from) + `($|[^\p{L}\p{N}])`)
	return re.ReplaceAllString(s, "${1}"+to+"${2}")
}

// capitalizeSentences uppercases the first letter of the string and
// of every sentence following ". " or "? ".
func capitalizeSentences(s string) string {
	runes := []rune(s)
	pending := true
	for i, r := range runes {
		switch {
		case pending && unicode.IsLetter(r):
			runes[i] = unicode.ToUpper(r)
			pending = false
		case pending && unicode.IsNumber(r):
			pending = false
		case (r == '.' || r == '?') && i+1 < len(runes) && runes[i+1] == ' ':
			pending = true
		}
	}
	return string(runes)
}

func firstUpper(s string) string {
	for i, r := range s {
		return string(unicode.ToUpper(r)) + s[i+len(string(r)):]
	}
	return s
}
