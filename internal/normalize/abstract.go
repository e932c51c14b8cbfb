package normalize

import (
	"regexp"
	"strings"
	"sync"
)

// AbstractFormat selects the markup inserted before recognized
// section headers.
type AbstractFormat int

const (
	AbstractWiki AbstractFormat = iota
	AbstractHTML
)

// abstractGlueDefect is a known input defect where the feed glues the
// word ABSTRACT onto the first section header with no separator.
const abstractGlueDefect = "ABSTRACTObjectives:"

// NormalizeAbstract inserts a paragraph break and bold wrapping
// before every recognized section header of a free-text abstract.
// Headers are matched case-insensitively, followed by whitespace, and
// longest-phrase-first so "Study design and methods:" is not
// pre-empted by the shorter "Methods:" rule.
func NormalizeAbstract(abstract string, format AbstractFormat) string {
	if abstract == "" {
		return ""
	}
	s := strings.ReplaceAll(abstract, abstractGlueDefect, "Objectives:")

	var brk, openTag, closeTag string
	switch format {
	case AbstractHTML:
		brk, openTag, closeTag = "<br/><br/>", "<b>", "</b>"
	default:
		brk, openTag, closeTag = "\n\n", "**", "**"
	}

	for _, h := range sectionHeaders() {
		s = h.re.ReplaceAllString(s, brk+openTag+h.canonical+":"+closeTag+" ")
	}

	s = strings.TrimPrefix(s, brk)
	return strings.TrimSpace(s)
}

type sectionHeader struct {
	canonical string
	re        *regexp.Regexp
}

var (
	headersOnce     sync.Once
	headersCompiled []sectionHeader
)

// sectionHeaders returns the compiled header rules ordered by word
// count descending, then by length, so multi-word headers match
// before any of their trailing words.
func sectionHeaders() []sectionHeader {
	headersOnce.Do(func() {
		entries := make([]string, len(SectionHeaders))
		copy(entries, SectionHeaders)
		sortHeaders(entries)
		headersCompiled = make([]sectionHeader, len(entries))
		for i, e := range entries {
			re := regexp.MustCompile(`(?i)(?:^|\s)` + regexp.QuoteMeta(e) + `:\s+`)
			headersCompiled[i] = sectionHeader{canonical: e, re: re}
		}
	})
	return headersCompiled
}

func sortHeaders(entries []string) {
	words := func(s string) int { return len(strings.Fields(s)) }
	for i := 1; i < len(entries); i++ {
		for j := i; j > 0; j-- {
			a, b := entries[j-1], entries[j]
			if words(b) > words(a) || (words(b) == words(a) && len(b) > len(a)) {
				entries[j-1], entries[j] = b, a
			}
		}
	}
}
