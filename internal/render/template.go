// Package render turns composed citation fields into the HTML
// fragments embedded in wiki pages.
package render

import "strings"

// segmentKind discriminates template segments.
type segmentKind int

const (
	literalSegment segmentKind = iota
	tokenSegment
)

type segment struct {
	kind segmentKind
	text string // literal text, or the token name without delimiters
}

// parseTemplate splits a template into literal and token segments in a
// single pass. A token is a known name bounded by '%' on both sides;
// anything else, including a lone '%' or an unknown name, stays
// literal. Text identical to a token name is never substituted unless
// delimited.
func parseTemplate(tpl string, known func(string) bool) []segment {
	var segs []segment
	var lit strings.Builder

	for i := 0; i < len(tpl); {
		c := tpl[i]
		if c != '%' {
			lit.WriteByte(c)
			i++
			continue
		}
		end := strings.IndexByte(tpl[i+1:], '%')
		if end < 0 {
			lit.WriteString(tpl[i:])
			break
		}
		name := tpl[i+1 : i+1+end]
		if name == "" || !known(name) {
			// Not a token. Keep the '%' and rescan from the next
			// character so a token starting inside is still found.
			lit.WriteByte('%')
			i++
			continue
		}
		if lit.Len() > 0 {
			segs = append(segs, segment{literalSegment, lit.String()})
			lit.Reset()
		}
		segs = append(segs, segment{tokenSegment, name})
		i += end + 2
	}
	if lit.Len() > 0 {
		segs = append(segs, segment{literalSegment, lit.String()})
	}
	return segs
}

// hasToken reports whether the template contains the named token.
func hasToken(segs []segment, name string) bool {
	for _, s := range segs {
		if s.kind == tokenSegment && s.text == name {
			return true
		}
	}
	return false
}
