// Package normalize post-processes parsed bibliographic fields:
// author names, title casing, page ranges and abstract sections.
package normalize

import (
	"strings"
	"unicode"
)

// AuthorName normalizes a full author name to a "Surname II" display
// token. Two input shapes are accepted: "Surname, Given Name" and
// "Surname Initials". Values without a comma are assumed to already
// carry initials and only get their casing fixed.
func AuthorName(name string) string {
	surname, given, ok := strings.Cut(name, ",")
	if !ok {
		fields := strings.Fields(name)
		if len(fields) < 2 {
			return NameCase(strings.TrimSpace(name))
		}
		last := fields[len(fields)-1]
		return NameCase(strings.Join(fields[:len(fields)-1], " ")) + " " + strings.ToUpper(last)
	}
	surname = NameCase(strings.TrimSpace(surname))
	initials := Initials(strings.TrimSpace(given))
	if initials == "" {
		return surname
	}
	return surname + " " + initials
}

// Initials reduces a given name to the concatenated first letter of
// each whitespace-separated word. Rune-aware so accented initials
// survive.
func Initials(given string) string {
	var b strings.Builder
	for _, word := range strings.Fields(given) {
		for _, r := range word {
			b.WriteRune(unicode.ToUpper(r))
			break
		}
	}
	return b.String()
}

// NameCase converts a fully uppercase name token to title case,
// treating hyphens and apostrophes as word boundaries. Mixed-case
// input is assumed correct and returned untouched.
func NameCase(name string) string {
	if name == "" || name != strings.ToUpper(name) || !strings.ContainsFunc(name, unicode.IsLetter) {
		return name
	}
	runes := []rune(strings.ToLower(name))
	atStart := true
	for i, r := range runes {
		if atStart && unicode.IsLetter(r) {
			runes[i] = unicode.ToUpper(r)
			atStart = false
			continue
		}
		if r == '-' || r == '\'' || r == ' ' {
			atStart = true
		}
	}
	return string(runes)
}
