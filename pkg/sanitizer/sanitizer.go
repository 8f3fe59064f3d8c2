package sanitizer

import (
	"regexp"
	"strings"
	"unicode"
)

type Strategy func(string) string

type Pipeline []Strategy

func (p Pipeline) Apply(s string) string {
	for _, fn := range p {
		s = fn(s)
	}
	return s
}

var (
	rePhoneKeep = regexp.MustCompile(`[^0-9+]`)
)

func trim(s string) string {
	return strings.TrimSpace(s)
}

func collapseWhitespace(s string) string {
	var result strings.Builder
	var lastWasSpace bool

	for _, r := range s {
		if unicode.IsSpace(r) {
			if !lastWasSpace {
				result.WriteRune(' ')
				lastWasSpace = true
			}
		} else {
			result.WriteRune(r)
			lastWasSpace = false
		}
	}

	return result.String()
}

func stripWhitespace(s string) string {
	var result strings.Builder
	for _, r := range s {
		if !unicode.IsSpace(r) {
			result.WriteRune(r)
		}
	}
	return result.String()
}

func titleCase(s string) string {
	words := strings.Split(strings.ToLower(s), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// SanitizeName normalizes a person's name: trimmed, inner whitespace
// collapsed, each word title-cased.
func SanitizeName(input string) string {
	p := Pipeline{
		trim,
		collapseWhitespace,
		titleCase,
	}
	return p.Apply(input)
}

// SanitizePhone keeps digits and a leading plus sign, dropping spaces,
// dashes and parentheses. A plus anywhere but the front is removed.
func SanitizePhone(input string) string {
	p := Pipeline{
		trim,
		func(s string) string {
			cleaned := rePhoneKeep.ReplaceAllString(s, "")
			if cleaned == "" {
				return ""
			}
			rest := strings.ReplaceAll(cleaned[1:], "+", "")
			return string(cleaned[0]) + rest
		},
	}
	return p.Apply(input)
}

// SanitizeToken trims and removes all whitespace. Used for identifiers the
// client sends verbatim: machine ids, dates, start times.
func SanitizeToken(input string) string {
	p := Pipeline{
		trim,
		stripWhitespace,
	}
	return p.Apply(input)
}
