package calculator

import (
	"regexp"
	"strings"
)

// textPattern matches any of several language alternatives, each with one capture group.
type textPattern struct {
	re *regexp.Regexp
}

func bilingual(alternatives ...string) textPattern {
	return textPattern{re: regexp.MustCompile(strings.Join(alternatives, "|"))}
}

// find returns the captured value of the leftmost match.
func (p textPattern) find(text string) (string, bool) {
	m := p.re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return firstGroup(m), true
}

// findAll returns the captured value of every match, in text order.
func (p textPattern) findAll(text string) []string {
	matches := p.re.FindAllStringSubmatch(text, -1)
	values := make([]string, 0, len(matches))
	for _, m := range matches {
		values = append(values, firstGroup(m))
	}
	return values
}

func firstGroup(match []string) string {
	for _, g := range match[1:] {
		if g != "" {
			return g
		}
	}
	return ""
}

// markerChoice maps a set of substrings to the value chosen when any of them is present.
type markerChoice struct {
	markers []string
	value   string
}

// markerRule picks the first choice whose markers occur in the text. Choices are listed in
// priority order, so the order of the slice is the tie-break.
type markerRule struct {
	choices  []markerChoice
	fallback string
	fold     bool
}

func (r markerRule) resolve(text string) string {
	if r.fold {
		text = strings.ToLower(text)
	}
	for _, c := range r.choices {
		if containsAny(text, c.markers) {
			return c.value
		}
	}
	return r.fallback
}
