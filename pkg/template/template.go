// Package template implements prompt template rendering and its inverse:
// matching a concrete prompt against a {{var}} template to recover the
// variable bindings.
package template

import (
	"fmt"
	"regexp"
	"strings"
)

// placeholderRe matches {{var_name}} placeholders. Surrounding whitespace
// inside the braces is tolerated on render and ignored for the name.
var placeholderRe = regexp.MustCompile(`\{\{\s*([A-Za-z_][A-Za-z0-9_]*)\s*\}\}`)

// MatchResult is the outcome of matching a candidate against a template.
type MatchResult struct {
	Matched   bool
	Variables map[string]string
}

// Vars returns the placeholder names of a template in encounter order,
// without duplicates.
func Vars(tmpl string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, m := range placeholderRe.FindAllStringSubmatch(tmpl, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return names
}

// Render substitutes {{k}} placeholders with vars[k]. It returns an error
// naming the first placeholder that has no binding.
func Render(tmpl string, vars map[string]string) (string, error) {
	var missing string
	out := placeholderRe.ReplaceAllStringFunc(tmpl, func(ph string) string {
		name := placeholderRe.FindStringSubmatch(ph)[1]
		v, ok := vars[name]
		if !ok && missing == "" {
			missing = name
		}
		return v
	})
	if missing != "" {
		return "", fmt.Errorf("missing variable %s", missing)
	}
	return out, nil
}

// segment is one literal or placeholder piece of a compiled template.
type segment struct {
	literal string // non-empty for literal segments
	name    string // non-empty for placeholder segments
}

func segments(tmpl string) []segment {
	var segs []segment
	rest := tmpl
	for {
		loc := placeholderRe.FindStringSubmatchIndex(rest)
		if loc == nil {
			if rest != "" {
				segs = append(segs, segment{literal: rest})
			}
			return segs
		}
		if loc[0] > 0 {
			segs = append(segs, segment{literal: rest[:loc[0]]})
		}
		segs = append(segs, segment{name: rest[loc[2]:loc[3]]})
		rest = rest[loc[1]:]
	}
}

// Match checks whether candidate was produced by rendering tmpl and, if so,
// recovers the variable bindings.
//
// The template is segmented into literal fragments separated by placeholders;
// every literal must appear in order, and the substring between consecutive
// literals binds to the placeholder. Placeholders are matched lazily so the
// result is deterministic; when two placeholders are adjacent and a literal
// follows, the first placeholder takes a non-empty prefix and the second the
// remainder, and with no following literal the first binds empty.
// Newlines are literal; regex metacharacters in literals are escaped.
func Match(tmpl, candidate string) MatchResult {
	segs := segments(tmpl)
	if len(segs) == 0 {
		return MatchResult{Matched: candidate == "", Variables: map[string]string{}}
	}

	var b strings.Builder
	b.WriteString(`(?s)\A`)
	for i, seg := range segs {
		if seg.literal != "" {
			b.WriteString(regexp.QuoteMeta(seg.literal))
			continue
		}
		switch {
		case i == len(segs)-1:
			// Trailing placeholder takes the full remainder.
			b.WriteString(`(.*)`)
		case segs[i+1].name != "" && hasLiteralAfter(segs, i):
			// Adjacent placeholders with a literal ahead: non-empty prefix.
			b.WriteString(`(.+?)`)
		default:
			b.WriteString(`(.*?)`)
		}
	}
	b.WriteString(`\z`)

	re, err := regexp.Compile(b.String())
	if err != nil {
		return MatchResult{Matched: false}
	}
	m := re.FindStringSubmatch(candidate)
	if m == nil {
		return MatchResult{Matched: false}
	}

	vars := make(map[string]string)
	gi := 1
	for _, seg := range segs {
		if seg.name != "" {
			vars[seg.name] = m[gi]
			gi++
		}
	}
	return MatchResult{Matched: true, Variables: vars}
}

func hasLiteralAfter(segs []segment, i int) bool {
	for _, seg := range segs[i+1:] {
		if seg.literal != "" {
			return true
		}
	}
	return false
}
