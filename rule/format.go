package rule

import (
	"strconv"
	"strings"
)

var quoteReplacer = strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`, "\r", `\r`, "\t", `\t`)

// Format renders rule body in grammar description syntax.
// Named rules nested in r are rendered by name.
func Format(r Rule) string {
	return format(r, false)
}

// FormatDefinition renders named rule as a grammar description statement:
// "Name := 'text';" for terminals and "Name ::= body;" for other rules.
func FormatDefinition(r Rule) string {
	switch r.(type) {
	case *Literal, *Char:
		return r.Name() + " := " + format(r, false) + ";"
	default:
		return r.Name() + " ::= " + format(r, false) + ";"
	}
}

// FormatNamespace renders all rules of ns in definition order, one per line.
func FormatNamespace(ns *Namespace) string {
	var b strings.Builder
	for _, name := range ns.names {
		b.WriteString(FormatDefinition(ns.rules[name]))
		b.WriteByte('\n')
	}
	return b.String()
}

func quote(s string) string {
	return "'" + quoteReplacer.Replace(s) + "'"
}

func format(r Rule, nested bool) string {
	if _, isRef := r.(*Reference); nested && !isRef && r.Name() != "" {
		return r.Name()
	}

	switch r := r.(type) {
	case *Literal:
		if r.isRegexp {
			return "r'" + strings.ReplaceAll(r.pattern, "'", `\'`) + "'"
		}
		return quote(r.pattern)

	case *Char:
		return quote(string(r.char))

	case *Reference:
		return r.target

	case *Alternation:
		alts := make([]string, len(r.alts))
		for i, alt := range r.alts {
			alts[i] = format(alt, false)
		}
		body := strings.Join(alts, " | ")
		if nested {
			return "(" + body + ")"
		}
		return body

	case *Sequence:
		return formatSequence(r)
	}

	return ""
}

func formatSequence(s *Sequence) string {
	items := make([]string, len(s.rules))
	for i, r := range s.rules {
		items[i] = format(r, true)
	}
	body := strings.Join(items, " ")

	if s.atLeast == 1 && s.atMost == 1 {
		return body
	}
	if s.atLeast == 0 && s.atMost == 1 {
		return "[" + body + "]"
	}

	if len(s.rules) != 1 || !isAtom(s.rules[0]) {
		body = "(" + body + ")"
	}
	switch {
	case s.atLeast == 0 && s.atMost == Unbounded:
		return body + "*"
	case s.atLeast == 1 && s.atMost == Unbounded:
		return body + "+"
	case s.atMost == Unbounded:
		return body + "{" + strconv.Itoa(s.atLeast) + "} " + body + "*"
	case s.atLeast == s.atMost:
		return body + "{" + strconv.Itoa(s.atLeast) + "}"
	default:
		return body + "{" + strconv.Itoa(s.atLeast) + ", " + strconv.Itoa(s.atMost) + "}"
	}
}

func isAtom(r Rule) bool {
	if r.Name() != "" {
		return true
	}

	switch r := r.(type) {
	case *Sequence:
		if r.atLeast == 1 && r.atMost == 1 {
			return len(r.rules) == 1 && isAtom(r.rules[0])
		}
		return r.atMost != Unbounded || r.atLeast <= 1
	default:
		return true
	}
}
