package urlutil

import "strings"

const namedGroupPrefix = "(?P<"

// AnalyzeNamedPattern scans a regular expression source left to right and
// returns the raw sub-pattern text of each named capture group, keyed by
// group name. Nested groups stay part of the enclosing group's text, and
// escaped characters never affect parenthesis depth, so an escaped closing
// paren does not terminate a group early.
//
// The pattern is assumed to compile; pre-validate with regexp.Compile.
func AnalyzeNamedPattern(pattern string) map[string]string {
	groups := make(map[string]string)

	type openGroup struct {
		name  string
		start int
		depth int
	}

	var open []openGroup
	depth := 0

	for i := 0; i < len(pattern); {
		switch pattern[i] {
		case '\\':
			// Escaped character, including \( \) and \\.
			i += 2

		case '(':
			depth++
			if strings.HasPrefix(pattern[i:], namedGroupPrefix) {
				if end := strings.IndexByte(pattern[i+len(namedGroupPrefix):], '>'); end >= 0 {
					name := pattern[i+len(namedGroupPrefix) : i+len(namedGroupPrefix)+end]
					i += len(namedGroupPrefix) + end + 1
					open = append(open, openGroup{name: name, start: i, depth: depth})
					continue
				}
			}
			i++

		case ')':
			if n := len(open); n > 0 && open[n-1].depth == depth {
				group := open[n-1]
				groups[group.name] = pattern[group.start:i]
				open = open[:n-1]
			}
			depth--
			i++

		default:
			i++
		}
	}

	return groups
}
