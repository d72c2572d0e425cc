// Package formattag reads the #Format directives embedded in resource
// comments and resolves them into typed parameter lists.
//
// A directive looks like
//
//	#Format[Plural Int count, String name, "literal", APP_NAME, OtherKey]
//
// #FormatNet[...] has the same grammar and marks the string as using .NET
// composite formatting.
package formattag

import (
	"regexp"
	"strings"
)

// Comment markers.
const (
	TagFormat       = "#Format"
	TagFormatDotNet = "#FormatNet"
	// TagIgnore excludes an entry from generation.
	TagIgnore = "#ReswPlusIgnore"
	// TagDeprecatedTyped is the retired predecessor of #Format.
	TagDeprecatedTyped = "#ReswPlusTyped"
)

// reTag matches a directive. Inside the brackets, quoted segments may hold
// commas, brackets and escaped quotes; outside them ']' closes the directive.
var reTag = regexp.MustCompile(`(#FormatNet|#Format)\[((?:[^"\]]|"(?:[^"\\]|\\.)*")+)\]`)

// ParseTag extracts the directive of comment. It returns the trimmed
// parameter list, whether the .NET variant was used, and false when the
// comment has no directive.
func ParseTag(comment string) (spec string, dotNet bool, ok bool) {
	if strings.TrimSpace(comment) == "" {
		return "", false, false
	}
	m := reTag.FindStringSubmatch(comment)
	if m == nil {
		return "", false, false
	}
	return strings.TrimSpace(m[2]), m[1] == TagFormatDotNet, true
}

// HasTag reports whether comment carries a directive.
func HasTag(comment string) bool {
	return comment != "" && reTag.MatchString(comment)
}

// IsIgnored reports whether comment excludes its entry from generation.
func IsIgnored(comment string) bool {
	return strings.Contains(comment, TagIgnore)
}

// IsDeprecated reports whether comment uses the retired #ReswPlusTyped marker.
func IsDeprecated(comment string) bool {
	return strings.Contains(comment, TagDeprecatedTyped)
}

// SplitParameters splits a directive's parameter list on the commas that are
// outside quoted literals. Tokens are trimmed; empty tokens are kept so that
// resolution can reject them.
func SplitParameters(spec string) []string {
	if strings.TrimSpace(spec) == "" {
		return nil
	}

	var (
		tokens  []string
		current strings.Builder
		inQuote bool
		escaped bool
	)
	for _, r := range spec {
		switch {
		case escaped:
			escaped = false
		case inQuote && r == '\\':
			escaped = true
		case r == '"':
			inQuote = !inQuote
		case r == ',' && !inQuote:
			tokens = append(tokens, strings.TrimSpace(current.String()))
			current.Reset()
			continue
		}
		current.WriteRune(r)
	}
	return append(tokens, strings.TrimSpace(current.String()))
}
