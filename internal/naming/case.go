// Package naming provides the canonical case transforms used for every derived
// identifier in an entity descriptor: storage columns (snake_case), API routes
// (kebab-case), client code (camelCase) and human-readable labels.
// All functions are pure, locale-independent, and idempotent on already-cased
// input.
package naming

import (
	"strings"
	"unicode"
)

// Capitalize upper-cases the first rune of s.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// Decapitalize lower-cases the first rune of s.
func Decapitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// CamelCase converts s to lowerCamelCase. Word boundaries are underscores,
// hyphens, spaces, and lower-to-upper transitions.
func CamelCase(s string) string {
	words := splitWords(s)
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(strings.ToLower(words[0]))
	for _, w := range words[1:] {
		b.WriteString(Capitalize(strings.ToLower(w)))
	}
	return b.String()
}

// PascalCase converts s to UpperCamelCase.
func PascalCase(s string) string {
	return Capitalize(CamelCase(s))
}

// SnakeCase converts s to snake_case.
// Handles acronyms properly (HTTPRequest -> http_request).
func SnakeCase(s string) string {
	return strings.Join(lowerWords(s), "_")
}

// KebabCase converts s to kebab-case.
func KebabCase(s string) string {
	return strings.Join(lowerWords(s), "-")
}

// StartCase converts s to a human-readable label with each word capitalized
// ("firstName" -> "First Name").
func StartCase(s string) string {
	words := splitWords(s)
	for i, w := range words {
		words[i] = Capitalize(strings.ToLower(w))
	}
	return strings.Join(words, " ")
}

func lowerWords(s string) []string {
	words := splitWords(s)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return words
}

// splitWords splits an identifier into its component words. A word boundary is
// an explicit separator (underscore, hyphen, space) or a case transition.
// Acronyms stay together: "HTTPRequest" splits as ["HTTP", "Request"].
func splitWords(s string) []string {
	var words []string
	var current []rune
	runes := []rune(s)

	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = current[:0]
		}
	}

	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || r == ' ':
			flush()
		case unicode.IsUpper(r):
			if i > 0 {
				prev := runes[i-1]
				if unicode.IsLower(prev) || unicode.IsDigit(prev) {
					flush()
				} else if unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
					// End of an acronym: "HTTPServer" -> "HTTP", "Server"
					flush()
				}
			}
			current = append(current, r)
		default:
			current = append(current, r)
		}
	}
	flush()

	return words
}
