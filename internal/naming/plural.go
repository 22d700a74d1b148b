package naming

import (
	"strings"
	"unicode"
)

// irregularPlurals maps singular forms to their irregular plurals. Lookup is
// case-insensitive on the whole word; the result re-applies the leading case of
// the input so Pluralize commutes with Capitalize.
var irregularPlurals = map[string]string{
	"person": "people",
	"man":    "men",
	"woman":  "women",
	"child":  "children",
	"foot":   "feet",
	"tooth":  "teeth",
	"goose":  "geese",
	"mouse":  "mice",
	"ox":     "oxen",
	"datum":  "data",
	"index":  "indices",
	"axis":   "axes",
	"basis":  "bases",
	"status": "statuses",
	"quiz":   "quizzes",
	"alias":  "aliases",
	"hero":   "heroes",
	"potato": "potatoes",
	"tomato": "tomatoes",
	"echo":   "echoes",
}

// uncountable words have no distinct plural form.
var uncountable = map[string]bool{
	"equipment":   true,
	"information": true,
	"money":       true,
	"species":     true,
	"series":      true,
	"fish":        true,
	"sheep":       true,
	"deer":        true,
	"news":        true,
	"data":        true,
	"metadata":    true,
}

// Pluralize returns the English plural of the final word of an identifier,
// preserving the identifier's casing. Only the last word is inflected:
// "orderItem" -> "orderItems", "Person" -> "People".
func Pluralize(s string) string {
	if s == "" {
		return s
	}

	// Inflect only the trailing word so camelCase identifiers keep their prefix.
	tail := lastWordStart(s)
	return s[:tail] + pluralizeWord(s[tail:])
}

func pluralizeWord(word string) string {
	lower := strings.ToLower(word)

	if uncountable[lower] {
		return word
	}

	if plural, ok := irregularPlurals[lower]; ok {
		return matchLeadingCase(word, plural)
	}

	switch {
	case strings.HasSuffix(lower, "s"),
		strings.HasSuffix(lower, "x"),
		strings.HasSuffix(lower, "z"),
		strings.HasSuffix(lower, "ch"),
		strings.HasSuffix(lower, "sh"):
		return word + "es"
	case strings.HasSuffix(lower, "y") && len(lower) > 1 && !isVowel(rune(lower[len(lower)-2])):
		return word[:len(word)-1] + "ies"
	case strings.HasSuffix(lower, "fe"):
		return word[:len(word)-2] + "ves"
	case strings.HasSuffix(lower, "f") && !strings.HasSuffix(lower, "ff"):
		return word[:len(word)-1] + "ves"
	default:
		return word + "s"
	}
}

// lastWordStart returns the byte index where the final word of an identifier
// begins ("orderItem" -> index of 'I', "order_item" -> index of 'i').
func lastWordStart(s string) int {
	start := 0
	prev := rune(0)
	for i, r := range s {
		switch {
		case r == '_' || r == '-' || r == ' ':
			start = i + 1
		case unicode.IsUpper(r) && i > 0 && (unicode.IsLower(prev) || unicode.IsDigit(prev)):
			start = i
		}
		prev = r
	}
	return start
}

// matchLeadingCase re-applies the leading case of src onto word.
func matchLeadingCase(src, word string) string {
	if src == "" || word == "" {
		return word
	}
	if unicode.IsUpper([]rune(src)[0]) {
		return Capitalize(word)
	}
	return Decapitalize(word)
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}
