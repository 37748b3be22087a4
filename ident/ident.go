// Package ident converts identifiers between the naming styles used for
// GraphQL field, object and type names.
package ident

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Style is a naming style an identifier can be converted to.
type Style int

const (
	// CamelCase is the default style for field and object names, e.g. "postCategory".
	CamelCase Style = iota
	// Lowercase lowers the whole identifier, e.g. "postcategory".
	Lowercase
	// Uppercase uppers the whole identifier, e.g. "POSTCATEGORY".
	Uppercase
	// Capitalized uppers the first letter and keeps the rest, e.g. "PostCategory".
	Capitalized
	// PascalCase capitalizes every word, e.g. "PostCategory".
	PascalCase
	// SnakeCase lowers every word and joins them with "_", e.g. "post_category".
	SnakeCase
	// KebabCase lowers every word and joins them with "-", e.g. "post-category".
	KebabCase
)

var styleNames = map[Style]string{
	CamelCase:   "camelCase",
	Lowercase:   "lowercase",
	Uppercase:   "uppercase",
	Capitalized: "capitalized",
	PascalCase:  "pascalCase",
	SnakeCase:   "snakeCase",
	KebabCase:   "kebabCase",
}

func (s Style) String() string {
	if name, ok := styleNames[s]; ok {
		return name
	}
	return "Style(" + strconv.Itoa(int(s)) + ")"
}

// ParseStyle returns the style with the given name, as printed by Style.String.
func ParseStyle(name string) (Style, bool) {
	for style, n := range styleNames {
		if strings.EqualFold(n, name) {
			return style, true
		}
	}
	return CamelCase, false
}

// Name is an identifier split into words.
type Name []string

// ParseMixedCaps splits s into words. Every uppercase character starts a new
// word; a leading uppercase character starts the first word.
//
// E.g., "postCategoryID" -> {"post", "Category", "I", "D"}.
func ParseMixedCaps(s string) Name {
	var (
		words Name
		start int
	)
	for i, r := range s {
		if i > start && unicode.IsUpper(r) {
			words = append(words, s[start:i])
			start = i
		}
	}
	if start < len(s) {
		words = append(words, s[start:])
	}
	return words
}

// ToLowerCamelCase lowers the first word and capitalizes the rest.
func (n Name) ToLowerCamelCase() string {
	var b strings.Builder
	for i, word := range n {
		if i == 0 {
			b.WriteString(lower(word))
			continue
		}
		b.WriteString(capitalize(word))
	}
	return b.String()
}

// ToMixedCaps capitalizes every word.
func (n Name) ToMixedCaps() string {
	var b strings.Builder
	for _, word := range n {
		b.WriteString(capitalize(word))
	}
	return b.String()
}

// Join lowers every word and joins them with sep.
func (n Name) Join(sep string) string {
	words := make([]string, len(n))
	for i, word := range n {
		words[i] = lower(word)
	}
	return strings.Join(words, sep)
}

// Convert converts raw into style. An empty raw yields an empty string.
func Convert(raw string, style Style) string {
	if raw == "" {
		return ""
	}
	switch style {
	case Lowercase:
		return lower(raw)
	case Uppercase:
		return upper(raw)
	case Capitalized:
		return capitalize(raw)
	case PascalCase:
		return ParseMixedCaps(raw).ToMixedCaps()
	case SnakeCase:
		return ParseMixedCaps(raw).Join("_")
	case KebabCase:
		return ParseMixedCaps(raw).Join("-")
	default:
		return ParseMixedCaps(raw).ToLowerCamelCase()
	}
}

// Casers keep state between calls and cannot be shared, so one is built per call.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

func upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return upper(string(r)) + s[size:]
}
