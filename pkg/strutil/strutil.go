package strutil

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var hyphenWord = regexp.MustCompile(`-(\w)`)

// Camelize replaces every hyphen followed by a word character with the
// upper-cased character: "foo-bar" becomes "fooBar". Hyphens not followed by a
// word character are kept.
func Camelize(s string) string {
	return hyphenWord.ReplaceAllStringFunc(s, func(m string) string {
		return strings.ToUpper(m[1:])
	})
}

// Capitalize upper-cases the first character of s and appends the remainder
// unchanged. The empty string is returned as is.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return cases.Upper(language.Und).String(string(r)) + s[size:]
}
