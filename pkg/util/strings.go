package util

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultEllipsizeLength is used when Ellipsize is given no positive length.
const DefaultEllipsizeLength = 140

// Ellipsis is appended to text shortened by Ellipsize. It is HTML.
const Ellipsis = " &hellip;"

// Ellipsize shortens s to maxLength-2 runes followed by Ellipsis when it is
// longer than maxLength runes. If maxLength <= 0, DefaultEllipsizeLength is
// used.
func Ellipsize(s string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = DefaultEllipsizeLength
	}
	if utf8.RuneCountInString(s) <= maxLength {
		return s
	}
	keep := max(maxLength-2, 0)
	end := 0
	for i := 0; i < keep; i++ {
		_, size := utf8.DecodeRuneInString(s[end:])
		end += size
	}
	return s[:end] + Ellipsis
}

// EndsWith reports whether s ends with ending.
func EndsWith(s, ending string) bool {
	return strings.HasSuffix(s, ending)
}

// ToTitleCase upper-cases the first letter of s and lower-cases the rest,
// e.g. "dAN" to "Dan". It does not title each word.
func ToTitleCase(s string) string {
	if s == "" {
		return s
	}
	// Casers keep state, so each call gets its own.
	_, size := utf8.DecodeRuneInString(s)
	return cases.Upper(language.Und).String(s[:size]) + cases.Lower(language.Und).String(s[size:])
}

// emailPattern is the W3C pattern for input[type=email]. It is laxer than
// RFC 5322.
var emailPattern = regexp.MustCompile("^[a-zA-Z0-9.!#$%&’*+/=?^_`{|}~-]+@[a-zA-Z0-9-]+(?:\\.[a-zA-Z0-9-]+)*$")

// IsEmail reports whether s is (probably) an email address.
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// GetHost returns the host name of rawURL without a leading "www.", e.g.
// "winterwell.com" from "http://www.winterwell.com/stuff". It returns ""
// when rawURL cannot be parsed.
func GetHost(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}
