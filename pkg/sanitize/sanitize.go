// Package sanitize escapes and strips HTML for display.
//
// Use it whenever HTML is built from data. It is a convenience, not a
// hardened sanitizer: attributes of permitted tags are passed through
// untouched.
package sanitize

import (
	"strings"

	"golang.org/x/net/html"
)

var attrReplacer = strings.NewReplacer(
	"&", "&amp;",
	`"`, "&quot;",
	"'", "&#39;",
)

// Attr escapes text for use inside a quoted HTML attribute value. It does
// not add the enclosing quotes:
//
//	`<a title="` + sanitize.Attr(name) + `">`
func Attr(text string) string {
	return attrReplacer.Replace(text)
}

var entityReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// EncodeEntities escapes &, <, > and " so text displays literally.
func EncodeEntities(s string) string {
	return entityReplacer.Replace(s)
}

// textReplacer escapes decoded text content. Quotes are left as they are.
var textReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// DecodeEntities returns the text content of an HTML fragment: tags are
// dropped and entities decoded.
func DecodeEntities(s string) string {
	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			b.Write(z.Text())
		}
	}
}

// Clean strips every tag except permittedTags, leaving escaped text.
// Comments and doctypes are stripped too.
func Clean(text string, permittedTags ...string) string {
	return rewrite(text, permittedTags, true)
}

// Plain returns text with all tags removed and entities encoded.
func Plain(text string) string {
	return Clean(text)
}

// SanitiseHTML escapes every tag except permittedTags so it displays as
// text. Unlike Clean, nothing is removed.
func SanitiseHTML(text string, permittedTags ...string) string {
	return rewrite(text, permittedTags, false)
}

func rewrite(text string, permittedTags []string, remove bool) string {
	if text == "" {
		return ""
	}
	permitted := make(map[string]bool, len(permittedTags))
	for _, tag := range permittedTags {
		permitted[strings.ToLower(tag)] = true
	}

	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(text))
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			textReplacer.WriteString(&b, string(z.Text()))
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			// TagName lower-cases the token buffer in place, so copy Raw first.
			raw := string(z.Raw())
			name, _ := z.TagName()
			switch {
			case permitted[string(name)]:
				b.WriteString(raw)
			case !remove:
				b.WriteString(html.EscapeString(raw))
			}
		default:
			if !remove {
				b.WriteString(html.EscapeString(string(z.Raw())))
			}
		}
	}
}
