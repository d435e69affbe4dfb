package query

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/winterwell/wwutils/pkg/errs"
)

const upperhex = "0123456789ABCDEF"

// EncodeComponent percent-encodes a URL component.
//
// It follows encodeURIComponent, except that "'" is escaped as %27 and "/"
// is left as is. Every byte outside the kept set is escaped, so strings that
// are not valid UTF-8 are encoded byte by byte.
func EncodeComponent(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if !keep(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if keep(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0x0F])
	}
	return b.String()
}

// keep reports whether c is written unescaped by EncodeComponent.
func keep(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '(', ')', '/':
		return true
	}
	return false
}

// DecodeComponent reverses percent-encoding. A "+" is left alone; callers
// decoding form-style query strings replace it first.
//
// Malformed escapes and escapes that decode to invalid UTF-8 fail with
// errs.ErrDecode.
func DecodeComponent(s string) (string, error) {
	if strings.IndexByte(s, '%') < 0 {
		return s, nil
	}
	decoded, err := url.PathUnescape(s)
	if err != nil {
		return "", errs.Wrap(errs.ErrDecode, "query.DecodeComponent", s, err)
	}
	if !utf8.ValidString(decoded) {
		return "", errs.New(errs.ErrDecode, "query.DecodeComponent", s)
	}
	return decoded, nil
}
