package query

import (
	"sort"
	"strings"
)

// Decode parses a "key=value&key=value" query string (the text after "?").
//
// Empty segments are skipped, so trailing and doubled "&" are tolerated.
// Each segment is split on its first "="; a segment without "=" is a key
// with an empty value, and that key is still percent-decoded. "+" is read
// as a space in both key and value before percent-decoding. A later
// duplicate key overwrites an earlier one.
//
// Percent-decoding failures are returned, not masked.
func Decode(query string) (map[string]string, error) {
	vars := make(map[string]string)
	for _, kv := range strings.Split(query, "&") {
		if kv == "" {
			continue
		}
		k, v, _ := strings.Cut(kv, "=")
		key, err := decodeFormComponent(k)
		if err != nil {
			return nil, err
		}
		value, err := decodeFormComponent(v)
		if err != nil {
			return nil, err
		}
		vars[key] = value
	}
	return vars, nil
}

func decodeFormComponent(s string) (string, error) {
	return DecodeComponent(strings.ReplaceAll(s, "+", " "))
}

// Encode serializes params as "key=value" pairs joined by "&". Keys are
// written in sorted order. An empty value is written as "key=".
func Encode(params map[string]string) string {
	if len(params) == 0 {
		return ""
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(EncodeComponent(k))
		b.WriteByte('=')
		b.WriteString(EncodeComponent(params[k]))
	}
	return b.String()
}

// ParseURLVars decodes the query arguments of a URL, or of a location hash
// such as "#page?tab=2". Everything after the first "?" is decoded; a
// missing "?" or one in the last position yields an empty map.
func ParseURLVars(rawURL string) (map[string]string, error) {
	i := strings.IndexByte(rawURL, '?')
	if i < 0 || i == len(rawURL)-1 {
		return map[string]string{}, nil
	}
	return Decode(rawURL[i+1:])
}
