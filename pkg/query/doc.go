// Package query encodes and decodes URL query strings and components.
//
// The component encoding is encodeURIComponent with two adjustments: "'" is
// escaped as %27 and "/" stays literal, so encoded values are safe inside
// single-quoted HTML attributes and paths keep their separators readable.
//
//   - EncodeComponent / DecodeComponent: single components
//   - Encode / Decode: "key=value&key=value" strings
//   - ParseURLVars: the query arguments of a full URL or location hash
//
// Decoding never swallows malformed percent-escapes; they surface as
// errs.ErrDecode so callers can choose whether to fall back.
package query
