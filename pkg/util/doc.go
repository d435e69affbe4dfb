// Package util provides small string and collection helpers shared by
// front-end facing code.
//
//   - Ellipsize: cap display text at a rune length
//   - ToTitleCase, EndsWith: simple string shaping
//   - IsEmail: the lax check browsers use for input[type=email]
//   - GetHost: host name of a URL without "www."
//   - MapKV, RandomPick: generic map and slice helpers
package util
