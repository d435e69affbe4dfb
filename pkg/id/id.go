// Package id generates unique identifiers.
package id

import "github.com/google/uuid"

// UID returns a random (version 4) UUID in the canonical form
// xxxxxxxx-xxxx-4xxx-yxxx-xxxxxxxxxxxx.
func UID() string {
	return uuid.NewString()
}

// IsUID reports whether s is a canonical version 4 UUID as produced by UID.
func IsUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return false
	}
	return u.Version() == 4 && u.Variant() == uuid.RFC4122 && u.String() == s
}
