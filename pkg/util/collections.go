package util

import (
	"cmp"
	"math/rand/v2"
	"slices"
)

// MapKV applies fn to each key and value of m, visiting keys in sorted
// order, and returns the results.
func MapKV[K cmp.Ordered, V, R any](m map[K]V, fn func(K, V) R) []R {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	out := make([]R, len(keys))
	for i, k := range keys {
		out[i] = fn(k, m[k])
	}
	return out
}

// RandomPick returns a uniformly random element of list. ok is false when
// list is empty.
func RandomPick[T any](list []T) (item T, ok bool) {
	if len(list) == 0 {
		return item, false
	}
	return list[rand.IntN(len(list))], true
}
