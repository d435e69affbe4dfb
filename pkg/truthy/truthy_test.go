package truthy

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestYessy(t *testing.T) {
	t.Parallel()

	var nilMap map[string]string
	var nilSlice []string
	var nilPtr *int
	one := 1

	tests := []struct {
		name  string
		input any
		want  bool
	}{
		{"one", 1, true},
		{"minus one", -1, true},
		{"float", 0.5, true},
		{"string", "hello", true},
		{"map with key", map[string]any{"a": 1}, true},
		{"true", true, true},
		{"list with one truthy", []string{"", "a"}, true},
		{"list", []string{"a"}, true},
		{"error", errors.New("foo"), true},
		{"pointer to number", &one, true},
		{"list of lists", []any{[]any{}}, true},

		{"zero", 0, false},
		{"zero float", 0.0, false},
		{"NaN", math.NaN(), false},
		{"false", false, false},
		{"nil", nil, false},
		{"nil map", nilMap, false},
		{"nil slice", nilSlice, false},
		{"nil pointer", nilPtr, false},
		{"empty list", []string{}, false},
		{"list of empty string", []string{""}, false},
		{"list of falsy", []any{0, false, nil, ""}, false},
		{"empty string", "", false},
		{"empty map", map[string]string{}, false},
		{"map with empty key only", map[string]string{"": "x"}, false},
		{"empty struct", struct{}{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Yessy(tt.input))
		})
	}
}

func TestOf_Kinds(t *testing.T) {
	t.Parallel()

	type point struct {
		X, Y int
		tag  string
	}

	tests := []struct {
		name  string
		input any
		kind  Kind
		len   int
	}{
		{"nil", nil, KindNull, 0},
		{"bool", true, KindBool, 0},
		{"int8", int8(3), KindNumber, 0},
		{"uint", uint(3), KindNumber, 0},
		{"string", "abc", KindString, 3},
		{"array", [2]int{1, 2}, KindSequence, 2},
		{"int keyed map", map[int]bool{1: true}, KindMapping, 1},
		{"struct exported fields", point{}, KindMapping, 2},
		{"func", func() {}, KindOpaque, 0},
		{"value passthrough", Sequence(Null()), KindSequence, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			v := Of(tt.input)
			assert.Equal(t, tt.kind, v.Kind())
			assert.Equal(t, tt.len, v.Len())
		})
	}
}

func TestValue_TruthyVersusYessy(t *testing.T) {
	t.Parallel()

	empty := Sequence()
	assert.True(t, empty.Truthy(), "an empty list is truthy")
	assert.False(t, empty.Yessy(), "but not yessy")

	assert.True(t, Mapping().Truthy())
	assert.False(t, Mapping().Yessy())
	assert.True(t, Mapping("", "k").Yessy())

	assert.False(t, Null().Truthy())
	assert.True(t, Opaque().Yessy())
	assert.True(t, Sequence(Mapping()).Yessy(), "an empty mapping element is still truthy")
}

func TestIs(t *testing.T) {
	t.Parallel()

	var nilPtr *string
	assert.True(t, Is(false))
	assert.True(t, Is(0))
	assert.True(t, Is(""))
	assert.False(t, Is(nil))
	assert.False(t, Is(nilPtr))
}

func TestOf_NilContainersAreNull(t *testing.T) {
	t.Parallel()

	for _, x := range []any{
		[]string(nil),
		[]int(nil),
		map[string]string(nil),
		map[string]any(nil),
		map[string]int(nil),
	} {
		assert.Equal(t, KindNull, Of(x).Kind(), "Of(%T)", x)
		assert.False(t, Is(x), "Is(%T)", x)
		assert.False(t, Yessy(x), "Yessy(%T)", x)
	}

	assert.Equal(t, KindSequence, Of([]string{}).Kind())
	assert.Equal(t, KindMapping, Of(map[string]string{}).Kind())
	assert.True(t, Is(map[string]any{}))
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "sequence", KindSequence.String())
	assert.Equal(t, "Kind(42)", Kind(42).String())
}
