package util

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestEllipsize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		s         string
		maxLength int
		want      string
	}{
		{"short string", "hello", 100, "hello"},
		{"exact length", "12345", 5, "12345"},
		{"one over", "123456", 5, "123" + Ellipsis},
		{"empty string", "", 10, ""},
		{"zero uses default", "hello", 0, "hello"},
		{"negative uses default", "hello", -1, "hello"},
		{"tiny limit", "abcdef", 1, Ellipsis},
		{"runes not bytes", "héllo wörld", 7, "héllo" + Ellipsis},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Ellipsize(tt.s, tt.maxLength))
		})
	}
}

func TestEllipsize_DefaultLength(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("x", DefaultEllipsizeLength+10)
	got := Ellipsize(long, 0)
	assert.Equal(t, DefaultEllipsizeLength-2+utf8.RuneCountInString(Ellipsis), utf8.RuneCountInString(got))
	assert.True(t, strings.HasSuffix(got, Ellipsis))

	atLimit := long[:DefaultEllipsizeLength]
	assert.Equal(t, atLimit, Ellipsize(atLimit, 0))
}

func TestEndsWith(t *testing.T) {
	t.Parallel()

	assert.True(t, EndsWith("index.html", ".html"))
	assert.True(t, EndsWith("abc", ""))
	assert.False(t, EndsWith("ab", "abc"))
	assert.False(t, EndsWith("index.htm", ".html"))
}

func TestToTitleCase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"dan", "Dan"},
		{"dAN", "Dan"},
		{"DANIEL WINTERSTEIN", "Daniel winterstein"},
		{"élise", "Élise"},
		{"1abc", "1abc"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ToTitleCase(tt.input))
		})
	}
}

func TestIsEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"daniel@winterwell.com", true},
		{"a.b+tag@example.co.uk", true},
		{"user@localhost", true},
		{"", false},
		{"no-at-sign", false},
		{"two@@example.com", false},
		{"space in@example.com", false},
		{"user@exa_mple.com", false},
		{"user@example.", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsEmail(tt.input))
		})
	}
}

func TestGetHost(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"http://www.winterwell.com/stuff", "winterwell.com"},
		{"https://good-loop.com:8443/x?y=1", "good-loop.com"},
		{"https://www2.example.com/", "www2.example.com"},
		{"/relative/path", ""},
		{"http://[::1]:80/", "::1"},
		{"%zz", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, GetHost(tt.input))
		})
	}
}
