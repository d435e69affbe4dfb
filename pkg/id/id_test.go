package id

import (
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

var uuidV4 = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

func TestUID_Format(t *testing.T) {
	t.Parallel()

	for i := 0; i < 100; i++ {
		u := UID()
		assert.Regexp(t, uuidV4, u)
		assert.True(t, IsUID(u), "IsUID(%q)", u)
	}
}

func TestUID_Unique(t *testing.T) {
	t.Parallel()

	const n = 1000
	var mu sync.Mutex
	seen := make(map[string]bool, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			u := UID()
			mu.Lock()
			defer mu.Unlock()
			seen[u] = true
		}()
	}
	wg.Wait()
	assert.Len(t, seen, n)
}

func TestIsUID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"v4", "0b9e7d2c-5a4f-4c3e-9d21-6f1a2b3c4d5e", true},
		{"upper case", "0B9E7D2C-5A4F-4C3E-9D21-6F1A2B3C4D5E", false},
		{"v1", "0b9e7d2c-5a4f-1c3e-9d21-6f1a2b3c4d5e", false},
		{"bad variant", "0b9e7d2c-5a4f-4c3e-7d21-6f1a2b3c4d5e", false},
		{"braced", "{0b9e7d2c-5a4f-4c3e-9d21-6f1a2b3c4d5e}", false},
		{"empty", "", false},
		{"garbage", "not-a-uuid", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsUID(tt.input))
		})
	}
}
