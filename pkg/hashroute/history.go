package hashroute

import (
	"slices"
	"strings"
	"sync"
)

// History is the navigation state a Router reads and writes. In a browser
// it is backed by location.hash and history.pushState.
type History interface {
	// Read returns the current hash state. A leading "#" is allowed.
	Read() string

	// Location returns the current full URL.
	Location() string

	// Push makes hash, which starts with "#", the current state without
	// navigating away.
	Push(hash string) error

	// NotifyChanged tells listeners that the hash changed from oldURL to
	// the current location. Programmatic pushes do not always produce a
	// change notification on their own.
	NotifyChanged(oldURL string)
}

// ChangeEvent describes a hash change.
type ChangeEvent struct {
	OldURL string `json:"oldUrl" yaml:"oldUrl"`
	NewURL string `json:"newUrl" yaml:"newUrl"`
}

// MemoryHistory is a thread-safe in-memory History.
type MemoryHistory struct {
	mu        sync.Mutex
	baseURL   string
	entries   []string
	listeners map[int]func(ChangeEvent)
	nextID    int
}

// NewMemoryHistory creates a history positioned at baseURL with the given
// hash. Any fragment already on baseURL is dropped.
func NewMemoryHistory(baseURL, hash string) *MemoryHistory {
	if i := strings.IndexByte(baseURL, '#'); i >= 0 {
		baseURL = baseURL[:i]
	}
	return &MemoryHistory{
		baseURL:   baseURL,
		entries:   []string{normalizeHash(hash)},
		listeners: make(map[int]func(ChangeEvent)),
	}
}

func normalizeHash(hash string) string {
	if hash == "" || hash == "#" {
		return ""
	}
	if hash[0] != '#' {
		return "#" + hash
	}
	return hash
}

// Read returns the current hash, including its "#", or "" when there is none.
func (h *MemoryHistory) Read() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current()
}

func (h *MemoryHistory) current() string {
	return h.entries[len(h.entries)-1]
}

// Location returns the base URL followed by the current hash.
func (h *MemoryHistory) Location() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.baseURL + h.current()
}

// Push appends a new history entry.
func (h *MemoryHistory) Push(hash string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries, normalizeHash(hash))
	return nil
}

// Back returns to the previous entry and notifies listeners. It reports
// false when already at the first entry.
func (h *MemoryHistory) Back() bool {
	h.mu.Lock()
	if len(h.entries) < 2 {
		h.mu.Unlock()
		return false
	}
	oldURL := h.baseURL + h.current()
	h.entries = h.entries[:len(h.entries)-1]
	h.mu.Unlock()

	h.NotifyChanged(oldURL)
	return true
}

// Entries returns the hashes in the history, oldest first. The last entry
// is the current one.
func (h *MemoryHistory) Entries() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

// Subscribe registers fn for change events and returns a function that
// removes it.
func (h *MemoryHistory) Subscribe(fn func(ChangeEvent)) (unsubscribe func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.nextID
	h.nextID++
	h.listeners[id] = fn
	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.listeners, id)
	}
}

// NotifyChanged delivers a ChangeEvent to every listener, in subscription
// order. Listeners run on the calling goroutine after the lock is released,
// so they may use h.
func (h *MemoryHistory) NotifyChanged(oldURL string) {
	h.mu.Lock()
	event := ChangeEvent{OldURL: oldURL, NewURL: h.baseURL + h.current()}
	ids := make([]int, 0, len(h.listeners))
	for id := range h.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	fns := make([]func(ChangeEvent), len(ids))
	for i, id := range ids {
		fns[i] = h.listeners[id]
	}
	h.mu.Unlock()

	for _, fn := range fns {
		fn(event)
	}
}
