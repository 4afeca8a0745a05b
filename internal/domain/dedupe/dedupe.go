// Package dedupe defines the interface for duplicate-evidence tracking.
package dedupe

import (
	"context"
	"sync"
)

// Deduper records seen evidence IDs so each item is counted at most
// once per scoring run.
type Deduper interface {
	// SeenAndRecord atomically checks if id was seen and records it if
	// not. Returns true if id was already seen.
	SeenAndRecord(ctx context.Context, id string) bool

	// Size returns the number of distinct IDs recorded so far.
	Size() int
}

// inMemoryDeduper implements Deduper with a plain map. A fresh one is
// created per scoring invocation; the engine holds no state across
// runs, so no eviction is needed.
type inMemoryDeduper struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

// NewInMemory creates an empty per-run deduper.
func NewInMemory() Deduper {
	return &inMemoryDeduper{seen: make(map[string]struct{})}
}

func (d *inMemoryDeduper) SeenAndRecord(_ context.Context, id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.seen[id]; ok {
		return true
	}
	d.seen[id] = struct{}{}
	return false
}

func (d *inMemoryDeduper) Size() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.seen)
}
