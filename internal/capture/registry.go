package capture

import (
	"fmt"
	"sort"
	"sync"
)

// Probe priorities. Lower values are tried first.
const (
	priorityKitty = 10
	priorityTmux  = 20
)

var (
	mu      sync.RWMutex
	entries []entry
)

type entry struct {
	priority int
	src      Source
}

// Register adds a capture source, probed in ascending priority order.
// Typically called from a source's init() function. Panics if a source
// with the same name is already registered.
func Register(priority int, s Source) {
	mu.Lock()
	defer mu.Unlock()

	for _, e := range entries {
		if e.src.Name() == s.Name() {
			panic(fmt.Sprintf("capture: source %q already registered", s.Name()))
		}
	}

	entries = append(entries, entry{priority: priority, src: s})
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].priority < entries[j].priority
	})
}

// Sources returns all registered sources in probe order.
func Sources() []Source {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]Source, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.src)
	}
	return out
}
