package logbuf

import (
	"fmt"
	"sync"
	"time"
)

// DefaultCapacity bounds the in-memory activity log.
const DefaultCapacity = 100

// Buffer is a bounded, insertion-ordered log of timestamped messages shared
// by all in-flight requests. When full, the oldest entries are evicted.
type Buffer struct {
	mu       sync.Mutex
	entries  []string
	capacity int
}

func New(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Buffer{capacity: capacity}
}

// Add appends a timestamped entry, evicting the oldest entry when the
// buffer is at capacity.
func (b *Buffer) Add(message string) {
	entry := time.Now().UTC().Format(time.RFC3339) + ": " + message

	b.mu.Lock()
	defer b.mu.Unlock()

	b.entries = append(b.entries, entry)
	if len(b.entries) > b.capacity {
		b.entries = b.entries[len(b.entries)-b.capacity:]
	}
}

func (b *Buffer) Addf(format string, args ...any) {
	b.Add(fmt.Sprintf(format, args...))
}

// Recent returns a copy of the newest n entries in insertion order, oldest
// first, along with the total number of buffered entries.
func (b *Buffer) Recent(n int) ([]string, int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	total := len(b.entries)
	if n > total {
		n = total
	}
	out := make([]string, n)
	copy(out, b.entries[total-n:])
	return out, total
}

func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}
