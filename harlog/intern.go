package harlog

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

const internShardCount = 64

// internTable deduplicates the highly repetitive strings in a trace (methods,
// MIME types, hosts) so large documents keep one copy of each. Sharded by
// xxhash to keep lock contention low when documents are loaded concurrently
// in batch mode.
type internTable struct {
	once   sync.Once
	shards [internShardCount]*internShard
}

type internShard struct {
	table map[string]string
	mu    sync.RWMutex
}

// Intern returns the canonical copy of s, storing it on first sight.
func (t *internTable) Intern(s string) string {
	if s == "" {
		return ""
	}

	t.once.Do(t.init)
	shard := t.shards[xxhash.Sum64String(s)%internShardCount]

	shard.mu.RLock()
	if interned, exists := shard.table[s]; exists {
		shard.mu.RUnlock()
		return interned
	}
	shard.mu.RUnlock()

	// double-checked: another goroutine may have stored s between the locks
	shard.mu.Lock()
	defer shard.mu.Unlock()

	if interned, exists := shard.table[s]; exists {
		return interned
	}

	shard.table[s] = s
	return s
}

func (t *internTable) init() {
	for i := range t.shards {
		t.shards[i] = &internShard{table: make(map[string]string)}
	}
}

// Intern exposes the document's string table for collaborators that build
// derived values out of entry fields.
func (d *Document) Intern(s string) string {
	return d.strings.Intern(s)
}
