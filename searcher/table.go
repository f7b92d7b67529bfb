package searcher

import (
	"sync"

	"takeiteasy/game"
)

type entryKey struct {
	board game.Key
	depth int
}

// table memoizes expectimax values by position and remaining depth. It is
// cleared wholesale once it reaches its entry limit. A nil table stores
// nothing.
type table struct {
	sync.RWMutex
	entries map[entryKey]float64
	limit   int
}

func newTable(limit int) *table {
	return &table{
		entries: make(map[entryKey]float64),
		limit:   limit,
	}
}

func (t *table) get(key entryKey) (float64, bool) {
	if t == nil {
		return 0, false
	}
	t.RLock()
	defer t.RUnlock()

	v, ok := t.entries[key]
	return v, ok
}

func (t *table) put(key entryKey, v float64) {
	if t == nil {
		return
	}
	t.Lock()
	defer t.Unlock()

	if len(t.entries) >= t.limit {
		clear(t.entries)
	}
	t.entries[key] = v
}

func (t *table) size() int {
	if t == nil {
		return 0
	}
	t.RLock()
	defer t.RUnlock()

	return len(t.entries)
}
