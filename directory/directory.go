package directory

import (
	"sort"
	"sync"

	"github.com/viant/namely"
)

type entry[T any] struct {
	name  *namely.Name
	value T
}

// Directory is a thread-safe registry of values keyed by normalized name.
type Directory[T any] struct {
	mux sync.RWMutex
	m   map[string]entry[T]
}

// New creates a new instance of Directory.
func New[T any]() *Directory[T] {
	return &Directory[T]{
		m: make(map[string]entry[T]),
	}
}

// Put adds or replaces the value registered under name.  The stored name
// keeps the spelling of the most recent Put.
func (d *Directory[T]) Put(name *namely.Name, value T) {
	if name == nil {
		return
	}
	d.mux.Lock()
	defer d.mux.Unlock()
	d.m[name.MatchKey()] = entry[T]{name: name, value: value}
}

// Get retrieves the value registered under any spelling of text.
func (d *Directory[T]) Get(text string) (T, bool) {
	d.mux.RLock()
	defer d.mux.RUnlock()
	if e, ok := d.m[namely.New(text).MatchKey()]; ok {
		return e.value, true
	}
	var zero T
	return zero, false
}

// Delete removes the entry registered under any spelling of text.
func (d *Directory[T]) Delete(text string) {
	d.mux.Lock()
	defer d.mux.Unlock()
	delete(d.m, namely.New(text).MatchKey())
}

// Len returns the number of registered entries.
func (d *Directory[T]) Len() int {
	d.mux.RLock()
	defer d.mux.RUnlock()
	return len(d.m)
}

// Names returns all registered names ordered by match key.  The slice is a
// copy and therefore safe for callers to modify.
func (d *Directory[T]) Names() []*namely.Name {
	d.mux.RLock()
	defer d.mux.RUnlock()
	names := make([]*namely.Name, 0, len(d.m))
	for _, e := range d.m {
		names = append(names, e.name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i].MatchKey() < names[j].MatchKey() })
	return names
}

// Values returns all registered values in match-key order.
func (d *Directory[T]) Values() []T {
	names := d.Names()
	d.mux.RLock()
	defer d.mux.RUnlock()
	values := make([]T, 0, len(names))
	for _, n := range names {
		if e, ok := d.m[n.MatchKey()]; ok {
			values = append(values, e.value)
		}
	}
	return values
}

// Match returns the names matching the wildcard pattern, in match-key order.
// The pattern is tokenized once and reused across all entries.
func (d *Directory[T]) Match(pattern string) []*namely.Name {
	tokens := namely.TokenizePattern(pattern)
	var result []*namely.Name
	for _, n := range d.Names() {
		if namely.MatchTokens(n, tokens) {
			result = append(result, n)
		}
	}
	return result
}
