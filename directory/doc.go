// Package directory offers a lightweight, generic, concurrency-safe registry
// of values keyed by normalized name.  Entries registered under one spelling
// are retrievable under any spelling that reduces to the same match key, and
// the whole directory can be filtered with a wildcard pattern.  Operations
// are guarded by a sync.RWMutex.
package directory
