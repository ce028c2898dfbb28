package disjointset

import "sync"

// Locked is a DisjointSets safe for use from multiple goroutines. A single
// exclusive lock serializes every operation — including the queries, since
// FindSet, SameSet, SetSize, and Components all compress paths and so write
// to shared nodes. Use the plain DisjointSets when a single goroutine owns
// the structure.
type Locked[T comparable] struct {
	mu sync.Mutex
	ds *DisjointSets[T]
}

// NewLocked creates an empty Locked disjoint-set structure.
func NewLocked[T comparable]() *Locked[T] {
	return &Locked[T]{ds: New[T]()}
}

// Contains reports whether item has been registered.
func (l *Locked[T]) Contains(item T) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ds.Contains(item)
}

// MakeSet registers item as a new singleton set.
func (l *Locked[T]) MakeSet(item T) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ds.MakeSet(item)
}

// FindSet returns the item representing the set containing item.
func (l *Locked[T]) FindSet(item T) (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ds.FindSet(item)
}

// SameSet reports whether x and y belong to the same set.
func (l *Locked[T]) SameSet(x, y T) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ds.SameSet(x, y)
}

// Union merges the sets containing x and y.
func (l *Locked[T]) Union(x, y T) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ds.Union(x, y)
}

// SetSize returns the number of items in the set containing item.
func (l *Locked[T]) SetSize(item T) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ds.SetSize(item)
}

// NumSets returns the number of disjoint sets currently materialized.
func (l *Locked[T]) NumSets() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ds.NumSets()
}

// NumItems returns the total number of registered items.
func (l *Locked[T]) NumItems() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ds.NumItems()
}

// Components returns the sets as a map from each representative to its
// members, in no guaranteed order.
func (l *Locked[T]) Components() map[T][]T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ds.Components()
}
