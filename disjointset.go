// Package disjointset provides a disjoint-set (union-find) data structure
// with path compression and rank-based merging. It partitions registered
// items into non-overlapping sets and answers "same set?" and "merge these
// sets" in near-constant amortized time. Ranks are summed on merge rather
// than incremented, so a representative's rank is the cardinality of its
// set and SetSize is O(1) after the find.
package disjointset

import (
	"errors"
	"fmt"
)

// ErrItemNotFound is returned when an operation references an item that was
// never registered with MakeSet.
var ErrItemNotFound = errors.New("item not found")

// ErrItemExists is returned by MakeSet when the item is already registered.
var ErrItemExists = errors.New("item already exists")

// DisjointSets partitions items of type T into disjoint sets. Items are
// registered once with MakeSet and never removed; sets only ever merge.
// The zero value is not usable; construct with New.
//
// A DisjointSets is not safe for concurrent use. The query operations
// compress paths and therefore write, so external synchronization must
// serialize every call, not just Union and MakeSet. Locked provides that.
type DisjointSets[T comparable] struct {
	reg  registry[T]
	sets int // live set count, maintained by MakeSet and Union
}

// New creates an empty DisjointSets.
func New[T comparable]() *DisjointSets[T] {
	return &DisjointSets[T]{reg: newRegistry[T]()}
}

// Contains reports whether item has been registered. It has no side effects.
func (s *DisjointSets[T]) Contains(item T) bool {
	_, ok := s.reg.lookup(item)
	return ok
}

// MakeSet registers item as a new singleton set. Returns ErrItemExists if
// item is already registered; the structure is unchanged on failure.
func (s *DisjointSets[T]) MakeSet(item T) error {
	if s.Contains(item) {
		return fmt.Errorf("%w: %v", ErrItemExists, item)
	}
	s.reg.add(item)
	s.sets++
	return nil
}

// FindSet returns the item representing the set containing item, or
// ErrItemNotFound if item was never registered. Every node on the walked
// path is re-parented directly onto the representative, so repeated lookups
// from anywhere on that path are a single hop.
func (s *DisjointSets[T]) FindSet(item T) (T, error) {
	id, ok := s.reg.lookup(item)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %v", ErrItemNotFound, item)
	}
	return s.reg.item(s.find(id)), nil
}

// SameSet reports whether x and y belong to the same set. Returns
// ErrItemNotFound if either item was never registered.
func (s *DisjointSets[T]) SameSet(x, y T) (bool, error) {
	xid, ok := s.reg.lookup(x)
	if !ok {
		return false, fmt.Errorf("%w: %v", ErrItemNotFound, x)
	}
	yid, ok := s.reg.lookup(y)
	if !ok {
		return false, fmt.Errorf("%w: %v", ErrItemNotFound, y)
	}
	return s.find(xid) == s.find(yid), nil
}

// Union merges the sets containing x and y. If they are already the same
// set this is a no-op and succeeds. Returns ErrItemNotFound if either item
// was never registered; the structure is unchanged on failure.
//
// The root with the strictly smaller rank is re-parented under the other;
// on a tie, x's root survives. The surviving root's rank becomes the sum
// of both ranks, which keeps rank equal to set cardinality.
func (s *DisjointSets[T]) Union(x, y T) error {
	xid, ok := s.reg.lookup(x)
	if !ok {
		return fmt.Errorf("%w: %v", ErrItemNotFound, x)
	}
	yid, ok := s.reg.lookup(y)
	if !ok {
		return fmt.Errorf("%w: %v", ErrItemNotFound, y)
	}
	xr, yr := s.find(xid), s.find(yid)
	if xr == yr {
		return nil
	}
	sum := s.reg.rank(xr) + s.reg.rank(yr)
	if s.reg.rank(xr) < s.reg.rank(yr) {
		s.reg.setParent(xr, yr)
		s.reg.setRank(yr, sum)
	} else {
		s.reg.setParent(yr, xr)
		s.reg.setRank(xr, sum)
	}
	s.sets--
	return nil
}

// SetSize returns the number of items in the set containing item, or
// ErrItemNotFound if item was never registered.
func (s *DisjointSets[T]) SetSize(item T) (int, error) {
	id, ok := s.reg.lookup(item)
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrItemNotFound, item)
	}
	return s.reg.rank(s.find(id)), nil
}

// NumSets returns the number of disjoint sets currently materialized.
func (s *DisjointSets[T]) NumSets() int {
	return s.sets
}

// NumItems returns the total number of registered items.
func (s *DisjointSets[T]) NumItems() int {
	return s.reg.len()
}

// Components returns the sets as a map from each set's representative item
// to the list of members. The member lists are returned in no guaranteed
// order. Resolving every node compresses its path as a side effect; the
// observable partition is unchanged.
func (s *DisjointSets[T]) Components() map[T][]T {
	groups := make(map[T][]T, s.sets)
	for id := 0; id < s.reg.len(); id++ {
		root := s.reg.item(s.find(id))
		groups[root] = append(groups[root], s.reg.item(id))
	}
	return groups
}

// find returns the id of the representative of id's set, applying full path
// compression. Implemented as two iterative passes rather than recursion so
// a long pre-compression chain cannot exhaust the stack: the first pass
// locates the root, the second re-parents every visited node onto it.
func (s *DisjointSets[T]) find(id int) int {
	root := id
	for !s.reg.isRepresentative(root) {
		root = s.reg.parent(root)
	}
	for id != root {
		next := s.reg.parent(id)
		s.reg.setParent(id, root)
		id = next
	}
	return root
}
