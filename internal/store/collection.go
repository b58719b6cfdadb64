package store

import "sort"

// collection is a slice-backed table with integer ids. MemoryStore and
// FileStore build on it; GormStore does not.
type collection[T any] struct {
	items []T
	idOf  func(T) int64
	setID func(*T, int64)
}

func newCollection[T any](idOf func(T) int64, setID func(*T, int64)) *collection[T] {
	return &collection[T]{idOf: idOf, setID: setID}
}

// insert assigns the next id (max existing + 1) and appends the item.
func (c *collection[T]) insert(item T) T {
	var next int64 = 1
	for _, it := range c.items {
		if id := c.idOf(it); id >= next {
			next = id + 1
		}
	}
	c.setID(&item, next)
	c.items = append(c.items, item)
	return item
}

func (c *collection[T]) get(id int64) (T, bool) {
	for _, it := range c.items {
		if c.idOf(it) == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// put replaces the item with the same id, reporting whether it existed.
func (c *collection[T]) put(item T) bool {
	id := c.idOf(item)
	for i, it := range c.items {
		if c.idOf(it) == id {
			c.items[i] = item
			return true
		}
	}
	return false
}

func (c *collection[T]) remove(id int64) bool {
	for i, it := range c.items {
		if c.idOf(it) == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

func (c *collection[T]) removeWhere(pred func(T) bool) {
	kept := c.items[:0]
	for _, it := range c.items {
		if !pred(it) {
			kept = append(kept, it)
		}
	}
	c.items = kept
}

// list returns a copy in insertion order.
func (c *collection[T]) list() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *collection[T]) filter(pred func(T) bool) []T {
	var out []T
	for _, it := range c.items {
		if pred(it) {
			out = append(out, it)
		}
	}
	return out
}

func (c *collection[T]) find(pred func(T) bool) (T, bool) {
	for _, it := range c.items {
		if pred(it) {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// sorted sorts a copy already returned by list or filter, in place,
// keeping insertion order for ties.
func sorted[T any](items []T, less func(a, b T) bool) []T {
	sort.SliceStable(items, func(i, j int) bool { return less(items[i], items[j]) })
	return items
}

func limited[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
