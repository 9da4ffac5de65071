// Package shared holds values handed from one task to another.
package shared

import "sync"

// Cell is a value shared between a single writer and any number of readers.
// Writers change it inside a scoped Update; readers see either the value
// before or after an update, never one in progress.
//
// Watchers are called after each Update with a copy of the new value.
type Cell[T any] struct {
	mu       sync.Mutex
	value    T
	watchers []func(T)
}

// NewCell creates a Cell holding value.
func NewCell[T any](value T) *Cell[T] {
	return &Cell[T]{value: value}
}

// Update calls fn with exclusive access to the value. Access is released
// when fn returns or panics. Watchers run after release.
func (c *Cell[T]) Update(fn func(*T)) {
	v, watchers := c.update(fn)
	for _, w := range watchers {
		w(v)
	}
}

func (c *Cell[T]) update(fn func(*T)) (T, []func(T)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(&c.value)
	return c.value, c.watchers
}

// Load returns a copy of the current value.
func (c *Cell[T]) Load() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// AddWatcher registers f to be called after every Update.
func (c *Cell[T]) AddWatcher(f func(T)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.watchers = append(c.watchers, f)
}
