// Package optimistic implements the two-phase local update used by the like
// and publish toggles: apply locally, confirm remotely, restore on failure.
package optimistic

import (
	"context"
	"sync"
)

// Cell holds a value that may be changed ahead of server confirmation.
type Cell[T any] struct {
	mu      sync.Mutex
	value   T
	version uint64
}

func NewCell[T any](v T) *Cell[T] {
	return &Cell[T]{value: v}
}

func (c *Cell[T]) Get() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Set replaces the value outright, e.g. after a reload from the server.
func (c *Cell[T]) Set(v T) {
	c.mu.Lock()
	c.value = v
	c.version++
	c.mu.Unlock()
}

// Apply stores mutate(current) immediately, then runs commit with it. If
// commit fails the previous value is restored, unless the cell was changed
// again in the meantime, and commit's error is returned. The returned value
// is what the cell holds afterwards.
func (c *Cell[T]) Apply(ctx context.Context, mutate func(T) T, commit func(context.Context, T) error) (T, error) {
	c.mu.Lock()
	prev := c.value
	next := mutate(prev)
	c.value = next
	c.version++
	mine := c.version
	c.mu.Unlock()

	if err := commit(ctx, next); err != nil {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.version == mine {
			c.value = prev
			c.version++
		}
		return c.value, err
	}
	return next, nil
}
