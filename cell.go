package ark

import "sync/atomic"

// cell is the storage shared by every handle in one clone class. It owns the
// value, the count of live handles, and the optional dispose hook.
//
// While count >= 1 the value is live and may be read through any handle.
// The goroutine whose decrement brings count to 0 is the one that reclaims;
// the cell is never touched again afterwards.
type cell[T any] struct {
	count   atomic.Int64
	value   T
	dispose func(T)
}

func newCell[T any](value T, dispose func(T)) *cell[T] {
	c := &cell[T]{
		value:   value,
		dispose: dispose,
	}
	c.count.Store(1)
	trackCell()
	return c
}

// reclaim disposes of the value. Called exactly once per cell, by the
// goroutine that observed the count reach zero.
func (c *cell[T]) reclaim() {
	if c.dispose != nil {
		c.dispose(c.value)
	}
	untrackCell()
	logger.Debug("Cell reclaimed.")
}
