package model

import (
	"iter"

	"github.com/pkg/errors"
)

// Cursor exposes a grid's evolution as a finite pull-based sequence of generations.
// Each call to Next advances the bound grid by one step until goal generations have been
// produced. A Cursor is not safe for concurrent use.
type Cursor struct {
	grid    *Grid
	engine  *Engine
	current int
	goal    int
}

// NewCursor binds a cursor to g. The grid is not copied; stepping the cursor mutates it.
func NewCursor(g *Grid, goal int) (*Cursor, error) {
	return NewPooledCursor(g, goal, nil)
}

// NewPooledCursor is NewCursor with the engine drawing its snapshot buffer from pool
func NewPooledCursor(g *Grid, goal int, pool *SnapshotPool) (*Cursor, error) {
	if g == nil {
		return nil, errors.Wrap(ErrNilGrid, "[NewCursor]")
	}
	if goal < 0 {
		return nil, errors.Wrapf(ErrInvalidGoal, "[NewCursor] goal=%d", goal)
	}
	return &Cursor{
		grid:   g,
		engine: NewEngine(pool),
		goal:   goal,
	}, nil
}

// Grid returns the grid the cursor drives
func (c *Cursor) Grid() *Grid { return c.grid }

// Current returns the number of generations produced since construction or the last Reset
func (c *Cursor) Current() int { return c.current }

// Goal returns the number of generations the cursor produces
func (c *Cursor) Goal() int { return c.goal }

// Exhausted reports whether the goal has been reached
func (c *Cursor) Exhausted() bool { return c.current >= c.goal }

// Reset restarts the sequence from the grid's present state
func (c *Cursor) Reset() {
	c.current = 0
}

// Next advances the grid one generation and returns a copy of its rows.
// Once the goal is reached it returns false, and keeps doing so until Reset.
func (c *Cursor) Next() ([][]uint8, bool) {
	if c.Exhausted() {
		return nil, false
	}
	c.engine.Step(c.grid)
	c.current++
	return c.grid.ToRows(), true
}

// All yields (generation, rows) pairs until the cursor is exhausted or the loop stops early.
// Generations are numbered from 1.
func (c *Cursor) All() iter.Seq2[int, [][]uint8] {
	return func(yield func(int, [][]uint8) bool) {
		for {
			rows, ok := c.Next()
			if !ok {
				return
			}
			if !yield(c.current, rows) {
				return
			}
		}
	}
}

// Close releases the engine's snapshot buffer back to its pool
func (c *Cursor) Close() {
	c.engine.Release()
}
