package model

import "github.com/sheikhrachel/go-life/rules"

// Engine advances a grid one generation at a time, in place.
// Border cells (first/last row and column) never change.
//
// An Engine keeps the previous-generation snapshot between calls, so it must not
// be shared by concurrent callers; use one Engine per board.
type Engine struct {
	pool *SnapshotPool
	prev *[]uint8
}

// NewEngine creates an engine. A nil pool makes the engine own its snapshot buffer.
func NewEngine(pool *SnapshotPool) *Engine {
	return &Engine{pool: pool}
}

// Step advances g by one generation using a throwaway engine
func Step(g *Grid) {
	NewEngine(nil).Step(g)
}

// Step computes the next generation of g from a snapshot of its current cells and
// writes the result back into g. Grids without interior cells are left unchanged.
func (e *Engine) Step(g *Grid) {
	rows, cols := g.rows, g.cols
	if rows < 3 || cols < 3 {
		return
	}

	prev := e.snapshot(g.cells)

	for r := 1; r < rows-1; r++ {
		for c := 1; c < cols-1; c++ {
			idx := r*cols + c
			g.cells[idx] = rules.NextState(CountNeighbors(prev, cols, idx), prev[idx])
		}
	}
}

// Release hands the snapshot buffer back to the pool, if any
func (e *Engine) Release() {
	if e.prev == nil {
		return
	}
	SnapshotToPool(e.prev, e.pool)
	e.prev = nil
}

// snapshot copies cells into the engine's previous-generation buffer
func (e *Engine) snapshot(cells []uint8) []uint8 {
	if e.prev == nil || len(*e.prev) != len(cells) {
		e.Release()
		if e.pool != nil {
			e.prev = e.pool.Get(len(cells))
		} else {
			buf := make([]uint8, len(cells))
			e.prev = &buf
		}
	}
	copy(*e.prev, cells)
	return *e.prev
}

// CountNeighbors counts the live cells among the 8 cells surrounding the interior cell at
// flat index idx of a row-major buffer with the given number of columns
func CountNeighbors(cells []uint8, cols, idx int) int {
	offsets := [8]int{
		-cols - 1, -cols, -cols + 1,
		-1, +1,
		cols - 1, cols, cols + 1,
	}

	count := 0
	for _, off := range offsets {
		count += int(cells[idx+off])
	}
	return count
}
