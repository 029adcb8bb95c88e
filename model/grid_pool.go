package model

import "sync"

// SnapshotToPool returns a snapshot buffer to the pool for reuse
func SnapshotToPool(buf *[]uint8, pool *SnapshotPool) {
	if pool == nil || buf == nil {
		return
	}

	pool.Put(buf)
}

// SnapshotPool recycles the previous-generation buffers engines copy the grid into.
// It is safe for concurrent use, so independent boards stepped in parallel can share one.
type SnapshotPool struct {
	pool sync.Pool
}

func NewSnapshotPool() *SnapshotPool {
	return &SnapshotPool{
		pool: sync.Pool{
			New: func() interface{} {
				buf := make([]uint8, 0)
				return &buf
			},
		},
	}
}

// Get retrieves a buffer from the pool sized to exactly n cells
func (p *SnapshotPool) Get(n int) *[]uint8 {
	buf := p.pool.Get().(*[]uint8)
	if cap(*buf) < n {
		*buf = make([]uint8, n)
	}
	*buf = (*buf)[:n]
	return buf
}

// Put returns a buffer to the pool, clearing its contents
func (p *SnapshotPool) Put(buf *[]uint8) {
	clear((*buf)[:cap(*buf)])
	p.pool.Put(buf)
}
