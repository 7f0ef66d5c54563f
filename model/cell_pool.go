package model

import "sync"

// cellSet is a set of coordinates keyed by value
type cellSet map[Cell]struct{}

var cellPool = newCellSetPool()

// cellSetPool recycles the live-cell sets discarded by Step
type cellSetPool struct {
	pool sync.Pool
}

func newCellSetPool() *cellSetPool {
	return &cellSetPool{
		pool: sync.Pool{
			New: func() interface{} {
				return make(cellSet)
			},
		},
	}
}

// get retrieves an empty set from the pool
func (p *cellSetPool) get() cellSet {
	return p.pool.Get().(cellSet)
}

// put clears a set and returns it to the pool
func (p *cellSetPool) put(s cellSet) {
	if s == nil {
		return
	}
	clear(s)
	p.pool.Put(s)
}
