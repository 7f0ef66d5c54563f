package model

import (
	"crypto/md5"
	"fmt"
	"sort"

	"github.com/sheikhrachel/go-life/rules"
)

// Cell is a grid coordinate. X is the column, Y the row, both zero based.
type Cell struct {
	X, Y int
}

// Board is a bounded Game of Life grid holding the set of currently live cells.
//
// A Board is owned by a single caller at a time; Step is not safe for concurrent use.
type Board struct {
	width  int
	height int
	live   cellSet
}

// NewBoard creates a board with the given dimensions and live cells.
// Duplicate cells collapse into one. Any cell outside the grid fails construction.
func NewBoard(width, height int, live []Cell) (*Board, error) {
	b := &Board{
		width:  width,
		height: height,
		live:   make(cellSet, len(live)),
	}
	for _, c := range live {
		if !b.inBounds(c.X, c.Y) {
			return nil, invalidBoardf("cell (%d, %d) is outside a %dx%d board", c.X, c.Y, width, height)
		}
		b.live[c] = struct{}{}
	}
	return b, nil
}

// Width returns the number of columns
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows
func (b *Board) Height() int {
	return b.height
}

// Population returns the number of live cells
func (b *Board) Population() int {
	return len(b.live)
}

// IsAlive reports whether (x, y) is live. Coordinates off the board are never live.
func (b *Board) IsAlive(x, y int) bool {
	_, ok := b.live[Cell{X: x, Y: y}]
	return ok
}

// LiveCells returns the live cells in row-major order.
func (b *Board) LiveCells() []Cell {
	cells := make([]Cell, 0, len(b.live))
	for c := range b.live {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y != cells[j].Y {
			return cells[i].Y < cells[j].Y
		}
		return cells[i].X < cells[j].X
	})
	return cells
}

// Fingerprint returns an MD5 hash of the dimensions and live cells. Equal boards
// have equal fingerprints.
func (b *Board) Fingerprint() string {
	h := md5.New()
	fmt.Fprintf(h, "%dx%d", b.width, b.height)
	for _, c := range b.LiveCells() {
		fmt.Fprintf(h, ";%d,%d", c.X, c.Y)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// clone returns an independent copy of the board
func (b *Board) clone() *Board {
	live := make(cellSet, len(b.live))
	for c := range b.live {
		live[c] = struct{}{}
	}
	return &Board{width: b.width, height: b.height, live: live}
}

// Equal reports whether both boards have the same dimensions and live cells.
func (b *Board) Equal(other *Board) bool {
	if b == nil || other == nil {
		return b == other
	}
	if b.width != other.width || b.height != other.height || len(b.live) != len(other.live) {
		return false
	}
	for c := range b.live {
		if _, ok := other.live[c]; !ok {
			return false
		}
	}
	return true
}

// Step advances the board one generation in place.
//
// Only cells inside the 3x3 block of some live cell can change state, so those are
// the only candidates evaluated. Every count reads the pre-step set; the new set is
// swapped in once it is complete.
func (b *Board) Step() {
	next := cellPool.get()
	for c := range b.candidates() {
		_, alive := b.live[c]
		if rules.ApplyConwayRules(b.countNeighbors(c.X, c.Y), alive) {
			next[c] = struct{}{}
		}
	}

	prev := b.live
	b.live = next
	cellPool.put(prev)
}

// candidates returns the union of the bounds-clipped neighborhoods of all live cells
func (b *Board) candidates() cellSet {
	set := make(cellSet, len(b.live)*9)
	for c := range b.live {
		minX, maxX, minY, maxY := b.neighborhood(c.X, c.Y)
		for ny := minY; ny <= maxY; ny++ {
			for nx := minX; nx <= maxX; nx++ {
				set[Cell{X: nx, Y: ny}] = struct{}{}
			}
		}
	}
	return set
}

// countNeighbors counts live cells around (x, y), excluding the cell itself
func (b *Board) countNeighbors(x, y int) int {
	count := 0
	minX, maxX, minY, maxY := b.neighborhood(x, y)
	for ny := minY; ny <= maxY; ny++ {
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue
			}
			if _, ok := b.live[Cell{X: nx, Y: ny}]; ok {
				count++
			}
		}
	}
	return count
}

// neighborhood returns the inclusive 3x3 window around (x, y) clipped to the grid
func (b *Board) neighborhood(x, y int) (minX, maxX, minY, maxY int) {
	return max(0, x-1), min(b.width-1, x+1), max(0, y-1), min(b.height-1, y+1)
}

func (b *Board) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}
