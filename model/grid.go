package model

import (
	"fmt"
	"math"

	"github.com/ryym/lifegame/rules"
)

// AliveOneIn is the initial population policy: a cell starts alive when a
// uniform draw over AliveOneIn outcomes yields 0.
const AliveOneIn = 10

// RandSource provides uniform draws over [0, n)
type RandSource interface {
	Intn(n int) int
}

// Grid represents the game board, double-buffered so that a generation is
// always computed from an unchanged copy of the previous one.
type Grid struct {
	rows       int
	cols       int
	cells      [][]bool
	next       [][]bool
	generation int
}

// NewGrid creates a grid of the given dimensions and populates every cell
// from src. src is only used during construction.
func NewGrid(rows, cols int, src RandSource) *Grid {
	g := NewEmptyGrid(rows, cols)
	for r := range g.rows {
		for c := range g.cols {
			g.cells[r][c] = src.Intn(AliveOneIn) == 0
		}
	}
	return g
}

// NewEmptyGrid creates a grid of the given dimensions with every cell dead.
// It panics if the dimensions cannot be indexed.
func NewEmptyGrid(rows, cols int) *Grid {
	checkDimensions(rows, cols)
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: newCells(rows, cols),
		next:  newCells(rows, cols),
	}
}

func checkDimensions(rows, cols int) {
	if rows < 0 || cols < 0 || rows >= math.MaxInt || cols >= math.MaxInt {
		panic(fmt.Sprintf("model: invalid grid dimensions %dx%d", rows, cols))
	}
	if rows > 0 && cols > math.MaxInt/rows {
		panic(fmt.Sprintf("model: grid dimensions %dx%d overflow", rows, cols))
	}
}

func newCells(rows, cols int) [][]bool {
	cells := make([][]bool, rows)
	for i := range cells {
		cells[i] = make([]bool, cols)
	}
	return cells
}

// Rows returns the number of rows
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns
func (g *Grid) Cols() int {
	return g.cols
}

// Generation returns how many times the grid has been updated
func (g *Grid) Generation() int {
	return g.generation
}

// Set sets a cell to alive (true) or dead (false)
func (g *Grid) Set(row, col int, alive bool) {
	if g.inBounds(row, col) {
		g.cells[row][col] = alive
	}
}

// Get returns the state of a cell. Cells outside the grid are dead.
func (g *Grid) Get(row, col int) bool {
	if !g.inBounds(row, col) {
		return false
	}
	return g.cells[row][col]
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// CountNeighbors counts the living neighbors of the cell at (row, col),
// scanning the 3x3 window around it clipped to the grid. Row 0 is the top
// edge. The edges do not wrap; positions outside the grid count as dead.
func (g *Grid) CountNeighbors(row, col int) int {
	count := 0

	minR := max(0, row-1)
	maxR := min(g.rows-1, row+1)
	minC := max(0, col-1)
	maxC := min(g.cols-1, col+1)

	for r := minR; r <= maxR; r++ {
		for c := minC; c <= maxC; c++ {
			if r == row && c == col {
				continue
			}
			if g.cells[r][c] {
				count++
			}
		}
	}

	return count
}

// Update advances the grid by one generation
func (g *Grid) Update() {
	for r := range g.rows {
		for c := range g.cols {
			g.next[r][c] = rules.IsAlive(g.cells[r][c], g.CountNeighbors(r, c))
		}
	}
	g.cells, g.next = g.next, g.cells
	g.generation++
}

// CountLivingCells returns the number of living cells in the current generation
func (g *Grid) CountLivingCells() (count int) {
	for r := range g.rows {
		for c := range g.cols {
			if g.cells[r][c] {
				count++
			}
		}
	}
	return
}

// Equal reports whether both grids have the same shape and cells
func (g *Grid) Equal(other *Grid) bool {
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for r := range g.rows {
		for c := range g.cols {
			if g.cells[r][c] != other.cells[r][c] {
				return false
			}
		}
	}
	return true
}

// Clone returns an independent copy of the current generation
func (g *Grid) Clone() *Grid {
	clone := NewEmptyGrid(g.rows, g.cols)
	for r := range g.rows {
		copy(clone.cells[r], g.cells[r])
	}
	clone.generation = g.generation
	return clone
}
