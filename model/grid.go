package model

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyGrid    = errors.New("grid has no cells")
	ErrRaggedGrid   = errors.New("grid rows differ in length")
	ErrOpenBoundary = errors.New("grid boundary cell is open")
)

// Open is the cell code for traversable space; every other code is a wall.
const Open = 0

// Grid is an immutable rectangular occupancy map indexed as [y][x]. Its outer
// ring is always a wall, so any ray starting inside it terminates.
type Grid struct {
	cells  [][]int
	width  int
	height int
}

// NewGrid validates rows and returns a Grid holding its own copy of them.
func NewGrid(rows [][]int) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	width, height := len(rows[0]), len(rows)
	cells := make([][]int, height)
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", y, len(row), width, ErrRaggedGrid)
		}
		cells[y] = append([]int(nil), row...)
	}

	for x := 0; x < width; x++ {
		if cells[0][x] == Open {
			return nil, fmt.Errorf("cell (%d,0): %w", x, ErrOpenBoundary)
		}
		if cells[height-1][x] == Open {
			return nil, fmt.Errorf("cell (%d,%d): %w", x, height-1, ErrOpenBoundary)
		}
	}
	for y := 0; y < height; y++ {
		if cells[y][0] == Open {
			return nil, fmt.Errorf("cell (0,%d): %w", y, ErrOpenBoundary)
		}
		if cells[y][width-1] == Open {
			return nil, fmt.Errorf("cell (%d,%d): %w", width-1, y, ErrOpenBoundary)
		}
	}

	return &Grid{cells: cells, width: width, height: height}, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

// At returns the cell code at (x, y). It panics outside the grid.
func (g *Grid) At(x, y int) int {
	return g.cells[y][x]
}

// IsOpen reports whether (x, y) lies inside the grid and is traversable.
func (g *Grid) IsOpen(x, y int) bool {
	return g.InBounds(x, y) && g.cells[y][x] == Open
}
