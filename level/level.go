// Package level turns map files into validated grids. Every loader pads the
// parsed cells with a ring of wall so the result is always closed.
package level

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"wallcast/model"
)

// Wall is the cell code used for padding and for '#' in text maps.
const Wall = 1

var (
	ErrNoOpenCell = errors.New("map has no open cell")
	ErrBadCell    = errors.New("unrecognised map cell")
)

type Level struct {
	Grid  *model.Grid
	Spawn model.Vec2
}

// Load reads a map file, choosing the decoder from its extension: .png maps
// are colour keyed, anything else is read as text.
func Load(path string) (*Level, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lvl *Level
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		lvl, err = DecodeImage(f)
	default:
		lvl, err = ParseText(f)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lvl, nil
}

// Pad returns rows surrounded by one cell of wall on every side.
func Pad(rows [][]int) [][]int {
	width := 0
	if len(rows) > 0 {
		width = len(rows[0])
	}

	padded := make([][]int, len(rows)+2)
	padded[0] = wallRow(width + 2)
	for y, row := range rows {
		r := make([]int, 0, len(row)+2)
		r = append(r, Wall)
		r = append(r, row...)
		r = append(r, Wall)
		padded[y+1] = r
	}
	padded[len(padded)-1] = wallRow(width + 2)
	return padded
}

func wallRow(n int) []int {
	row := make([]int, n)
	for i := range row {
		row[i] = Wall
	}
	return row
}

// build pads rows, validates the grid and settles the spawn point. spawn is
// in unpadded cell coordinates, or nil to use the first open cell.
func build(rows [][]int, spawn *[2]int) (*Level, error) {
	g, err := model.NewGrid(Pad(rows))
	if err != nil {
		return nil, err
	}

	if spawn != nil {
		return &Level{Grid: g, Spawn: cellCenter(spawn[0]+1, spawn[1]+1)}, nil
	}
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if g.IsOpen(x, y) {
				return &Level{Grid: g, Spawn: cellCenter(x, y)}, nil
			}
		}
	}
	return nil, ErrNoOpenCell
}

func cellCenter(x, y int) model.Vec2 {
	return model.Vec2{X: float64(x) + 0.5, Y: float64(y) + 0.5}
}
