package raycast

import (
	"math"

	"wallcast/model"
)

// Orientation names the family of grid line a ray crossed last before
// entering a wall cell.
type Orientation uint8

const (
	// Vertical walls are reached by stepping along X.
	Vertical Orientation = iota
	// Horizontal walls are reached by stepping along Y.
	Horizontal
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Hit is where a ray stopped, as an offset from its origin.
type Hit struct {
	Offset      model.Vec2
	Orientation Orientation
	CellX       int
	CellY       int
}

func (h Hit) Distance() float64 {
	return h.Offset.Len()
}

// Cast walks the grid cell by cell from origin along dir until it enters a
// wall cell. dir must be non-zero and origin must lie inside g; the wall ring
// around every Grid bounds the walk. When both axes reach a grid line at the
// same distance the Y step is taken, so exact corners report Horizontal.
func Cast(origin, dir model.Vec2, g *model.Grid) Hit {
	length := dir.Len()
	mapX, mapY := origin.Cell()

	// distance along the ray between successive crossings on each axis
	deltaDistX := math.Inf(1)
	deltaDistY := math.Inf(1)
	if dir.X != 0 {
		deltaDistX = math.Abs(length / dir.X)
	}
	if dir.Y != 0 {
		deltaDistY = math.Abs(length / dir.Y)
	}

	var stepX, stepY int
	sideDistX := math.Inf(1)
	sideDistY := math.Inf(1)
	switch {
	case dir.X < 0:
		stepX = -1
		sideDistX = (origin.X - float64(mapX)) * deltaDistX
	case dir.X > 0:
		stepX = 1
		sideDistX = (float64(mapX) + 1.0 - origin.X) * deltaDistX
	}
	switch {
	case dir.Y < 0:
		stepY = -1
		sideDistY = (origin.Y - float64(mapY)) * deltaDistY
	case dir.Y > 0:
		stepY = 1
		sideDistY = (float64(mapY) + 1.0 - origin.Y) * deltaDistY
	}

	var dist float64
	side := Vertical
	for g.At(mapX, mapY) == model.Open {
		if sideDistX < sideDistY {
			dist = sideDistX
			sideDistX += deltaDistX
			mapX += stepX
			side = Vertical
		} else {
			dist = sideDistY
			sideDistY += deltaDistY
			mapY += stepY
			side = Horizontal
		}
	}

	return Hit{
		Offset:      dir.Scale(dist / length),
		Orientation: side,
		CellX:       mapX,
		CellY:       mapY,
	}
}
