package model

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrZeroVector    = errors.New("vector must be non-zero")
	ErrParallelPlane = errors.New("camera plane is parallel to direction")
	ErrOutOfBounds   = errors.New("position is outside the grid")
	ErrBlockedSpawn  = errors.New("position is inside a wall")
)

type Player struct {
	Position    Vec2
	Direction   Vec2
	Plane       Vec2
	MoveSpeed   float64 // grid units per second
	RotateSpeed float64 // quarter turns per second
	Moved       bool
}

// NewPlayer validates the camera basis against the spawn cell in g.
func NewPlayer(g *Grid, pos, dir, plane Vec2, moveSpeed, rotateSpeed float64) (*Player, error) {
	if dir.IsZero() {
		return nil, fmt.Errorf("direction: %w", ErrZeroVector)
	}
	if plane.IsZero() {
		return nil, fmt.Errorf("camera plane: %w", ErrZeroVector)
	}
	// dir + plane*t must never vanish for any column offset t
	if dir.Cross(plane) == 0 {
		return nil, ErrParallelPlane
	}

	x, y := pos.Cell()
	if !g.InBounds(x, y) {
		return nil, fmt.Errorf("(%g,%g): %w", pos.X, pos.Y, ErrOutOfBounds)
	}
	if !g.IsOpen(x, y) {
		return nil, fmt.Errorf("(%g,%g): %w", pos.X, pos.Y, ErrBlockedSpawn)
	}

	p := &Player{
		Position:    pos,
		Direction:   dir,
		Plane:       plane,
		MoveSpeed:   moveSpeed,
		RotateSpeed: rotateSpeed,
		Moved:       true,
	}
	return p, nil
}

// NewPlayerFacing builds a unit direction from heading (radians, clockwise
// from +X) and sizes the camera plane so the view spans fov radians.
func NewPlayerFacing(g *Grid, pos Vec2, heading, fov, moveSpeed, rotateSpeed float64) (*Player, error) {
	dir := Vec2{X: math.Cos(heading), Y: math.Sin(heading)}
	plane := dir.Perp().Scale(math.Tan(fov / 2))
	return NewPlayer(g, pos, dir, plane, moveSpeed, rotateSpeed)
}

// Move translates the player along its direction, forward or backward, and
// reports whether the move was committed. A destination cell that is a wall
// or off the grid leaves the position untouched. The step is not swept, so a
// large enough MoveSpeed*dt can jump over a one-cell wall.
func (p *Player) Move(g *Grid, dt float64, forward bool) bool {
	sign := 1.0
	if !forward {
		sign = -1.0
	}

	candidate := p.Position.Add(p.Direction.Scale(sign * p.MoveSpeed * dt))
	if !g.IsOpen(candidate.Cell()) {
		return false
	}

	p.Position = candidate
	p.Moved = true
	return true
}

// Rotate turns direction and camera plane together by a quarter turn per
// unit of RotateSpeed*dt. Clockwise is as seen with row 0 at the top.
func (p *Player) Rotate(dt float64, clockwise bool) {
	sign := 1.0
	if !clockwise {
		sign = -1.0
	}

	angle := math.Pi / 2 * p.RotateSpeed * dt * sign
	p.Direction = p.Direction.Rotate(angle)
	p.Plane = p.Plane.Rotate(angle)
	p.Moved = true
}

// FOV returns the horizontal field of view in radians.
func (p *Player) FOV() float64 {
	return 2 * math.Atan2(p.Plane.Len(), p.Direction.Len())
}

// Heading returns the facing angle in radians, clockwise from +X.
func (p *Player) Heading() float64 {
	return math.Atan2(p.Direction.Y, p.Direction.X)
}
